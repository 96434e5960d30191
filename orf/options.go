package orf

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/shauntanwj/Suffix-Trie/alphabet"
)

const (
	DefaultServiceName = "orf"
	DefaultTracerName  = "github.com/shauntanwj/Suffix-Trie/orf"
)

type Options struct {
	Alphabet   alphabet.Alphabet
	Log        logger.Logger
	Metrics    *Metrics
	TracerName string
}

type Option func(*Options)

// WithAlphabet sets the symbol set the sequence and all queries are checked
// against. The default is alphabet.ABCD.
func WithAlphabet(a alphabet.Alphabet) Option {
	return func(o *Options) {
		o.Alphabet = a
	}
}

func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.Log = log
	}
}

// WithMetrics enables query and build metrics. See NewMetrics.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) {
		o.Metrics = m
	}
}

func WithTracerName(name string) Option {
	return func(o *Options) {
		o.TracerName = name
	}
}

func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Alphabet.IsZero() {
		o.Alphabet = alphabet.ABCD
	}
	if o.TracerName == "" {
		o.TracerName = DefaultTracerName
	}
	if o.Log == nil {
		if logger.Sugar == nil {
			logger.New("NOOP")
		}
		o.Log = logger.Sugar.WithServiceName(DefaultServiceName)
	}
	return o
}
