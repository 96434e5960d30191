package orf

import (
	"slices"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/google/uuid"
	"github.com/shauntanwj/Suffix-Trie/alphabet"
	"github.com/shauntanwj/Suffix-Trie/occurrence"
)

// RangeIndex owns the indexed sequence and the two occurrence indexes built
// over it.
type RangeIndex struct {
	id      uuid.UUID
	seq     []byte
	starts  *occurrence.StartIndex
	ends    *occurrence.EndIndex
	opts    Options
	log     logger.Logger
	metrics *Metrics
}

// Build indexes seq. It fails with ErrEmptySequence for an empty seq and
// with ErrInvalidSymbol if seq holds a byte outside the configured
// alphabet. seq is copied; the caller may reuse it.
func Build(seq []byte, opts ...Option) (*RangeIndex, error) {
	o := NewOptions(opts...)

	if len(seq) == 0 {
		return nil, ErrEmptySequence
	}
	if err := o.Alphabet.Validate(seq); err != nil {
		return nil, err
	}

	seq = slices.Clone(seq)
	starts, err := occurrence.BuildStart(o.Alphabet, seq)
	if err != nil {
		return nil, err
	}
	ends, err := occurrence.BuildEnd(o.Alphabet, seq)
	if err != nil {
		return nil, err
	}

	x := &RangeIndex{
		id:      uuid.New(),
		seq:     seq,
		starts:  starts,
		ends:    ends,
		opts:    o,
		log:     o.Log,
		metrics: o.Metrics,
	}
	x.metrics.observeBuild(x.Nodes())
	x.log.Infof(
		"range index built: id=%s, alphabet=%s, len=%d, startNodes=%d, endNodes=%d",
		x.id, o.Alphabet, len(seq), starts.Nodes(), ends.Nodes())
	return x, nil
}

// ID identifies this build in logs and reports.
func (x *RangeIndex) ID() uuid.UUID { return x.id }

// Len returns the length of the indexed sequence.
func (x *RangeIndex) Len() int { return len(x.seq) }

// Nodes returns the combined node count of both tries.
func (x *RangeIndex) Nodes() int { return x.starts.Nodes() + x.ends.Nodes() }

func (x *RangeIndex) Alphabet() alphabet.Alphabet { return x.opts.Alphabet }

// Sequence returns a copy of the indexed sequence.
func (x *RangeIndex) Sequence() []byte { return slices.Clone(x.seq) }

// StartSearch exposes the start position index directly.
func (x *RangeIndex) StartSearch(q []byte) ([]uint32, error) {
	return x.starts.StartSearch(q)
}

// EndSearch exposes the end position index directly.
func (x *RangeIndex) EndSearch(q []byte) ([]uint32, error) {
	return x.ends.EndSearch(q)
}
