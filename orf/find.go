package orf

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span is a one-based, inclusive [Start, End] range of the indexed sequence.
type Span struct {
	Start uint32
	End   uint32
}

func (s Span) Len() int { return int(s.End-s.Start) + 1 }

// Find returns every substring that begins with start, ends with end, and
// holds the two without overlap. Results are ordered by start position,
// then by end position. No match gives an empty, non-nil slice.
//
// start and end must be non-empty (ErrEmptyQuery) and drawn from the index
// alphabet (ErrInvalidSymbol).
func (x *RangeIndex) Find(start, end []byte) ([][]byte, error) {
	return x.FindContext(context.Background(), start, end)
}

// FindContext is Find with tracing attached to ctx.
func (x *RangeIndex) FindContext(ctx context.Context, start, end []byte) ([][]byte, error) {
	_, span := otel.Tracer(x.opts.TracerName).Start(ctx, "orf.RangeIndex.Find",
		trace.WithAttributes(
			attribute.Int("start.len", len(start)),
			attribute.Int("end.len", len(end)),
		))
	defer span.End()

	starts, ends, err := x.candidates(start, end)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid query")
		x.metrics.observeFind(0, err)
		return nil, err
	}

	out := [][]byte{}
	x.each(starts, ends, len(start)+len(end), func(s, e uint32) {
		out = append(out, slices.Clone(x.seq[s-1:e]))
	})

	span.SetAttributes(
		attribute.Int("starts", len(starts)),
		attribute.Int("ends", len(ends)),
		attribute.Int("results", len(out)),
	)
	span.SetStatus(codes.Ok, "")
	x.metrics.observeFind(len(out), nil)
	x.log.Debugf("find: id=%s, start=%s, end=%s, starts=%d, ends=%d, results=%d",
		x.id, start, end, len(starts), len(ends), len(out))
	return out, nil
}

// Spans is Find without materializing the substrings.
func (x *RangeIndex) Spans(start, end []byte) ([]Span, error) {
	starts, ends, err := x.candidates(start, end)
	if err != nil {
		return nil, err
	}
	out := []Span{}
	x.each(starts, ends, len(start)+len(end), func(s, e uint32) {
		out = append(out, Span{Start: s, End: e})
	})
	return out, nil
}

// Count returns len(Find(start, end)) without building the result.
func (x *RangeIndex) Count(start, end []byte) (int, error) {
	starts, ends, err := x.candidates(start, end)
	if err != nil {
		return 0, err
	}
	n := 0
	x.each(starts, ends, len(start)+len(end), func(uint32, uint32) { n++ })
	return n, nil
}

func (x *RangeIndex) candidates(start, end []byte) (starts, ends []uint32, err error) {
	if len(start) == 0 || len(end) == 0 {
		return nil, nil, ErrEmptyQuery
	}
	if starts, err = x.starts.StartSearch(start); err != nil {
		return nil, nil, err
	}
	if ends, err = x.ends.EndSearch(end); err != nil {
		return nil, nil, err
	}
	return starts, ends, nil
}

// each calls fn for every (s, e) with s < e and e-s+1 >= minSpan, s
// ascending then e ascending. starts and ends must be ascending.
func (x *RangeIndex) each(starts, ends []uint32, minSpan int, fn func(s, e uint32)) {
	if minSpan > len(x.seq) {
		return
	}
	for _, s := range starts {
		// Every e before lo would overlap the start occurrence.
		lo := s + uint32(minSpan) - 1
		i, _ := slices.BinarySearch(ends, lo)
		for _, e := range ends[i:] {
			if s < e {
				fn(s, e)
			}
		}
	}
}
