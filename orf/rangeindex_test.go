package orf

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shauntanwj/Suffix-Trie/alphabet"
	"github.com/shauntanwj/Suffix-Trie/orftesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIndex(t *testing.T, seq string, opts ...Option) *RangeIndex {
	tc := orftesting.NewTestContext(t, orftesting.TestConfig{TestLabelPrefix: "orf"})
	x, err := Build([]byte(seq), append([]Option{WithLogger(tc.Log)}, opts...)...)
	require.NoError(t, err)
	return x
}

func strs(bs [][]byte) []string {
	out := make([]string, 0, len(bs))
	for _, b := range bs {
		out = append(out, string(b))
	}
	return out
}

func TestFindScenarios(t *testing.T) {
	tests := []struct {
		name  string
		seq   string
		start string
		end   string
		want  []string
	}{
		{"two symbols", "AB", "A", "B", []string{"AB"}},
		{"whole sequence", "ABCD", "A", "D", []string{"ABCD"}},
		{"overlap rejected", "ABAB", "AB", "AB", []string{"ABAB"}},
		{"repeated symbol", "AAAA", "A", "A", []string{"AA", "AAA", "AAAA", "AA", "AAA", "AA"}},
		{"shared symbol is not enough", "ABA", "AB", "BA", []string{}},
		{"absent start", "ABCD", "C", "A", []string{}},
		{"absent end", "ABCD", "A", "DD", []string{}},
		{"queries longer than sequence", "AB", "AB", "AB", []string{}},
		{"nested order", "ABCABC", "A", "C", []string{"ABC", "ABCABC", "ABC"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := newTestIndex(t, tt.seq)
			got, err := x.Find([]byte(tt.start), []byte(tt.end))
			require.NoError(t, err)
			require.NotNil(t, got)
			require.Equal(t, tt.want, strs(got))

			n, err := x.Count([]byte(tt.start), []byte(tt.end))
			require.NoError(t, err)
			require.Equal(t, len(tt.want), n)
		})
	}
}

func TestFindOverlapWalkthrough(t *testing.T) {
	x := newTestIndex(t, "ABAB")

	starts, err := x.StartSearch([]byte("AB"))
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 3}, starts)

	ends, err := x.EndSearch([]byte("AB"))
	require.NoError(t, err)
	require.Equal(t, []uint32{2, 4}, ends)

	// Of (1,2) (1,4) (3,2) (3,4) only (1,4) spans the required 4 symbols.
	spans, err := x.Spans([]byte("AB"), []byte("AB"))
	require.NoError(t, err)
	require.Equal(t, []Span{{Start: 1, End: 4}}, spans)
	require.Equal(t, 4, spans[0].Len())
}

func TestFindErrors(t *testing.T) {
	x := newTestIndex(t, "ABCD")

	_, err := x.Find([]byte("E"), []byte("A"))
	require.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = x.Find([]byte("A"), []byte("E"))
	require.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = x.Find([]byte("#"), []byte("A"))
	require.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = x.Find(nil, []byte("A"))
	require.ErrorIs(t, err, ErrEmptyQuery)

	_, err = x.Find([]byte("A"), []byte{})
	require.ErrorIs(t, err, ErrEmptyQuery)

	_, err = x.Spans(nil, nil)
	require.ErrorIs(t, err, ErrEmptyQuery)

	_, err = x.Count([]byte("A"), []byte("Z"))
	require.ErrorIs(t, err, ErrInvalidSymbol)

	// An invalid symbol is reported even when no placement could fit.
	_, err = x.Find([]byte("ABCDE"), []byte("A"))
	require.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(nil)
	require.ErrorIs(t, err, ErrEmptySequence)

	_, err = Build([]byte("ABE"))
	require.ErrorIs(t, err, ErrInvalidSymbol)

	_, err = Build([]byte("ACGT"))
	require.ErrorIs(t, err, ErrInvalidSymbol)

	x, err := Build([]byte("ACGT"), WithAlphabet(alphabet.DNA))
	require.NoError(t, err)
	require.Equal(t, alphabet.DNA, x.Alphabet())
}

func TestBuildCopiesSequence(t *testing.T) {
	seq := []byte("ABCD")
	x, err := Build(seq)
	require.NoError(t, err)

	seq[0] = 'D'
	got, err := x.Find([]byte("A"), []byte("D"))
	require.NoError(t, err)
	require.Equal(t, []string{"ABCD"}, strs(got))

	// Results do not alias the index either.
	got[0][0] = 'C'
	require.Equal(t, []byte("ABCD"), x.Sequence())

	out := x.Sequence()
	out[1] = 'A'
	require.Equal(t, []byte("ABCD"), x.Sequence())
	require.Equal(t, 4, x.Len())
}

func TestFindMatchesScan(t *testing.T) {
	tc := orftesting.NewTestContext(t, orftesting.TestConfig{Seed: 42, TestLabelPrefix: "orf"})

	for round := 0; round < 40; round++ {
		seq := tc.RandomSequence(alphabet.ABCD, 1+tc.Rand.Intn(40))
		x, err := Build(seq, WithLogger(tc.Log))
		require.NoError(t, err)

		for i := 0; i < 10; i++ {
			start := tc.RandomQuery(alphabet.ABCD, seq, 3)
			end := tc.RandomQuery(alphabet.ABCD, seq, 3)

			got, err := x.Find(start, end)
			require.NoError(t, err)
			assert.Equal(t, strs(orftesting.Substrings(seq, start, end)), strs(got),
				"seq=%s start=%s end=%s", seq, start, end)

			for _, w := range got {
				assert.True(t, bytes.HasPrefix(w, start))
				assert.True(t, bytes.HasSuffix(w, end))
				assert.GreaterOrEqual(t, len(w), len(start)+len(end))
			}
		}
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	tc := orftesting.NewTestContext(t, orftesting.TestConfig{Seed: 5, TestLabelPrefix: "orf"})
	seq := tc.RandomSequence(alphabet.ABCD, 60)

	x1, err := Build(seq, WithLogger(tc.Log))
	require.NoError(t, err)
	x2, err := Build(seq, WithLogger(tc.Log))
	require.NoError(t, err)
	require.NotEqual(t, x1.ID(), x2.ID())
	require.Equal(t, x1.Nodes(), x2.Nodes())

	for i := 0; i < 20; i++ {
		start := tc.RandomQuery(alphabet.ABCD, seq, 2)
		end := tc.RandomQuery(alphabet.ABCD, seq, 2)
		r1, err := x1.Find(start, end)
		require.NoError(t, err)
		r2, err := x2.Find(start, end)
		require.NoError(t, err)
		require.Equal(t, r1, r2)
	}
}

func TestConcurrentFind(t *testing.T) {
	tc := orftesting.NewTestContext(t, orftesting.TestConfig{Seed: 9, TestLabelPrefix: "orf"})
	seq := tc.RandomSequence(alphabet.ABCD, 50)
	x, err := Build(seq, WithLogger(tc.Log))
	require.NoError(t, err)

	want, err := x.Find([]byte("A"), []byte("B"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][][]byte, 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			r, err := x.FindContext(context.Background(), []byte("A"), []byte("B"))
			if err == nil {
				results[g] = r
			}
		}(g)
	}
	wg.Wait()
	for _, r := range results {
		require.Equal(t, want, r)
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	x := newTestIndex(t, "ABAB", WithMetrics(m))

	_, err := x.Find([]byte("A"), []byte("B"))
	require.NoError(t, err)
	_, err = x.Find([]byte("C"), []byte("B"))
	require.NoError(t, err)
	_, err = x.Find([]byte("E"), []byte("B"))
	require.Error(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.builds))
	require.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(resultHit)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(resultEmpty)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.queries.WithLabelValues(resultError)))

	// A nil Metrics is a no-op.
	var none *Metrics
	none.observeBuild(1)
	none.observeFind(1, nil)
}
