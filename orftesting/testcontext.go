package orftesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/shauntanwj/Suffix-Trie/alphabet"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    *testing.T
}

type TestConfig struct {
	// Seed fixes the generated sequences so a failure reproduces from run to
	// run. Zero is a valid seed.
	Seed            int64
	TestLabelPrefix string
	// LogLevel defaults to NOOP so table driven tests stay quiet.
	LogLevel string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	t.Cleanup(logger.OnExit)

	return TestContext{
		Log:  logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		Rand: rand.New(rand.NewSource(cfg.Seed)),
		T:    t,
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomSequence returns n symbols drawn uniformly from alpha.
func (c *TestContext) RandomSequence(alpha alphabet.Alphabet, n int) []byte {
	symbols := alpha.Symbols()
	out := make([]byte, n)
	for i := range out {
		out[i] = symbols[c.Rand.Intn(len(symbols))]
	}
	return out
}

// RandomQuery returns a non-empty query of at most maxLen symbols. Half the
// time it is cut from seq, so that it is known to occur.
func (c *TestContext) RandomQuery(alpha alphabet.Alphabet, seq []byte, maxLen int) []byte {
	n := 1 + c.Rand.Intn(maxLen)
	if len(seq) >= n && c.Rand.Intn(2) == 0 {
		at := c.Rand.Intn(len(seq) - n + 1)
		return append([]byte{}, seq[at:at+n]...)
	}
	return c.RandomSequence(alpha, n)
}
