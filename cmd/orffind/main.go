// Command orffind indexes one sequence and lists every substring that starts
// with one query and ends with another, the two not overlapping.
//
//	orffind -seq ABCDAB -start A -end B
//	orffind -fasta genome.fa -alphabet dna -start ATG -end TAA -coords
//	orffind -words words.txt -prefix AB
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/fxamacker/cbor/v2"
	"github.com/shauntanwj/Suffix-Trie/alphabet"
	"github.com/shauntanwj/Suffix-Trie/orf"
	"github.com/shauntanwj/Suffix-Trie/seqdb"
)

const (
	formatText = "text"
	formatCBOR = "cbor"
)

var errUsage = errors.New("orffind: provide one of -seq, -f or -fasta with -start and -end, or -words with -prefix")

type config struct {
	seq      string
	file     string
	fasta    string
	alphabet string
	start    string
	end      string
	format   string
	coords   bool
	words    string
	prefix   string
	logLevel string
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("orffind", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.seq, "seq", "", "sequence given inline")
	fs.StringVar(&cfg.file, "f", "", "plain text sequence file (line breaks ignored)")
	fs.StringVar(&cfg.fasta, "fasta", "", "FASTA file; the first record is indexed")
	fs.StringVar(&cfg.alphabet, "alphabet", "abcd", "symbol set: abcd or dna")
	fs.StringVar(&cfg.start, "start", "", "query the substrings must begin with")
	fs.StringVar(&cfg.end, "end", "", "query the substrings must end with")
	fs.StringVar(&cfg.format, "format", formatText, "output format: text or cbor")
	fs.BoolVar(&cfg.coords, "coords", false, "prefix each text result with its one-based start and end")
	fs.StringVar(&cfg.words, "words", "", "dictionary file, one word per line")
	fs.StringVar(&cfg.prefix, "prefix", "", "prefix to look up in the dictionary")
	fs.StringVar(&cfg.logLevel, "log-level", "NOOP", "logger level")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if cfg.format != formatText && cfg.format != formatCBOR {
		return config{}, fmt.Errorf("orffind: unknown format %q", cfg.format)
	}
	return cfg, nil
}

// report is the CBOR output document.
type report struct {
	IndexID  string  `cbor:"index_id"`
	Name     string  `cbor:"name,omitempty"`
	Alphabet string  `cbor:"alphabet"`
	Length   int     `cbor:"length"`
	Start    string  `cbor:"start"`
	End      string  `cbor:"end"`
	Matches  []match `cbor:"matches"`
}

type match struct {
	Start uint32 `cbor:"start"`
	End   uint32 `cbor:"end"`
	Seq   string `cbor:"seq"`
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger.New(cfg.logLevel)
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName("orffind")

	alpha, err := alphabet.Named(cfg.alphabet)
	if err != nil {
		return err
	}

	if cfg.words != "" {
		return runDictionary(cfg, alpha, stdout, log)
	}

	name, seq, err := loadSequence(cfg)
	if err != nil {
		return err
	}
	if cfg.start == "" || cfg.end == "" {
		return errUsage
	}

	x, err := orf.Build(seq, orf.WithAlphabet(alpha), orf.WithLogger(log))
	if err != nil {
		return err
	}

	if cfg.format == formatText && !cfg.coords {
		found, err := x.FindContext(ctx, []byte(cfg.start), []byte(cfg.end))
		if err != nil {
			return err
		}
		for _, w := range found {
			fmt.Fprintf(stdout, "%s\n", w)
		}
		return nil
	}

	spans, err := x.Spans([]byte(cfg.start), []byte(cfg.end))
	if err != nil {
		return err
	}
	if cfg.format == formatText {
		for _, sp := range spans {
			fmt.Fprintf(stdout, "%d\t%d\t%s\n", sp.Start, sp.End, seq[sp.Start-1:sp.End])
		}
		return nil
	}

	r := report{
		IndexID:  x.ID().String(),
		Name:     name,
		Alphabet: alpha.Symbols(),
		Length:   x.Len(),
		Start:    cfg.start,
		End:      cfg.end,
		Matches:  make([]match, 0, len(spans)),
	}
	for _, sp := range spans {
		r.Matches = append(r.Matches, match{Start: sp.Start, End: sp.End, Seq: string(seq[sp.Start-1 : sp.End])})
	}
	data, err := cbor.Marshal(r)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}

func loadSequence(cfg config) (name string, seq []byte, err error) {
	switch {
	case cfg.seq != "":
		return "", []byte(cfg.seq), nil
	case cfg.fasta != "":
		return loadFile(cfg.fasta, true)
	case cfg.file != "":
		return loadFile(cfg.file, false)
	}
	return "", nil, errUsage
}

func runDictionary(cfg config, alpha alphabet.Alphabet, stdout io.Writer, log logger.Logger) error {
	words, err := readWords(cfg.words)
	if err != nil {
		return err
	}
	db := seqdb.New(alpha)
	for i, w := range words {
		if err := db.Insert(w); err != nil {
			return fmt.Errorf("%s:%d: %w", cfg.words, i+1, err)
		}
	}
	log.Infof("dictionary loaded: words=%d, distinct=%d", len(words), db.Words())

	best, ok, err := db.QueryBestByPrefix([]byte(cfg.prefix))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(stdout, "<none>")
		return nil
	}
	fmt.Fprintf(stdout, "%s\n", best)
	return nil
}
