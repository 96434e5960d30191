package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	bioalphabet "github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

var errNoRecords = errors.New("orffind: no sequence records in input")

// readRaw reads a sequence stored as plain text. Line breaks and surrounding
// blanks are dropped so wrapped sequences read back as one.
func readRaw(r io.Reader) ([]byte, error) {
	var out []byte
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)
	for sc.Scan() {
		out = append(out, bytes.TrimSpace(sc.Bytes())...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// readFASTA returns the first record of a FASTA stream, upper cased.
func readFASTA(r io.Reader) (name string, seq []byte, err error) {
	// The template alphabet only types the record; the index alphabet does
	// the validation once the letters are loaded.
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, bioalphabet.DNA)))
	if !sc.Next() {
		if err := sc.Error(); err != nil {
			return "", nil, err
		}
		return "", nil, errNoRecords
	}
	s, ok := sc.Seq().(*linear.Seq)
	if !ok {
		return "", nil, fmt.Errorf("orffind: unexpected record type %T", sc.Seq())
	}
	seq = make([]byte, len(s.Seq))
	for i, l := range s.Seq {
		seq[i] = byte(l)
	}
	return s.Name(), bytes.ToUpper(seq), nil
}

func loadFile(path string, isFASTA bool) (name string, seq []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", nil, err
	}
	defer f.Close()
	if isFASTA {
		return readFASTA(f)
	}
	seq, err = readRaw(f)
	return path, seq, err
}

// readWords reads one dictionary word per line, skipping blank lines.
func readWords(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words [][]byte
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := bytes.TrimSpace(sc.Bytes())
		if len(w) == 0 {
			continue
		}
		words = append(words, bytes.Clone(w))
	}
	return words, sc.Err()
}
