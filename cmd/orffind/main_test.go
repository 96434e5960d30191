package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/shauntanwj/Suffix-Trie/alphabet"
	"github.com/shauntanwj/Suffix-Trie/orf"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runArgs(t *testing.T, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestRunInlineSequence(t *testing.T) {
	out, err := runArgs(t, "-seq", "ABCABC", "-start", "A", "-end", "C")
	require.NoError(t, err)
	require.Equal(t, "ABC\nABCABC\nABC\n", out)
}

func TestRunCoords(t *testing.T) {
	out, err := runArgs(t, "-seq", "ABAB", "-start", "AB", "-end", "AB", "-coords")
	require.NoError(t, err)
	require.Equal(t, "1\t4\tABAB\n", out)
}

func TestRunPlainFileJoinsLines(t *testing.T) {
	path := writeTemp(t, "seq.txt", "AB\n  CD\n\n")
	out, err := runArgs(t, "-f", path, "-start", "A", "-end", "D")
	require.NoError(t, err)
	require.Equal(t, "ABCD\n", out)
}

func TestRunFASTA(t *testing.T) {
	path := writeTemp(t, "genome.fa", ">chr1 test\nacgt\nATGA\n>chr2\nTTTT\n")
	out, err := runArgs(t, "-fasta", path, "-alphabet", "dna", "-start", "AT", "-end", "GA")
	require.NoError(t, err)
	require.Equal(t, "ATGA\n", out)
}

func TestRunCBORReport(t *testing.T) {
	out, err := runArgs(t, "-seq", "AAAB", "-start", "A", "-end", "B", "-format", "cbor")
	require.NoError(t, err)

	var r report
	require.NoError(t, cbor.Unmarshal([]byte(out), &r))
	require.Equal(t, "ABCD", r.Alphabet)
	require.Equal(t, 4, r.Length)
	require.NotEmpty(t, r.IndexID)
	require.Equal(t, []match{
		{Start: 1, End: 4, Seq: "AAAB"},
		{Start: 2, End: 4, Seq: "AAB"},
		{Start: 3, End: 4, Seq: "AB"},
	}, r.Matches)
}

func TestRunDictionary(t *testing.T) {
	path := writeTemp(t, "words.txt", "ABC\nABD\nABD\n\nCA\n")

	out, err := runArgs(t, "-words", path, "-prefix", "AB")
	require.NoError(t, err)
	require.Equal(t, "ABD\n", out)

	out, err = runArgs(t, "-words", path, "-prefix", "D")
	require.NoError(t, err)
	require.Equal(t, "<none>\n", out)
}

func TestRunErrors(t *testing.T) {
	_, err := runArgs(t, "-start", "A", "-end", "B")
	require.ErrorIs(t, err, errUsage)

	_, err = runArgs(t, "-seq", "ABCD")
	require.ErrorIs(t, err, errUsage)

	_, err = runArgs(t, "-seq", "ABCD", "-start", "E", "-end", "A")
	require.ErrorIs(t, err, orf.ErrInvalidSymbol)

	_, err = runArgs(t, "-seq", "ACGT", "-start", "A", "-end", "T")
	require.ErrorIs(t, err, alphabet.ErrInvalidSymbol)

	_, err = runArgs(t, "-seq", "ABCD", "-start", "A", "-end", "D", "-alphabet", "rna")
	require.ErrorIs(t, err, alphabet.ErrUnknownAlphabet)

	_, err = runArgs(t, "-seq", "ABCD", "-start", "A", "-end", "D", "-format", "json")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "unknown format"))

	empty := writeTemp(t, "empty.fa", "")
	_, err = runArgs(t, "-fasta", empty, "-start", "A", "-end", "D")
	require.ErrorIs(t, err, errNoRecords)
}
