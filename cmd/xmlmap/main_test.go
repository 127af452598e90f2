package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-xmlmap"
)

const sample = `<shelf id="1"><book>Go</book><book>XML</book></shelf>`

func globals(out *bytes.Buffer) *Globals {
	return &Globals{Out: out, Opts: []xmlmap.Option{xmlmap.Indent("  ")}}
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEncodeCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &EncodeCmd{File: writeTemp(t, "shelf.xml", sample)}
	require.NoError(t, cmd.Run(globals(&out)))

	v, err := xmlmap.FromYAML(out.Bytes())
	require.NoError(t, err)
	m, ok := v.(*xmlmap.Mapping)
	require.True(t, ok)
	require.Equal(t, []string{"shelf"}, m.Keys())
}

func TestDecodeCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &DecodeCmd{File: writeTemp(t, "shelf.yaml", "shelf:\n  book: [Go, XML]\n")}
	require.NoError(t, cmd.Run(globals(&out)))
	require.Equal(t, "<shelf>\n  <book>Go</book>\n  <book>XML</book>\n</shelf>\n", out.String())
}

func TestRoundtripCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &RoundtripCmd{File: writeTemp(t, "shelf.xml", sample)}
	require.NoError(t, cmd.Run(globals(&out)))
	require.Equal(t, "<shelf id='1'>\n  <book>Go</book>\n  <book>XML</book>\n</shelf>\n", out.String())
}

func TestSelectCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := &SelectCmd{File: writeTemp(t, "shelf.xml", sample), Expr: "//book"}
	require.NoError(t, cmd.Run(globals(&out)))

	v, err := xmlmap.FromYAML(out.Bytes())
	require.NoError(t, err)
	list, ok := v.(xmlmap.List)
	require.True(t, ok)
	require.Len(t, list, 2)
}

func TestCommands_Errors(t *testing.T) {
	var out bytes.Buffer
	bad := writeTemp(t, "bad.xml", "<a><b></a>")

	require.Error(t, (&EncodeCmd{File: bad}).Run(globals(&out)))
	require.Error(t, (&RoundtripCmd{File: bad}).Run(globals(&out)))
	require.Error(t, (&SelectCmd{File: bad, Expr: "//a"}).Run(globals(&out)))
	require.Error(t, (&DecodeCmd{File: writeTemp(t, "bad.yaml", "a: [")}).Run(globals(&out)))
}

func TestNewLogger(t *testing.T) {
	l, err := newLogger(false)
	require.NoError(t, err)
	require.NotNil(t, l)
}
