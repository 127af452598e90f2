// Command xmlmap converts markup documents to nested YAML values and back.
//
// Usage:
//
//	xmlmap encode <file>
//	xmlmap decode <file.yaml>
//	xmlmap roundtrip <file>
//	xmlmap select <file> <xpath>
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/KimNorgaard/go-xmlmap"
)

// CLI defines the command-line interface.
var CLI struct {
	Verbose  bool   `name:"verbose" short:"v" help:"Log loading events to stderr"`
	Indent   string `name:"indent" default:"\t" help:"Indentation written per nesting level in decoded markup"`
	NoEscape bool   `name:"no-escape" help:"Write text and attribute values verbatim"`

	Encode    EncodeCmd    `cmd:"" help:"Convert a markup file to YAML"`
	Decode    DecodeCmd    `cmd:"" help:"Convert a YAML file to a markup fragment"`
	Roundtrip RoundtripCmd `cmd:"" help:"Encode a markup file and decode it again"`
	Select    SelectCmd    `cmd:"" help:"Encode the elements matching an XPath expression"`
}

// Globals is passed to every command's Run method.
type Globals struct {
	Out  io.Writer
	Opts []xmlmap.Option
}

// EncodeCmd converts a markup file to YAML.
type EncodeCmd struct {
	File string `arg:"" type:"existingfile" help:"Markup file"`
}

func (c *EncodeCmd) Run(g *Globals) error {
	doc, err := xmlmap.New(c.File, g.Opts...)
	if err != nil {
		return err
	}
	return writeYAML(g.Out, doc.ToMap())
}

// DecodeCmd converts a YAML file to a markup fragment.
type DecodeCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML file"`
}

func (c *DecodeCmd) Run(g *Globals) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	v, err := xmlmap.FromYAML(data)
	if err != nil {
		return err
	}
	return xmlmap.NewDecoder(g.Out, g.Opts...).Decode(v)
}

// RoundtripCmd encodes a markup file and decodes the result.
type RoundtripCmd struct {
	File string `arg:"" type:"existingfile" help:"Markup file"`
}

func (c *RoundtripCmd) Run(g *Globals) error {
	doc, err := xmlmap.New(c.File, g.Opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(g.Out, doc.ToXML(doc.ToMap()))
	return err
}

// SelectCmd encodes the elements matching an XPath expression.
type SelectCmd struct {
	File string `arg:"" type:"existingfile" help:"Markup file"`
	Expr string `arg:"" help:"XPath expression"`
}

func (c *SelectCmd) Run(g *Globals) error {
	doc, err := xmlmap.New(c.File, g.Opts...)
	if err != nil {
		return err
	}
	matches, err := doc.Select(c.Expr)
	if err != nil {
		return err
	}
	seq := make(xmlmap.List, len(matches))
	for i, m := range matches {
		seq[i] = m
	}
	return writeYAML(g.Out, seq)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("xmlmap"),
		kong.Description("Convert markup documents to nested values and back"),
		kong.UsageOnError(),
	)

	logger, err := newLogger(CLI.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xmlmap: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	g := &Globals{
		Out: os.Stdout,
		Opts: []xmlmap.Option{
			xmlmap.Indent(CLI.Indent),
			xmlmap.Escape(!CLI.NoEscape),
			xmlmap.WithLogger(logger),
		},
	}
	err = ctx.Run(g)
	ctx.FatalIfErrorf(err)
}
