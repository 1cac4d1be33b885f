package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/brianm/hexnote/pkg/decode"
	"github.com/brianm/hexnote/pkg/hexdump"
	"github.com/brianm/hexnote/pkg/layout"
)

// Streams is the process environment a run reads from and writes to.
type Streams struct {
	Stdin      io.Reader
	Stdout     io.Writer
	LookupEnv  func(string) (string, bool)
	IsTerminal func() bool
}

type HexnoteCLI struct {
	Config  kong.ConfigFlag `help:"Read flag defaults from a YAML or JSON file" placeholder:"PATH"`
	Verbose int             `help:"Increase log verbosity (-v info, -vv debug)" short:"v" type:"counter"`

	Types       []string          `arg:"" optional:"" help:"Fields to decode in order: TYPE, TYPE:NAME, or .BITS to skip" placeholder:"TYPE"`
	File        string            `help:"File to read (default stdin)" short:"f" type:"path"`
	ByteOrder   string            `help:"Byte order for multi-byte types: native, little or big (default little)" placeholder:"ORDER"`
	Layout      string            `help:"Layout file whose fields are decoded before TYPES" short:"l" type:"path"`
	LabelFormat string            `help:"Mustache template for labels, with name, type, value, offset and size" placeholder:"TEMPLATE"`
	Color       string            `help:"When to color output" enum:"auto,always,never" default:"auto"`
	Palette     map[string]string `help:"Override a color, e.g. --palette address=cyan" placeholder:"ROLE=COLOR"`
}

func (c *HexnoteCLI) Run(logger *slog.Logger, s *Streams) error {
	plan, err := c.plan(logger)
	if err != nil {
		return err
	}

	policy, err := colorPolicy(c.Color, c.Palette, s)
	if err != nil {
		return err
	}

	data, err := c.read(s.Stdin)
	if err != nil {
		return err
	}
	logger.Debug("read input", "bytes", len(data), "file", c.File)

	annotations, buildErr := layout.Build(plan.tokens, data, plan.order, plan.format)
	var truncated *layout.TruncatedError
	if buildErr != nil && !errors.As(buildErr, &truncated) {
		return buildErr
	}
	logger.Info("built annotations", "count", len(annotations), "byte_order", plan.order)

	w := bufio.NewWriter(s.Stdout)
	for _, line := range hexdump.Render(data, annotations, policy) {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// The dump is still shown when the data runs out mid-field.
	return buildErr
}

type runPlan struct {
	tokens []layout.Token
	order  decode.ByteOrder
	format *layout.LabelFormat
}

// plan merges the layout file with the flags. Fields from the layout come
// first; flags override its byte order and label format.
func (c *HexnoteCLI) plan(logger *slog.Logger) (runPlan, error) {
	var p runPlan
	var file *layout.File
	if c.Layout != "" {
		f, err := layout.LoadFile(c.Layout)
		if err != nil {
			return p, err
		}
		logger.Debug("loaded layout", "path", c.Layout, "fields", len(f.Fields))
		file = f
	}

	var fields []string
	order := "little"
	tmpl := ""
	if file != nil {
		fields = append(fields, file.Fields...)
		if file.ByteOrder != "" {
			order = file.ByteOrder
		}
		tmpl = file.LabelFormat
	}
	fields = append(fields, c.Types...)
	if c.ByteOrder != "" {
		order = c.ByteOrder
	}
	if c.LabelFormat != "" {
		tmpl = c.LabelFormat
	}

	tokens, err := layout.ParseAll(fields)
	if err != nil {
		return p, err
	}
	bo, err := decode.ParseByteOrder(order)
	if err != nil {
		return p, fmt.Errorf("invalid byte order: %w", err)
	}
	format, err := layout.NewLabelFormat(tmpl)
	if err != nil {
		return p, err
	}

	return runPlan{tokens: tokens, order: bo, format: format}, nil
}

func (c *HexnoteCLI) read(stdin io.Reader) ([]byte, error) {
	if c.File == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}
