// Package main provides the CLI entrypoint for flatfile.
//
// flatfile converts between fixed-width flat files and YAML rows using a
// YAML layout:
//   - check: validates a layout and reports diagnostics
//   - decode: decodes a flat file and prints its rows as YAML
//   - encode: encodes YAML rows into fixed-width lines
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"flatfile-codec/codec"
	"flatfile-codec/layout"
)

const usage = `Usage: flatfile <command> [flags]

Commands:
  check  -layout L.yaml [-print]        validate a layout
  decode -layout L.yaml [-tolerant] F   decode flat file F to YAML rows
  encode -layout L.yaml F.yaml          encode YAML rows to flat lines

Every command accepts -v for debug logging.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	err := run(context.Background(), os.Args[1], os.Args[2:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// errInvalidLayout is returned by check after the diagnostics are printed.
var errInvalidLayout = errors.New("layout has errors")

func run(ctx context.Context, cmd string, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		layoutPath = fs.String("layout", "", "Path to the YAML layout")
		verbose    = fs.Bool("v", false, "Enable debug logging")
		tolerant   = fs.Bool("tolerant", false, "decode: skip lines of the wrong length")
		printOut   = fs.Bool("print", false, "check: print the layout with effective padding")
	)

	switch cmd {
	case "check", "decode", "encode":
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return nil
	default:
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *layoutPath == "" {
		return fmt.Errorf("%s: -layout is required", cmd)
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	codec.SetLogger(logger)

	l, err := layout.LoadFile(*layoutPath)
	if err != nil {
		return err
	}

	switch cmd {
	case "check":
		return runCheck(l, *printOut, stdout)
	case "decode":
		if fs.NArg() != 1 {
			return fmt.Errorf("decode: expected one input file")
		}

		return runDecode(ctx, l, fs.Arg(0), *tolerant, stdout)
	default:
		if fs.NArg() != 1 {
			return fmt.Errorf("encode: expected one YAML rows file")
		}

		return runEncode(l, fs.Arg(0), stdout)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	return cfg.Build()
}

func runCheck(l *layout.Layout, printOut bool, stdout io.Writer) error {
	res := layout.ValidateLayout(l)

	for _, d := range res.All() {
		fmt.Fprintf(stdout, "%s: %s\n", d.Severity, d)
	}

	if res.HasErrors() {
		return errInvalidLayout
	}

	if printOut {
		layout.Normalize(l)

		data, err := layout.Marshal(l)
		if err != nil {
			return fmt.Errorf("marshal layout: %w", err)
		}

		_, err = stdout.Write(data)

		return err
	}

	return nil
}

func runDecode(ctx context.Context, l *layout.Layout, path string, tolerant bool, stdout io.Writer) error {
	opts := codec.DefaultReadOptions()
	if tolerant {
		opts.SkipLengthMismatch = true
		opts.OnSkip = func(lineNo int, _ string, err error) {
			codec.Logger().Warn("skipped line", zap.Int("line", lineNo), zap.Error(err))
		}
	}

	rows, err := codec.NewFileReader(l.Fields, &opts).Read(ctx, path)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(stdout)

	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}

	return enc.Close()
}

func runEncode(l *layout.Layout, path string, stdout io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rows: %w", err)
	}

	var rows []map[string]any

	err = yaml.Unmarshal(data, &rows)
	if err != nil {
		return fmt.Errorf("parse rows YAML: %w", err)
	}

	opts := &codec.WriteOptions{RowEnd: l.RowEnd}

	for i, row := range rows {
		line, err := codec.FormatRow(l.Fields, row, opts)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}

		if _, err := io.WriteString(stdout, line); err != nil {
			return err
		}
	}

	return nil
}
