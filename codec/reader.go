package codec

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"flatfile-codec/errors"
	"flatfile-codec/layout"
)

// FileReader decodes whole flat files with a fixed set of field specs.
type FileReader struct {
	specs []layout.FieldSpec
	opts  *ReadOptions
}

// ReadResult is the outcome of an asynchronous read.
type ReadResult struct {
	Rows []Row
	Err  error
}

// NewFileReader creates a reader for specs. A nil opts selects
// DefaultReadOptions.
func NewFileReader(specs []layout.FieldSpec, opts *ReadOptions) *FileReader {
	return &FileReader{specs: specs, opts: opts}
}

// Read reads the whole file at path and decodes it. The context is checked
// before reading and again before decoding; the read itself is not
// interruptible.
func (r *FileReader) Read(ctx context.Context, path string) ([]Row, error) {
	text, err := readText(ctx, path)
	if err != nil {
		return nil, err
	}

	return TextToData(text, r.specs, r.opts)
}

// ReadAsync runs Read in a goroutine. The returned channel delivers exactly
// one result and is then closed.
func (r *FileReader) ReadAsync(ctx context.Context, path string) <-chan ReadResult {
	ch := make(chan ReadResult, 1)

	go func() {
		defer close(ch)

		rows, err := r.Read(ctx, path)
		ch <- ReadResult{Rows: rows, Err: err}
	}()

	return ch
}

// ReadFileAs reads and decodes the file at path into T.
func ReadFileAs[T any](ctx context.Context, path string, specs []layout.FieldSpec, opts *ReadOptions) ([]T, error) {
	text, err := readText(ctx, path)
	if err != nil {
		return nil, err
	}

	return TextToDataAs[T](text, specs, opts)
}

func readText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(errors.PhaseRead, errors.KindIO, err, "read canceled")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.PhaseRead, errors.KindIO, err, fmt.Sprintf("failed to read %s", path))
	}

	Logger().Debug("read flat file", zap.String("path", path), zap.Int("bytes", len(data)))

	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(errors.PhaseRead, errors.KindIO, err, "read canceled")
	}

	return string(data), nil
}

// WriteFile encodes rows and writes them to path. A nil opts terminates
// every row with DefaultFileRowEnd.
func WriteFile[R any](path string, specs []layout.FieldSpec, rows []R, opts *WriteOptions) error {
	if opts == nil {
		opts = &WriteOptions{RowEnd: DefaultFileRowEnd}
	}

	var b strings.Builder

	for _, row := range rows {
		line, err := FormatRow(specs, row, opts)
		if err != nil {
			return err
		}

		b.WriteString(line)
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return errors.Wrap(errors.PhaseWrite, errors.KindIO, err, fmt.Sprintf("failed to write %s", path))
	}

	Logger().Debug("wrote flat file", zap.String("path", path), zap.Int("rows", len(rows)))

	return nil
}
