package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"flatfile-codec/errors"
)

const testLayout = `
name: people
rowEnd: "\n"
fields:
  - {name: firstName, size: 10, type: string}
  - {name: age, size: 3, type: integer}
  - name: since
    size: 8
    type: date
    format: {utc: true, dateFormat: "%Y%m%d"}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestRun_Encode(t *testing.T) {
	layoutPath := writeFile(t, "layout.yaml", testLayout)
	rowsPath := writeFile(t, "rows.yaml", `
- {firstName: Jo, age: 7, since: "2020-01-31"}
- {firstName: Ricky, age: 42, since: null}
`)

	var out bytes.Buffer
	err := run(context.Background(), "encode", []string{"-layout", layoutPath, rowsPath}, &out, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "Jo          720200131\nRicky      42        \n", out.String())
}

func TestRun_EncodeError(t *testing.T) {
	layoutPath := writeFile(t, "layout.yaml", testLayout)
	rowsPath := writeFile(t, "rows.yaml", `[{firstName: Jo, age: 12345, since: null}]`)

	err := run(context.Background(), "encode", []string{"-layout", layoutPath, rowsPath}, &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrSizeExceeded)
	assert.ErrorContains(t, err, "row 1")
}

func TestRun_Decode(t *testing.T) {
	layoutPath := writeFile(t, "layout.yaml", testLayout)
	dataPath := writeFile(t, "people.txt", "Jo          720200131\nbroken\nRicky      42        \n")

	err := run(context.Background(), "decode", []string{"-layout", layoutPath, dataPath}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, errors.ErrLengthMismatch)

	var out bytes.Buffer
	err = run(context.Background(), "decode", []string{"-layout", layoutPath, "-tolerant", dataPath}, &out, &bytes.Buffer{})
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &rows))
	require.Len(t, rows, 2, out.String())
	assert.Equal(t, "Jo", rows[0]["firstName"])
	assert.Equal(t, 7, rows[0]["age"])
	assert.Equal(t, "Ricky", rows[1]["firstName"])
	assert.Nil(t, rows[1]["since"])
}

func TestRun_Check(t *testing.T) {
	good := writeFile(t, "good.yaml", testLayout)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), "check", []string{"-layout", good, "-print"}, &out, &bytes.Buffer{}))
	assert.Contains(t, out.String(), "record width is 21 characters")
	assert.Contains(t, out.String(), "paddingPosition: start")

	bad := writeFile(t, "bad.yaml", `
fields:
  - {name: a, size: 0, type: strng}
`)

	out.Reset()
	err := run(context.Background(), "check", []string{"-layout", bad}, &out, &bytes.Buffer{})
	assert.ErrorIs(t, err, errInvalidLayout)
	assert.Contains(t, out.String(), "map size must be greater than 0")
	assert.Contains(t, out.String(), "did you mean string?")
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Error(t, run(context.Background(), "explode", nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage: flatfile")

	assert.ErrorContains(t, run(context.Background(), "decode", nil, &stdout, &stderr), "-layout is required")

	require.NoError(t, run(context.Background(), "help", nil, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Commands:")
}
