package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"flatfile-codec/codec"
)

func TestLogger_SkippedLines(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	codec.SetLogger(zap.New(core))
	t.Cleanup(func() { codec.SetLogger(nil) })

	rows, err := codec.LinesToData([]string{joLine, "bad"}, peopleSpecs(), &codec.ReadOptions{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	entries := logs.FilterMessage("skipping line").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(2), entries[0].ContextMap()["line"])
	assert.Equal(t, int64(3), entries[0].ContextMap()["length"])
}

func TestLogger_DefaultIsNop(t *testing.T) {
	codec.SetLogger(nil)
	assert.NotNil(t, codec.Logger())
}
