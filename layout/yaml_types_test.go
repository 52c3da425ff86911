package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDateFormat_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want DateFormat
	}{
		{name: "bare pattern", in: `"%d/%m/%Y"`, want: DateFormat{DateFormat: "%d/%m/%Y"}},
		{name: "full", in: `{utc: true, dateFormat: "%Y"}`, want: DateFormat{UTC: true, DateFormat: "%Y"}},
		{name: "utc only", in: `{utc: true}`, want: DateFormat{UTC: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got DateFormat
			require.NoError(t, yaml.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}

	var bad DateFormat
	assert.Error(t, yaml.Unmarshal([]byte(`[a, b]`), &bad))
}

func TestDateFormat_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(DateFormat{DateFormat: "%Y"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "%Y")
	assert.NotContains(t, string(out), "utc")

	out, err = yaml.Marshal(DateFormat{UTC: true, DateFormat: "%Y"})
	require.NoError(t, err)
	assert.Contains(t, string(out), "utc: true")
}

func TestFieldType_UnmarshalYAML(t *testing.T) {
	var spec FieldSpec
	require.NoError(t, yaml.Unmarshal([]byte("{name: a, size: 1, type: Strng}"), &spec))
	assert.Equal(t, FieldType("Strng"), spec.Type)
	assert.False(t, spec.Type.IsValid())

	assert.Error(t, yaml.Unmarshal([]byte("{type: [string]}"), &spec))
}

func TestEnum_UnmarshalYAML(t *testing.T) {
	var spec FieldSpec

	in := `
name: status
size: 2
type: string
enum:
  01: pending
  "1": one
  "03": ~
`
	require.NoError(t, yaml.Unmarshal([]byte(in), &spec))

	// Keys are verbatim, so unquoted 01 does not collapse into 1
	assert.Equal(t, []string{"01", "03", "1"}, spec.Enum.Keys())
	assert.Equal(t, "pending", spec.Enum["01"])
	assert.Nil(t, spec.Enum["03"])
	assert.True(t, spec.HasEnum())

	var list Enum
	require.NoError(t, yaml.Unmarshal([]byte(`[X, "Y"]`), &list))
	assert.Equal(t, Enum{"X": "X", "Y": "Y"}, list)

	var bad Enum
	assert.Error(t, yaml.Unmarshal([]byte(`plain`), &bad))
}
