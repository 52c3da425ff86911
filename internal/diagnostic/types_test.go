package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("format_ignored", "format only applies to date fields", "people", "age")
	assert.True(t, d.IsValid())

	d.AddError("invalid_size", "map size must be greater than 0", "people", "age")
	d.AddError("unsupported_type", `type "strng" is not supported`, "", "firstName", "string")

	require.False(t, d.IsValid())
	assert.EqualError(t, d.Error(),
		`[people] age: [invalid_size] map size must be greater than 0; `+
			`firstName: [unsupported_type] type "strng" is not supported (did you mean string?)`)
}

func TestDiagnostics_FindCode(t *testing.T) {
	var d Diagnostics
	d.AddInfo("width", "record width is 13", "", "")
	d.AddWarning("precision_ignored", "precision only applies to float fields", "", "age")

	diag, ok := d.FindCode("precision_ignored")
	require.True(t, ok)
	assert.Equal(t, DiagnosticWarning, diag.Severity)
	assert.Equal(t, "age", diag.Field)

	_, ok = d.FindCode("nope")
	assert.False(t, ok)

	assert.Len(t, d.All(), 2)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "first", "", "")
	b.AddError("y", "second", "", "")
	b.AddInfo("z", "third", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Infos, 1)
	assert.Equal(t, "error", a.Errors[1].Severity.String())
}
