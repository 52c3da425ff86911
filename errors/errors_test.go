package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindSizeExceeded,
				Path:   []string{"age"},
				Detail: "Value 1234 exceed size 3",
			},
			contains: []string{"[encode]", "size_exceeded", "at age", "Value 1234 exceed size 3"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindLengthMismatch,
			},
			contains: []string{"[decode]", "length_mismatch"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseRead,
				Kind:   KindIO,
				Detail: "failed to read people.txt",
				Cause:  errors.New("no such file"),
			},
			contains: []string{"[read]", "io", "people.txt", "caused by", "no such file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				assert.Contains(t, msg, s)
			}
		})
	}
}

func TestError_IsMatchesKindSentinel(t *testing.T) {
	err := SizeExceeded(PhaseEncode, "age", 1234, 3)

	assert.ErrorIs(t, err, ErrSizeExceeded)
	assert.NotErrorIs(t, err, ErrConfig)

	wrapped := fmt.Errorf("row 3: %w", err)
	assert.ErrorIs(t, wrapped, ErrSizeExceeded)
}

func TestError_IsWithPhase(t *testing.T) {
	err := Validation(PhaseEncode, "", "data is null")

	assert.True(t, err.Is(&Error{Phase: PhaseEncode, Kind: KindValidation}))
	assert.False(t, err.Is(&Error{Phase: PhaseDecode, Kind: KindValidation}))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseLoad, KindIO, cause, "loading layout")

	assert.Same(t, cause, errors.Unwrap(err))
	assert.ErrorIs(t, err, cause)
}

func TestBuilder(t *testing.T) {
	err := New(PhaseEncode, KindTypeMismatch).
		Path("someField").
		Value(100).
		Detail("field has not compatible type %s", "int").
		Build()

	assert.Equal(t, PhaseEncode, err.Phase)
	assert.Equal(t, KindTypeMismatch, err.Kind)
	assert.Equal(t, "someField", err.Field())
	assert.Equal(t, 100, err.Value)
	assert.Equal(t, "field has not compatible type int", err.Detail)
}

func TestInvalidEnum_Message(t *testing.T) {
	err := InvalidEnum("test", []string{"01"}, "05")

	require.ErrorIs(t, err, ErrInvalidEnum)
	assert.Contains(t, err.Error(),
		"Incoming value for field 'test' should have been one of the accepted enum keys [\"01\"], but found '05'")
}

func TestLengthMismatch_Message(t *testing.T) {
	err := LengthMismatch("abc", 10)

	assert.Contains(t, err.Error(), "The given line must be 10 characters long")
	assert.Equal(t, "", err.Field())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("line 3: %w", LengthMismatch("abc", 5))

	assert.Equal(t, KindLengthMismatch, KindOf(wrapped))
	assert.Equal(t, Kind(""), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(""), KindOf(nil))
}
