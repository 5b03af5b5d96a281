package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	First  *int64  `json:"first" validate:"required"`
	Second *string `json:"second,omitempty" validate:"required"`
	Third  string  `json:"third" validate:"required"`
	Free   *string `json:"free"`
}

func ptr[T any](v T) *T { return &v }

func TestValidate_ReportsFirstMissingFieldByJSONName(t *testing.T) {
	v := New()

	err := v.Validate(&payload{})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "first", fe.Field)
	assert.Equal(t, "required", fe.Tag)

	err = v.Validate(&payload{First: ptr(int64(1))})
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "second", fe.Field)
}

func TestValidate_PresenceOnlyForPointers(t *testing.T) {
	v := New()

	// zero values behind a pointer count as present
	err := v.Validate(&payload{First: ptr(int64(0)), Second: ptr(""), Third: "x"})
	assert.NoError(t, err)
}

func TestValidate_EmptyPlainStringIsMissing(t *testing.T) {
	v := New()

	err := v.Validate(&payload{First: ptr(int64(1)), Second: ptr("a")})
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "third", fe.Field)
	assert.Contains(t, fe.Error(), "third")
}
