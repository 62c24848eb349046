package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Run("empty collects to nil", func(t *testing.T) {
		var v ValidationError
		assert.NoError(t, v.OrNil())
	})

	t.Run("matches sentinel through wrapping", func(t *testing.T) {
		v := &ValidationError{}
		v.Add("termsAccepted", "must be accepted")
		v.Add("client.email", "required")

		err := fmt.Errorf("submit: %w", v.OrNil())
		require.ErrorIs(t, err, ErrValidation)
		assert.NotErrorIs(t, err, ErrNotFound)

		var got *ValidationError
		require.True(t, errors.As(err, &got))
		assert.True(t, got.HasField("termsAccepted"))
		assert.Equal(t, []string{"client.email", "termsAccepted"}, got.FieldNames())
		assert.Contains(t, got.Error(), "termsAccepted: must be accepted")
	})
}

func TestNotFoundAndConstraint(t *testing.T) {
	nf := NotFound("draft", "abc")
	assert.ErrorIs(t, nf, ErrNotFound)
	assert.Equal(t, `draft "abc" not found`, nf.Error())

	c := Constraint("visits", "%d not in %v", 3, []int{1, 2, 4})
	assert.ErrorIs(t, c, ErrConstraint)
	assert.Equal(t, "visits: 3 not in [1 2 4]", c.Error())
}
