package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	cause := errors.New("parse failed")
	err := NewUserError("could not read the statement file", cause)

	assert.Equal(t, "could not read the statement file: parse failed", err.Error())
	assert.ErrorIs(t, err, cause)

	var userErr *UserError
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, "could not read the statement file", userErr.UserMessage)
}

func TestUserError_NoCause(t *testing.T) {
	err := NewUserError("nothing to import", nil)
	assert.Equal(t, "nothing to import", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}

func TestSentinelWrapping(t *testing.T) {
	err := fmt.Errorf("transaction abc: %w", ErrNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	err = fmt.Errorf("%w: unknown bank profile %q", ErrInvalidConfig, "acme")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
