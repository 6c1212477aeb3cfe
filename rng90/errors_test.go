package rng90

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommError(t *testing.T) {
	cause := errors.New("NACK")
	err := &CommError{Op: "wake", Err: cause}

	require.Equal(t, "wake: bus error: NACK", err.Error())
	require.ErrorIs(t, err, cause)

	require.True(t, IsCommError(err))
	require.True(t, IsCommError(fmt.Errorf("init: %w", err)))
	require.False(t, IsCommError(cause))
	require.False(t, IsCommError(nil))
}
