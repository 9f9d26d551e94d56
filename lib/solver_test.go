package lib

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDaysRegistered(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4, 5}, Days())
}

func TestLookupUnknownDay(t *testing.T) {
	_, err := Lookup(24)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownDay))
}

func TestRegisterTwice(t *testing.T) {
	err := Register(3, NewDay03)
	require.Error(t, err)
}

func TestRegisterOutOfRange(t *testing.T) {
	require.Error(t, Register(0, NewDay03))
	require.Error(t, Register(26, NewDay03))
}
