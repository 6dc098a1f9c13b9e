package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("admin123")
	WipeByteArray(b)
	for i, v := range b {
		require.Zero(t, v, "byte %d not wiped", i)
	}
}

func TestWipeByteArray_Nil(t *testing.T) {
	require.NotPanics(t, func() { WipeByteArray(nil) })
}
