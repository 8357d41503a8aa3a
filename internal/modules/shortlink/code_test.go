package shortlink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	for _, id := range []int64{1, 15, 255, 4096, 987654321} {
		code := Encode(id)
		got, err := Decode(code)
		require.NoError(t, err, code)
		assert.Equal(t, id, got)
	}
	assert.Equal(t, "ff", Encode(255))
}

func TestDecode_Invalid(t *testing.T) {
	for _, code := range []string{"", "xyz", "-1f", "+1f", "0", "1g", "ffffffffffffffffffff"} {
		_, err := Decode(code)
		assert.ErrorIs(t, err, ErrInvalidCode, code)
	}
}
