package calc

import (
	"errors"
	"math/big"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntegerValid(t *testing.T) {
	cases := map[string]int64{
		"0":     0,
		"5":     5,
		"-4":    -4,
		"+12":   12,
		"-0":    0,
		" 42 ":  42,
		"\t7\n": 7,
		"007":   7,
	}

	for input, expected := range cases {
		parsed, err := ParseInteger(input)
		require.Nil(t, err, "Unexpected error parsing %q", input)
		assert.Equal(t, 0, parsed.Cmp(big.NewInt(expected)), "Parsed %q as %s instead of %d", input, parsed, expected)
	}
}

func TestParseIntegerBeyondInt64(t *testing.T) {
	parsed, err := ParseInteger("123456789012345678901234567890")
	require.Nil(t, err, "Unexpected error parsing a large integer")
	assert.Equal(t, "123456789012345678901234567890", parsed.String())
}

func TestParseIntegerInvalid(t *testing.T) {
	inputs := []string{"", " ", "-", "+", "abc", "1.5", "0x10", "1_000", "12a", "--5", "+-1", "1 2", "--b"}

	for _, input := range inputs {
		parsed, err := ParseInteger(input)
		assert.Nil(t, parsed, "Expected no value when parsing %q", input)
		require.NotNil(t, err, "Expected error when parsing %q", input)

		var invalid *InvalidIntegerError
		require.True(t, errors.As(err, &invalid), "Error for %q has unexpected type", input)
		assert.Equal(t, input, invalid.Value)
		assert.True(t, errors.Is(err, strconv.ErrSyntax), "Error for %q does not wrap strconv.ErrSyntax", input)
	}
}

func TestInvalidIntegerErrorMessage(t *testing.T) {
	_, err := ParseInteger("abc")
	require.NotNil(t, err)
	assert.Equal(t, `invalid integer "abc": invalid syntax`, err.Error())
}
