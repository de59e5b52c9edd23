package calc

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

type InvalidIntegerError struct {
	Value string
	Err   error
}

func (e *InvalidIntegerError) Error() string {
	return fmt.Sprintf("invalid integer %q: %v", e.Value, e.Err)
}

func (e *InvalidIntegerError) Unwrap() error {
	return e.Err
}

// ParseInteger reads a base-10 integer of any size. Surrounding whitespace
// and a single leading sign are allowed, nothing else.
func ParseInteger(value string) (*big.Int, error) {
	digits := strings.TrimSpace(value)
	if !isDecimal(digits) {
		return nil, &InvalidIntegerError{Value: value, Err: strconv.ErrSyntax}
	}

	integer, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, &InvalidIntegerError{Value: value, Err: strconv.ErrSyntax}
	}
	return integer, nil
}

func isDecimal(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
