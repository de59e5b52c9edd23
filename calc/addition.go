package calc

import (
	"fmt"
	"math/big"
)

type Addition struct {
	A   *big.Int
	B   *big.Int
	Sum *big.Int
}

func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

func NewAddition(a, b *big.Int) Addition {
	return Addition{A: a, B: b, Sum: Add(a, b)}
}

// String renders the addition as "a + b = sum".
func (a Addition) String() string {
	return fmt.Sprintf("%s + %s = %s", a.A, a.B, a.Sum)
}
