package config

import (
	"math/big"

	"github.com/google/uuid"
)

// Operands hold the values given on the command line. A nil operand was never supplied.
type Operands struct {
	A *big.Int
	B *big.Int
}

type AppConfig struct {
	Operands     Operands
	InvocationID uuid.UUID
}

func NewAppConfig() *AppConfig {
	return &AppConfig{InvocationID: uuid.New()}
}
