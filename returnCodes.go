package main

type ReturnCode int

const (
	NormalExit ReturnCode = iota
	MissingAError
	MissingBError
	InvalidIntegerError
	MissingValueError
)
