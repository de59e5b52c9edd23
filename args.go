package main

import (
	"fmt"
	"math/big"

	"github.com/agaraleas/AddTwoValues/calc"
	"github.com/agaraleas/AddTwoValues/config"
	"github.com/agaraleas/AddTwoValues/logging"
)

// Interface for generic Command Line Argument handling
type CmdLineArgError struct {
	msg  string
	code ReturnCode
}

func (e *CmdLineArgError) Error() string {
	return e.msg
}

type CmdLineArg interface {
	token() string
	consume(value string, cfg *config.AppConfig) *CmdLineArgError
	handle(cfg *config.AppConfig) *CmdLineArgError
}

func parseCommandLineArgs(args []string, cfg *config.AppConfig, log logging.AbstractLogger) *CmdLineArgError {
	templates := gatherCommandLineArgTemplates()

	if err := scanCommandLineArgs(args, templates, cfg, log); err != nil {
		return err
	}

	return handleCommandLineArgValues(templates, cfg)
}

// scanCommandLineArgs visits every token, value tokens included. Tokens that
// match no template are skipped and a repeated flag overwrites the earlier value.
func scanCommandLineArgs(args []string, templates []CmdLineArg, cfg *config.AppConfig, log logging.AbstractLogger) *CmdLineArgError {
	for i, token := range args {
		arg := lookupCmdLineArg(templates, token)
		if arg == nil {
			continue
		}

		if i+1 >= len(args) {
			log.Debugf("Flag %s is the last token, no value follows", token)
			return &CmdLineArgError{msg: "error: missing value for " + token, code: MissingValueError}
		}

		if err := arg.consume(args[i+1], cfg); err != nil {
			log.Debugf("Failed to consume value of %s: %s", token, err.msg)
			return err
		}
	}

	return nil
}

func lookupCmdLineArg(templates []CmdLineArg, token string) CmdLineArg {
	for _, arg := range templates {
		if arg.token() == token {
			return arg
		}
	}
	return nil
}

func handleCommandLineArgValues(args []CmdLineArg, cfg *config.AppConfig) *CmdLineArgError {
	for _, arg := range args {
		err := arg.handle(cfg)

		if err != nil {
			return err
		}
	}

	return nil
}

func gatherCommandLineArgTemplates() []CmdLineArg {
	var argTemplates []CmdLineArg
	argTemplates = append(argTemplates, &operandACmdLineArg{})
	argTemplates = append(argTemplates, &operandBCmdLineArg{})
	return argTemplates
}

func parseOperand(token string, value string) (*big.Int, *CmdLineArgError) {
	operand, err := calc.ParseInteger(value)
	if err != nil {
		errMsg := fmt.Sprintf("error: invalid integer for %s: %q", token, value)
		return nil, &CmdLineArgError{msg: errMsg, code: InvalidIntegerError}
	}
	return operand, nil
}

// Cmd Line Arg: --a
type operandACmdLineArg struct{}

func (arg *operandACmdLineArg) token() string {
	return "--a"
}

func (arg *operandACmdLineArg) consume(value string, cfg *config.AppConfig) *CmdLineArgError {
	operand, err := parseOperand(arg.token(), value)
	if err != nil {
		return err
	}
	cfg.Operands.A = operand
	return nil
}

func (arg *operandACmdLineArg) handle(cfg *config.AppConfig) *CmdLineArgError {
	if cfg.Operands.A == nil {
		return &CmdLineArgError{msg: "error: missing --a", code: MissingAError}
	}
	return nil
}

// Cmd Line Arg: --b
type operandBCmdLineArg struct{}

func (arg *operandBCmdLineArg) token() string {
	return "--b"
}

func (arg *operandBCmdLineArg) consume(value string, cfg *config.AppConfig) *CmdLineArgError {
	operand, err := parseOperand(arg.token(), value)
	if err != nil {
		return err
	}
	cfg.Operands.B = operand
	return nil
}

func (arg *operandBCmdLineArg) handle(cfg *config.AppConfig) *CmdLineArgError {
	if cfg.Operands.B == nil {
		return &CmdLineArgError{msg: "error: missing --b", code: MissingBError}
	}
	return nil
}
