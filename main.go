package main

import (
	"fmt"
	"io"
	"os"

	"github.com/agaraleas/AddTwoValues/calc"
	"github.com/agaraleas/AddTwoValues/config"
	"github.com/agaraleas/AddTwoValues/logging"
)

func main() {
	logging.InitLogging()
	os.Exit(int(run(os.Args[1:], os.Stdout)))
}

func run(args []string, out io.Writer) ReturnCode {
	cfg := config.NewAppConfig()
	return calculate(args, out, cfg, logging.ForInvocation(cfg.InvocationID))
}

// calculate writes exactly one line to out: the sum or the reason there is none.
func calculate(args []string, out io.Writer, cfg *config.AppConfig, log logging.AbstractLogger) ReturnCode {
	log.Debugf("Scanning %d command line tokens", len(args))

	if err := parseCommandLineArgs(args, cfg, log); err != nil {
		log.Debugf("Command line rejected with code %d", err.code)
		fmt.Fprintln(out, err.msg)
		return err.code
	}

	addition := calc.NewAddition(cfg.Operands.A, cfg.Operands.B)
	log.Debugf("Computed %s", addition)
	fmt.Fprintln(out, addition)
	return NormalExit
}
