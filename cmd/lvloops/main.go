// Command lvloops runs the lvloops library routines from the shell.
//
//	lvloops spiral 4
//	LVLOOPS_FORMAT=yaml lvloops rotate '[[1,2,3],[4,5,6],[7,8,9]]'
//	lvloops nearest 123450
package main

import (
	"fmt"
	"os"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvloops/internal/app"
	"github.com/katalvlaran/lvloops/internal/config"
	"github.com/katalvlaran/lvloops/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 1 && (args[0] == "-h" || args[0] == "--help" || args[0] == "help") {
		fmt.Fprint(os.Stdout, app.Usage)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lvloops: %v\n", err)
		return 1
	}

	log := logger.New(cfg.LogLevel, os.Stderr)
	defer func() { _ = log.Sync() }()

	if err := app.New(cfg, log, os.Stdout).Run(args); err != nil {
		log.Error("command failed", zap.Error(err))
		if errors.Is(err, app.ErrUsage) {
			fmt.Fprint(os.Stderr, app.Usage)
		}
		return 1
	}

	return 0
}
