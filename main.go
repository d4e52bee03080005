package main

import (
	"os"

	"github.com/firefly-engineering/squid-in-a-can/cmd"
	"github.com/firefly-engineering/squid-in-a-can/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
