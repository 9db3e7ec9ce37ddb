package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/workboard/internal/cli"
	"github.com/alexanderramin/workboard/internal/config"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app := &cli.App{
		Config: config.LoadConfig(),
		Output: cli.OutputTable,
		Stderr: os.Stderr,
	}

	// Piped output defaults to JSON; --output overrides.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		app.Output = cli.OutputJSON
	}

	return cli.NewRootCmd(app).Execute()
}
