package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// Context represents the global context for commands
type Context struct {
	Config  string
	Verbose bool
	Quiet   bool
}

// CLI represents the command-line interface
var CLI struct {
	Config   string      `help:"Configuration file path" default:"uritemplate.yaml"`
	Verbose  bool        `help:"Enable verbose output" short:"v"`
	Quiet    bool        `help:"Suppress output" short:"q"`
	Expand   ExpandCmd   `cmd:"" help:"Expand a URI template with variable values"`
	Match    MatchCmd    `cmd:"" help:"Match a URI against the configured templates"`
	Validate ValidateCmd `cmd:"" help:"Validate URI templates"`
	Init     InitCmd     `cmd:"" help:"Initialize a new uritemplate project"`
	Version  VersionCmd  `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run() error {
	fmt.Println("uritemplate v0.1.0")
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	// Create context with config path
	appCtx := &Context{
		Config:  CLI.Config,
		Verbose: CLI.Verbose,
		Quiet:   CLI.Quiet,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
