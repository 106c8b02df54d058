package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/shibukawa/uritemplate"
	"github.com/shibukawa/uritemplate/parser"
	"github.com/shibukawa/uritemplate/registry"
)

// Sentinel errors
var ErrValidationFailed = errors.New("template validation failed")

// ValidateCmd represents the validate command
type ValidateCmd struct {
	Templates []string `arg:"" optional:"" help:"Templates to validate; defaults to configured templates and catalogs"`
}

// Run executes the validate command
func (cmd *ValidateCmd) Run(ctx *Context) error {
	templates := cmd.Templates

	if len(templates) == 0 {
		config, err := uritemplate.LoadConfig(ctx.Config)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		templates = append(templates, config.Templates...)

		for _, path := range config.Catalogs {
			fromCatalog, err := registry.LoadCatalog(path)
			if err != nil {
				return err
			}

			templates = append(templates, fromCatalog...)
		}
	}

	if len(templates) == 0 {
		return ErrNoTemplatesDefined
	}

	failed := 0

	for _, template := range templates {
		parsed, err := parser.Parse(template)
		if err != nil {
			failed++

			if !ctx.Quiet {
				color.Red("✗ %s: %v", template, err)
			}

			continue
		}

		if !ctx.Quiet {
			if ctx.Verbose {
				color.Green("✓ %s (variables: %v)", template, parsed.Names())
			} else {
				color.Green("✓ %s", template)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d templates invalid", ErrValidationFailed, failed, len(templates))
	}

	if !ctx.Quiet {
		fmt.Printf("%d templates validated\n", len(templates))
	}

	return nil
}
