package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/fatih/color"

	"github.com/shibukawa/uritemplate"
	"github.com/shibukawa/uritemplate/registry"
)

// Sentinel errors
var (
	ErrNoMatch            = errors.New("no template matched")
	ErrNoTemplatesDefined = errors.New("no templates given on the command line or in configuration")
)

// MatchCmd represents the match command
type MatchCmd struct {
	URI      string   `arg:"" help:"URI to match"`
	Template []string `short:"t" help:"Template to try (repeatable); overrides configured templates"`
	Format   string   `help:"Output format (json, text); overrides configuration"`
}

// Run executes the match command
func (cmd *MatchCmd) Run(ctx *Context) error {
	config, err := uritemplate.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	reg, err := buildRegistry(cmd.Template, config)
	if err != nil {
		return err
	}

	if reg.Len() == 0 {
		return ErrNoTemplatesDefined
	}

	if ctx.Verbose {
		color.Blue("Matching %s against %d templates", cmd.URI, reg.Len())
	}

	template, result := reg.MatchTemplate(cmd.URI)
	if result == nil {
		if !ctx.Quiet {
			color.Red("No template matched %s", cmd.URI)
		}

		return ErrNoMatch
	}

	format := cmd.Format
	if format == "" {
		format = config.Output.Format
	}

	return printResult(template, result, format, config.Output.Pretty)
}

// buildRegistry fills a registry from the command line, or from the inline
// templates and catalog files of the configuration.
func buildRegistry(templates []string, config *uritemplate.Config) (*registry.Registry, error) {
	reg := registry.New()

	if len(templates) > 0 {
		for _, template := range templates {
			if err := reg.Add(template); err != nil {
				return nil, fmt.Errorf("invalid template %q: %w", template, err)
			}
		}

		return reg, nil
	}

	for _, template := range config.Templates {
		if err := reg.Add(template); err != nil {
			return nil, fmt.Errorf("invalid configured template %q: %w", template, err)
		}
	}

	for _, path := range config.Catalogs {
		if err := reg.LoadFile(path); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

func printResult(template string, result *uritemplate.MatchResult, format string, pretty bool) error {
	if format == "text" {
		color.Green("matched %s", template)

		names := make([]string, 0, len(result.Params))
		for name := range result.Params {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			fmt.Printf("%s=%v\n", name, result.Params[name])
		}

		return nil
	}

	out := map[string]any{
		"template": template,
		"params":   result.Params,
	}

	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = json.MarshalIndent(out, "", "  ")
	} else {
		data, err = json.Marshal(out)
	}

	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	fmt.Println(string(data))

	return nil
}
