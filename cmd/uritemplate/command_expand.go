package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/shibukawa/uritemplate"
	"github.com/shibukawa/uritemplate/expander"
	"github.com/shibukawa/uritemplate/parser"
)

// Sentinel errors
var ErrInvalidParamFormat = errors.New("parameter must be in name=value form")

// ExpandCmd represents the expand command
type ExpandCmd struct {
	Template string   `arg:"" help:"URI template to expand"`
	Param    []string `short:"p" help:"Variable binding in name=value form; repeat a name to build a list"`
}

// Run executes the expand command
func (cmd *ExpandCmd) Run(ctx *Context) error {
	parsed, err := parser.Parse(cmd.Template)
	if err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	values, err := parseParams(cmd.Param)
	if err != nil {
		return err
	}

	if ctx.Verbose {
		color.Blue("Expanding %s with %d variables", cmd.Template, len(values))
	}

	fmt.Println(expander.Expand(parsed, values))

	return nil
}

// parseParams turns repeated name=value flags into expansion values. A name
// given more than once becomes a list.
func parseParams(params []string) (uritemplate.Values, error) {
	values := uritemplate.Values{}

	for _, param := range params {
		name, value, ok := strings.Cut(param, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: '%s'", ErrInvalidParamFormat, param)
		}

		switch existing := values[name].(type) {
		case nil:
			values[name] = value
		case string:
			values[name] = []string{existing, value}
		case []string:
			values[name] = append(existing, value)
		}
	}

	return values, nil
}
