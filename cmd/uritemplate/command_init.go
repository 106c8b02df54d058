package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// InitCmd represents the init command
type InitCmd struct {
}

// Run executes the init command
func (cmd *InitCmd) Run(ctx *Context) error {
	if ctx.Verbose {
		color.Blue("Initializing uritemplate project")
	}

	err := createFileIfMissing("uritemplate.yaml", sampleConfig)
	if err != nil {
		return fmt.Errorf("failed to create sample configuration: %w", err)
	}

	if ctx.Verbose {
		color.Green("Created uritemplate.yaml")
	}

	err = createFileIfMissing("templates.yaml", sampleCatalog)
	if err != nil {
		return fmt.Errorf("failed to create sample catalog: %w", err)
	}

	if ctx.Verbose {
		color.Green("Created templates.yaml")
	}

	if !ctx.Quiet {
		color.Green("uritemplate project initialized successfully")
		fmt.Println("\nNext steps:")
		fmt.Println("1. Edit templates.yaml to define your URI templates")
		fmt.Println("2. Run 'uritemplate validate' to check them")
		fmt.Println("3. Run 'uritemplate match <uri>' to recover variables from a URI")
	}

	return nil
}

func createFileIfMissing(path, content string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil // keep the existing file
	}

	return os.WriteFile(path, []byte(content), 0644)
}

const sampleConfig = `# Template catalog files, tried in order
catalogs:
  - "templates.yaml"

# Inline templates are also supported and are tried before catalogs
# templates:
#   - "/users/{id}"

output:
  format: "json"  # json, text
  pretty: true
`

const sampleCatalog = `# URI templates, tried in insertion order; first match wins
templates:
  - "/users/{id}"
  - "/users/{id}/posts{?page,limit}"
  - "/search{?q}"
  - "/files{/path*}{.ext}"
`
