package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"embedconf"
)

// generatePlan is the generation manifest: which fields to resolve and the
// Go file to write them into.
type generatePlan struct {
	Package string       `toml:"package"`
	Output  string       `toml:"output"`
	Values  []valueEntry `toml:"value"`
}

// valueEntry describes one generated constant.
type valueEntry struct {
	Name     string `toml:"name"`
	Field    string `toml:"field"`
	Type     string `toml:"type"`
	Optional bool   `toml:"optional"`
}

// newGenerateCommand creates the generate subcommand
func newGenerateCommand() *cobra.Command {
	var flagPlan string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go constants from resolved config fields",
		Long: `Generate reads a generation plan (TOML), resolves every listed field
against the discovered configuration document, and writes a Go source
file of typed constants. Intended to run under go:generate:

  //go:generate embedconf generate

A mandatory field that cannot be resolved fails the run, and with it the
caller's build. An entry marked optional instead gets a <Name>Present
boolean constant and a zero value when the field is absent.

Plan format:

  package = "main"
  output = "embedconf_gen.go"

  [[value]]
  name = "Greeting"
  field = "greeting.text"
  type = "string"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(flagPlan)
		},
	}

	cmd.Flags().StringVarP(&flagPlan, "plan", "p", "embedconf.gen.toml", "path to the generation plan")

	return cmd
}

func runGenerate(planPath string) error {
	planDoc, err := embedconf.LoadDocument(planPath)
	if err != nil {
		return fmt.Errorf("loading generation plan: %w", err)
	}

	var plan generatePlan
	if err := planDoc.Decode("", &plan); err != nil {
		return fmt.Errorf("reading generation plan '%s': %w", planPath, err)
	}
	if plan.Package == "" {
		return fmt.Errorf("generation plan '%s' does not set package", planPath)
	}
	if plan.Output == "" {
		plan.Output = "embedconf_gen.go"
	}
	if len(plan.Values) == 0 {
		return fmt.Errorf("generation plan '%s' lists no values", planPath)
	}

	doc, err := embedconf.NewResolverWithOptions(locateOptions()).Document()
	if err != nil {
		return err
	}

	src, err := renderSource(doc, plan)
	if err != nil {
		return err
	}

	if err := os.WriteFile(plan.Output, src, 0644); err != nil {
		return fmt.Errorf("writing '%s': %w", plan.Output, err)
	}

	log.WithFields(log.Fields{"output": plan.Output, "values": len(plan.Values)}).Info("generated")
	return nil
}

// renderSource resolves every plan entry against doc and renders the
// generated file, gofmt-formatted.
func renderSource(doc *embedconf.Document, plan generatePlan) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by embedconf. DO NOT EDIT.\n\npackage %s\n\n", plan.Package)

	for _, entry := range plan.Values {
		if entry.Name == "" || entry.Field == "" {
			return nil, fmt.Errorf("generation plan entry needs both name and field (got name=%q field=%q)", entry.Name, entry.Field)
		}

		goType, lit, err := resolveLiteral(doc, entry)
		if err != nil {
			if entry.Optional && errors.Is(err, embedconf.ErrMissingField) {
				fmt.Fprintf(&buf, "const %sPresent bool = false\n\nconst %s %s = %s\n\n",
					entry.Name, entry.Name, goType, zeroLiteral(goType))
				log.WithField("field", entry.Field).Debug("optional field absent")
				continue
			}
			return nil, fmt.Errorf("resolving %q for %s: %w", entry.Field, entry.Name, err)
		}

		if entry.Optional {
			fmt.Fprintf(&buf, "const %sPresent bool = true\n\n", entry.Name)
		}
		fmt.Fprintf(&buf, "const %s %s = %s\n\n", entry.Name, goType, lit)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

// resolveLiteral resolves one entry and renders its value as a Go literal.
func resolveLiteral(doc *embedconf.Document, entry valueEntry) (goType, lit string, err error) {
	switch entry.Type {
	case "string", "":
		s, err := doc.String(entry.Field)
		if err != nil {
			return "string", "", err
		}
		return "string", strconv.Quote(s), nil
	case "int":
		i, err := doc.Int64(entry.Field)
		if err != nil {
			return "int64", "", err
		}
		return "int64", strconv.FormatInt(i, 10), nil
	case "float":
		f, err := doc.Float64(entry.Field)
		if err != nil {
			return "float64", "", err
		}
		return "float64", strconv.FormatFloat(f, 'g', -1, 64), nil
	case "bool":
		b, err := doc.Bool(entry.Field)
		if err != nil {
			return "bool", "", err
		}
		return "bool", strconv.FormatBool(b), nil
	default:
		return "", "", fmt.Errorf("entry %s has unknown type %q (want string, int, float, or bool)", entry.Name, entry.Type)
	}
}

func zeroLiteral(goType string) string {
	switch goType {
	case "string":
		return `""`
	case "bool":
		return "false"
	default:
		return "0"
	}
}
