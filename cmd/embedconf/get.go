package main

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"embedconf"
)

// newGetCommand creates the get subcommand
func newGetCommand() *cobra.Command {
	var flagType string

	cmd := &cobra.Command{
		Use:   "get <field>",
		Short: "Resolve a dotted field path and print its value",
		Long: `Get resolves a single dotted field path against the discovered
configuration document and prints the value on stdout.

With --type, the value must hold exactly that type; there is no
conversion. Without it, any scalar is accepted.

Example:
  embedconf get server.host
  embedconf get server.port --type int`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(cmd.OutOrStdout(), args[0], flagType)
		},
	}

	cmd.Flags().StringVarP(&flagType, "type", "t", "", "required value type: string, int, float, or bool")

	return cmd
}

func runGet(out io.Writer, field, typ string) error {
	resolver := embedconf.NewResolverWithOptions(locateOptions())
	log.WithFields(log.Fields{"field": field, "type": typ}).Debug("resolving field")

	var val any
	var err error
	switch typ {
	case "string":
		val, err = resolver.String(field)
	case "int":
		val, err = resolver.Int64(field)
	case "float":
		val, err = resolver.Float64(field)
	case "bool":
		val, err = resolver.Bool(field)
	case "":
		val, err = resolver.Scalar(field)
	default:
		return fmt.Errorf("unknown type %q (want string, int, float, or bool)", typ)
	}
	if err != nil {
		return fmt.Errorf("resolving %q: %w", field, err)
	}

	fmt.Fprintln(out, val)
	return nil
}
