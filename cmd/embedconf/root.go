package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"embedconf"
)

var (
	flagVerbose  bool
	flagEnvVar   string
	flagRootVar  string
	flagManifest string
	flagDeclare  string
)

func newRootCommand() *cobra.Command {
	defaults := embedconf.DefaultLocateOptions()

	rootCmd := &cobra.Command{
		Use:   "embedconf",
		Short: "Resolve config fields into typed values and generated Go constants",
		Long: `embedconf resolves dotted field paths against a configuration document
whose location comes from the environment or a project manifest, and
either prints the value or writes it into generated Go source.

The document is found through EMBEDCONF_PATH, or through EMBEDCONF_ROOT
plus the package.metadata.embedded-config.path field of package.toml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetLevel(log.InfoLevel)
			if flagVerbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&flagEnvVar, "path-var", defaults.EnvVar, "environment variable holding the document path")
	pf.StringVar(&flagRootVar, "root-var", defaults.RootVar, "environment variable holding the project root")
	pf.StringVar(&flagManifest, "manifest", defaults.Manifest, "manifest file name under the project root")
	pf.StringVar(&flagDeclare, "manifest-field", defaults.ManifestField, "manifest field declaring the document path")

	rootCmd.AddCommand(newGetCommand())
	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd
}

// locateOptions builds discovery options from the persistent flags.
func locateOptions() embedconf.LocateOptions {
	return embedconf.LocateOptions{
		EnvVar:        flagEnvVar,
		RootVar:       flagRootVar,
		Manifest:      flagManifest,
		ManifestField: flagDeclare,
	}
}
