package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/contact-cli/internal/sources"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Print the active fallback source catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := sources.Default()
		if cfg.Resolve.SourcesPath != "" {
			loaded, err := sources.Load(cfg.Resolve.SourcesPath)
			if err != nil {
				return eris.Wrap(err, "load source catalog")
			}
			catalog = loaded
		}

		out, err := yaml.Marshal(map[string]*sources.Catalog{"sources": catalog})
		if err != nil {
			return eris.Wrap(err, "marshal catalog")
		}
		_, _ = os.Stdout.Write(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
