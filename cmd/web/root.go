package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dataskools.io/landing-web/internal/landing/content"
)

type rootFlags struct {
	catalogPath string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "web",
		Short:         "dataskools landing page server and tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.catalogPath, "catalog", "", "Path to a catalog YAML file (defaults to the embedded catalog)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) loadCatalog() (*content.Catalog, error) {
	if f.catalogPath == "" {
		cat, err := content.Default()
		if err != nil {
			return nil, fmt.Errorf("load embedded catalog: %w", err)
		}
		return cat, nil
	}
	return content.LoadFile(f.catalogPath)
}
