package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dataskools.io/landing-web/internal/landing/hoverintent"
	"dataskools.io/landing-web/internal/platform/observability"
	"dataskools.io/landing-web/internal/preview"
)

type previewFlags struct {
	closeDelay string
	logFile    string
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the navigation bar and mega menu in the terminal",
		Long:  `Launch an interactive terminal preview. Moving the mouse over the header opens the menu with the same hover-intent delays the page uses.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := root.loadCatalog()
			if err != nil {
				return err
			}

			logger := zap.NewNop()
			if flags.logFile != "" {
				logger, err = observability.NewLogger(
					observability.WithLevel(root.logLevel),
					observability.WithOutputPaths(flags.logFile),
				)
				if err != nil {
					return fmt.Errorf("init logger: %w", err)
				}
				defer func() { _ = logger.Sync() }()
			}

			opts := []preview.Option{preview.WithLogger(logger.Named("preview"))}
			if flags.closeDelay != "" {
				d, err := parseDelay(flags.closeDelay)
				if err != nil {
					return err
				}
				opts = append(opts, preview.WithIntentOptions(hoverintent.WithCloseDelay(d)))
			}

			return preview.Run(cmd.Context(), cat, preview.RunConfig{
				Input:  cmd.InOrStdin(),
				Output: cmd.OutOrStdout(),
			}, opts...)
		},
	}

	cmd.Flags().StringVar(&flags.closeDelay, "close-delay", "", "Menu close delay, e.g. 250ms (defaults to 120ms)")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Write structured logs to this file; the terminal is owned by the preview")

	return cmd
}
