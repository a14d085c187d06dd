package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dataskools.io/landing-web/internal/landing/page"
)

type renderFlags struct {
	out         string
	menuOpen    bool
	language    string
	assetPrefix string
	noTailwind  bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the landing page to a static HTML file",
		Long:  `Render the landing page document once and write it to --out, or to stdout when no file is given.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := root.loadCatalog()
			if err != nil {
				return err
			}

			opts := []page.Option{
				page.WithMenuOpen(flags.menuOpen),
				page.WithLanguage(flags.language),
				page.WithTailwindCDN(!flags.noTailwind),
			}
			if flags.assetPrefix != "" {
				opts = append(opts, page.WithAssetPrefix(flags.assetPrefix))
			}

			var buf bytes.Buffer
			if err := page.New(cat, opts...).Render(cmd.Context(), &buf); err != nil {
				return fmt.Errorf("render page: %w", err)
			}

			if flags.out == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(flags.out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", flags.out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", flags.out, buf.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output file (defaults to stdout)")
	cmd.Flags().BoolVar(&flags.menuOpen, "menu-open", false, "Render with the mega menu expanded")
	cmd.Flags().StringVar(&flags.language, "lang", "", "Document language (defaults to de)")
	cmd.Flags().StringVar(&flags.assetPrefix, "asset-prefix", "", "URL prefix for static assets (defaults to /static)")
	cmd.Flags().BoolVar(&flags.noTailwind, "no-tailwind", false, "Omit the Tailwind CDN script")

	return cmd
}
