package preview

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"dataskools.io/landing-web/internal/landing/content"
)

// RunConfig configures Run.
type RunConfig struct {
	Input  io.Reader
	Output io.Writer
}

// Run starts the interactive preview and blocks until the user quits or ctx is done.
func Run(ctx context.Context, cat *content.Catalog, cfg RunConfig, opts ...Option) error {
	model := NewModel(cat, opts...)
	defer model.Close()

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	}
	if cfg.Input != nil {
		programOpts = append(programOpts, tea.WithInput(cfg.Input))
	}
	if cfg.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(cfg.Output))
	}

	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("preview: run program: %w", err)
	}
	return nil
}
