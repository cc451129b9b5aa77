package cli

import (
	"context"
	"flag"
	"fmt"

	"alzes/internal/core"
)

func (a *App) runTheme(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("theme", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch fs.NArg() {
	case 0:
		fmt.Fprintln(a.out, a.store.Theme(ctx))
		return nil
	case 1:
		theme, err := core.ParseTheme(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("theme: %w", err)
		}
		if err := a.store.SetTheme(ctx, theme); err != nil {
			return fmt.Errorf("theme: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("theme: expected at most one argument")
	}
}
