package cli

import (
	"context"
	"fmt"
	"io"

	"alzes/internal/log"
	"alzes/internal/records"
)

const usage = `usage: alzes <command> [flags]

commands:
  add     --date DD-MM-YYYY [--br N] [--na N] [--notes TEXT]   save a record
  edit    --date DD-MM-YYYY [--br N] [--na N] [--notes TEXT]   change parts of a record
  rm      DATE [DATE...]                                       delete records
  list    [--from D] [--to D] [--find TEXT] [--monthly]        show records
  import  [--overwrite] FILE [FILE...]                         merge CSV files
  export  [--monthly] [--from D] [--to D] [--find TEXT]
          [--format csv|json] [--out PATH]                     write CSV or JSON backup
  theme   [light|dark]                                         show or set the theme
`

// App wires the subcommand handlers to their dependencies. Out carries
// data output only; diagnostics go through the logger on stderr.
type App struct {
	store  *records.Store
	logger *log.Logger
	out    io.Writer
}

// NewApp creates the command surface over a loaded store.
func NewApp(store *records.Store, logger *log.Logger, out io.Writer) *App {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &App{
		store:  store,
		logger: logger.WithComponent(log.ComponentCLI),
		out:    out,
	}
}

// Run dispatches one subcommand. A nil error means the command did what
// it was asked; anything else should end the process with exit code 1.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("missing command")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "add":
		return a.runAdd(ctx, rest)
	case "edit":
		return a.runEdit(ctx, rest)
	case "rm":
		return a.runRemove(ctx, rest)
	case "list":
		return a.runList(ctx, rest)
	case "import":
		return a.runImport(ctx, rest)
	case "export":
		return a.runExport(ctx, rest)
	case "theme":
		return a.runTheme(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}
