package cli

import (
	"context"
	"flag"
	"fmt"

	"alzes/internal/exchange"
	"alzes/internal/views"
)

func (a *App) runImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	overwrite := fs.Bool("overwrite", false, "replace records whose date already exists")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("import: at least one file is required")
	}

	im := exchange.NewImporter(a.store, a.logger)
	summary, err := im.ImportFiles(ctx, fs.Args(), *overwrite)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Fprintf(a.out, "added %d, overwritten %d, skipped %d duplicates, %d rows unusable\n",
		summary.Added, summary.Overwritten, summary.SkippedDuplicates, summary.SkippedRows)
	return nil
}

func (a *App) runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	from := fs.String("from", "", "start date (DD-MM-YYYY), inclusive")
	to := fs.String("to", "", "end date (DD-MM-YYYY), inclusive")
	find := fs.String("find", "", "keep dates containing this text")
	monthly := fs.Bool("monthly", false, "group by month")
	format := fs.String("format", "csv", "output format: csv or json")
	out := fs.String("out", "", "output file, stdout when empty")
	if err := fs.Parse(args); err != nil {
		return err
	}

	f := exchange.Format(*format)
	if !f.IsValid() {
		return fmt.Errorf("export: unsupported format %q", *format)
	}

	ex := exchange.NewExporter(a.logger)

	// The JSON backup is always the full lossless collection; filters
	// only shape the CSV view.
	if f == exchange.FormatJSON {
		if *out != "" {
			return ex.ExportBackupFile(ctx, *out, a.store.Records())
		}
		return ex.WriteBackup(a.out, a.store.Records())
	}

	opts := views.Options{Start: *from, End: *to, Query: *find, Mode: views.Daily}
	if *monthly {
		opts.Mode = views.Monthly
	}
	v := views.Build(a.store.Records(), opts)
	if *out != "" {
		return ex.ExportViewFile(ctx, *out, v)
	}
	return ex.WriteView(a.out, v)
}
