package cli

import (
	"context"
	"flag"
	"fmt"

	"alzes/internal/core"
	"alzes/internal/log"
	"alzes/internal/records"
)

func (a *App) runAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	date := fs.String("date", "", "record date (DD-MM-YYYY)")
	br := fs.Int("br", 0, "BR count")
	na := fs.Int("na", 0, "NA count")
	notes := fs.String("notes", "", "free-form notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *date == "" {
		return fmt.Errorf("add: --date is required")
	}

	rec, err := core.NewRecord(*date, *br, *na, *notes)
	if err != nil {
		return fmt.Errorf("add: %w", err)
	}
	if err := a.store.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("add: %w", err)
	}

	a.logger.InfoContext(ctx, "Record saved",
		log.FieldOperation, log.OpUpsert,
		log.FieldDate, rec.Date.String())
	return nil
}

func (a *App) runEdit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	date := fs.String("date", "", "record date (DD-MM-YYYY)")
	br := fs.Int("br", 0, "BR count")
	na := fs.Int("na", 0, "NA count")
	notes := fs.String("notes", "", "free-form notes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *date == "" {
		return fmt.Errorf("edit: --date is required")
	}
	d, err := core.ParseDate(*date)
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}

	// Only flags the user actually set become part of the patch.
	patch := records.Patch{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "br":
			patch.BR = br
		case "na":
			patch.NA = na
		case "notes":
			patch.Notes = notes
		}
	})
	if patch.BR == nil && patch.NA == nil && patch.Notes == nil {
		return fmt.Errorf("edit: nothing to change")
	}

	found, err := a.store.Update(ctx, d, patch)
	if err != nil {
		return fmt.Errorf("edit: %w", err)
	}
	if !found {
		return fmt.Errorf("edit: no record for %s", d)
	}

	a.logger.InfoContext(ctx, "Record updated",
		log.FieldOperation, log.OpUpdate,
		log.FieldDate, d.String())
	return nil
}

func (a *App) runRemove(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("rm: at least one date is required")
	}

	dates := make([]core.Date, 0, fs.NArg())
	for _, arg := range fs.Args() {
		d, err := core.ParseDate(arg)
		if err != nil {
			return fmt.Errorf("rm: %w", err)
		}
		dates = append(dates, d)
	}
	if err := a.store.DeleteMany(ctx, dates); err != nil {
		return fmt.Errorf("rm: %w", err)
	}

	a.logger.InfoContext(ctx, "Records deleted",
		log.FieldOperation, log.OpDeleteMany,
		log.FieldCount, len(dates))
	return nil
}
