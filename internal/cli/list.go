package cli

import (
	"context"
	"flag"
	"fmt"

	"alzes/internal/core"
	"alzes/internal/views"
)

func (a *App) runList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	from := fs.String("from", "", "start date (DD-MM-YYYY), inclusive")
	to := fs.String("to", "", "end date (DD-MM-YYYY), inclusive")
	find := fs.String("find", "", "keep dates containing this text")
	monthly := fs.Bool("monthly", false, "group by month")
	if err := fs.Parse(args); err != nil {
		return err
	}

	opts := views.Options{Start: *from, End: *to, Query: *find, Mode: views.Daily}
	if *monthly {
		opts.Mode = views.Monthly
	}

	v := views.Build(a.store.Records(), opts)
	if v.Len() == 0 {
		fmt.Fprintln(a.out, "no records")
		return nil
	}

	if v.Mode == views.Monthly {
		a.printMonths(v.Months)
	} else {
		a.printDays(v.Days)
	}
	return nil
}

func (a *App) printDays(days []core.Record) {
	fmt.Fprintf(a.out, "%-10s | %5s | %5s | %5s | %s\n", "Date", "BR", "NA", "Total", "Notes")
	fmt.Fprintf(a.out, "%-10s | %5s | %5s | %5s | %s\n", "____", "__", "__", "_____", "_____")
	totalBR, totalNA := 0, 0
	for _, r := range days {
		fmt.Fprintf(a.out, "%-10s | %5d | %5d | %5d | %s\n", r.Date, r.BR, r.NA, r.Total(), r.Notes)
		totalBR += r.BR
		totalNA += r.NA
	}
	fmt.Fprintf(a.out, "%-10s | %5d | %5d | %5d |\n", "Total", totalBR, totalNA, totalBR+totalNA)
}

func (a *App) printMonths(months []views.MonthSummary) {
	fmt.Fprintf(a.out, "%-7s | %5s | %5s | %5s\n", "Month", "BR", "NA", "Total")
	fmt.Fprintf(a.out, "%-7s | %5s | %5s | %5s\n", "_____", "__", "__", "_____")
	totalBR, totalNA := 0, 0
	for _, m := range months {
		fmt.Fprintf(a.out, "%-7s | %5d | %5d | %5d\n", m.Month, m.BR, m.NA, m.Total())
		totalBR += m.BR
		totalNA += m.NA
	}
	fmt.Fprintf(a.out, "%-7s | %5d | %5d | %5d\n", "Total", totalBR, totalNA, totalBR+totalNA)
}
