package exchange

import (
	"context"
	"fmt"
	"io"
	"os"

	"alzes/internal/core"
	"alzes/internal/log"
	"alzes/internal/views"
)

// Format selects the export encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is supported.
func (f Format) IsValid() bool {
	switch f {
	case FormatCSV, FormatJSON:
		return true
	default:
		return false
	}
}

// Exporter renders views and backups.
type Exporter struct {
	logger *log.Logger
}

// NewExporter creates an exporter.
func NewExporter(logger *log.Logger) *Exporter {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Exporter{logger: logger.WithComponent(log.ComponentExchange)}
}

// WriteView renders the view as CSV to w, daily rows or monthly
// summaries depending on the view's mode. The document is written
// exactly as exported, with no trailing newline.
func (ex *Exporter) WriteView(w io.Writer, v views.View) error {
	var lines []Line
	if v.Mode == views.Monthly {
		lines = LinesFromMonths(v.Months)
	} else {
		lines = LinesFromRecords(v.Days)
	}
	_, err := io.WriteString(w, ExportCSV(lines))
	return err
}

// WriteBackup renders the full collection as the lossless JSON array,
// the same document the store persists.
func (ex *Exporter) WriteBackup(w io.Writer, recs []core.Record) error {
	data, err := core.EncodeRecords(recs)
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportViewFile writes the view CSV to path.
func (ex *Exporter) ExportViewFile(ctx context.Context, path string, v views.View) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	werr := ex.WriteView(f, v)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return fmt.Errorf("close %s: %w", path, cerr)
	}

	ex.logger.InfoContext(ctx, "Export written",
		log.FieldOperation, log.OpExport,
		log.FieldFile, path,
		log.FieldCount, v.Len())
	return nil
}

// ExportBackupFile writes the JSON backup to path.
func (ex *Exporter) ExportBackupFile(ctx context.Context, path string, recs []core.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	werr := ex.WriteBackup(f, recs)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return fmt.Errorf("close %s: %w", path, cerr)
	}

	ex.logger.InfoContext(ctx, "Backup written",
		log.FieldOperation, log.OpExport,
		log.FieldFile, path,
		log.FieldCount, len(recs))
	return nil
}
