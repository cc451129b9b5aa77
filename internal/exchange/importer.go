package exchange

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"alzes/internal/log"
	"alzes/internal/records"
)

// Importer merges CSV documents into the record store.
type Importer struct {
	store  *records.Store
	logger *log.Logger
}

// NewImporter creates an importer writing through the given store.
func NewImporter(store *records.Store, logger *log.Logger) *Importer {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Importer{
		store:  store,
		logger: logger.WithComponent(log.ComponentExchange),
	}
}

// Summary reports what one import run did. Added and Overwritten count
// distinct dates written; the Skipped fields count input rows.
type Summary struct {
	Added             int
	Overwritten       int
	SkippedDuplicates int
	SkippedRows       int
}

// Total returns how many rows the run looked at.
func (s Summary) Total() int {
	return s.Added + s.Overwritten + s.SkippedDuplicates + s.SkippedRows
}

// ImportFiles reads every file concurrently, parses each document, and
// merges the accepted rows into the store. One uniform decision applies
// to every date that already existed before the run: with overwrite set
// such rows replace the stored record, without it they are skipped and
// counted. Duplicate dates inside the input itself are last-wins. Any
// unreadable or unusable file fails the whole run before the merge
// starts.
func (im *Importer) ImportFiles(ctx context.Context, paths []string, overwrite bool) (Summary, error) {
	if len(paths) == 0 {
		return Summary{}, errors.New("no input files")
	}

	docs := make([]string, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			docs[i] = string(data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	parsed := make([]Import, len(docs))
	for i, doc := range docs {
		p, err := ParseCSV(doc)
		if err != nil {
			return Summary{}, fmt.Errorf("%s: %w", paths[i], err)
		}
		parsed[i] = p
	}

	return im.merge(ctx, parsed, overwrite)
}

func (im *Importer) merge(ctx context.Context, parsed []Import, overwrite bool) (Summary, error) {
	existing := make(map[string]bool)
	for _, r := range im.store.Records() {
		existing[r.Date.String()] = true
	}

	summary := Summary{}
	counted := make(map[string]bool)
	for _, p := range parsed {
		summary.SkippedRows += p.Skipped
		for _, rec := range p.Records {
			key := rec.Date.String()
			if existing[key] && !overwrite {
				summary.SkippedDuplicates++
				continue
			}
			if err := im.store.Upsert(ctx, rec); err != nil {
				return summary, fmt.Errorf("import %s: %w", key, err)
			}
			if counted[key] {
				continue
			}
			counted[key] = true
			if existing[key] {
				summary.Overwritten++
			} else {
				summary.Added++
			}
		}
	}

	im.logger.InfoContext(ctx, "Import finished",
		log.FieldOperation, log.OpImport,
		"added", summary.Added,
		"overwritten", summary.Overwritten,
		"skipped_duplicates", summary.SkippedDuplicates,
		"skipped_rows", summary.SkippedRows)

	return summary, nil
}
