package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"alzes/internal/core"
	"alzes/internal/log"
	"alzes/internal/records"
	"alzes/internal/storage"
)

func testLogger() *log.Logger {
	return log.New(log.Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

func testApp(t *testing.T) (*App, *records.Store, *bytes.Buffer) {
	t.Helper()
	store := records.New(storage.NewMemoryKV(), testLogger())
	out := &bytes.Buffer{}
	return NewApp(store, testLogger(), out), store, out
}

func run(t *testing.T, app *App, args ...string) {
	t.Helper()
	if err := app.Run(context.Background(), args); err != nil {
		t.Fatalf("run %v: %v", args, err)
	}
}

func TestAddAndList(t *testing.T) {
	app, store, out := testApp(t)

	run(t, app, "add", "--date", "05-01-2024", "--br", "10", "--na", "5", "--notes", "slept badly")
	run(t, app, "add", "--date", "20-01-2024", "--br", "3", "--na", "1")

	if got := store.Records(); len(got) != 2 {
		t.Fatalf("store holds %d records, want 2", len(got))
	}

	run(t, app, "list")
	text := out.String()
	if !strings.Contains(text, "05-01-2024 |    10 |     5 |    15 | slept badly") {
		t.Fatalf("list output missing row:\n%s", text)
	}
	if !strings.Contains(text, "Total      |    13 |     6 |    19 |") {
		t.Fatalf("list output missing totals:\n%s", text)
	}
	first := strings.Index(text, "20-01-2024")
	second := strings.Index(text, "05-01-2024")
	if first == -1 || second == -1 || first > second {
		t.Fatalf("rows not in descending date order:\n%s", text)
	}
}

func TestListMonthly(t *testing.T) {
	app, _, out := testApp(t)
	run(t, app, "add", "--date", "05-01-2024", "--br", "10", "--na", "5")
	run(t, app, "add", "--date", "20-01-2024", "--br", "3", "--na", "1")

	run(t, app, "list", "--monthly")
	if !strings.Contains(out.String(), "2024-01 |    13 |     6 |    19") {
		t.Fatalf("monthly output wrong:\n%s", out.String())
	}
}

func TestListEmpty(t *testing.T) {
	app, _, out := testApp(t)
	run(t, app, "list")
	if !strings.Contains(out.String(), "no records") {
		t.Fatalf("expected empty notice, got:\n%s", out.String())
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	app, store, _ := testApp(t)

	// Missing date, impossible date, wrong layout, negative counter.
	cases := [][]string{
		{"add", "--br", "1"},
		{"add", "--date", "31-02-2024", "--br", "1"},
		{"add", "--date", "2024-01-05"},
		{"add", "--date", "05-01-2024", "--br", "-1"},
	}
	for i, args := range cases {
		if err := app.Run(context.Background(), args); err == nil {
			t.Fatalf("case %d expected error for %v", i, args)
		}
	}
	if got := store.Records(); len(got) != 0 {
		t.Fatalf("rejected input must not write, store has %d records", len(got))
	}
}

func TestEditMergesOnlySetFlags(t *testing.T) {
	app, store, _ := testApp(t)
	run(t, app, "add", "--date", "05-01-2024", "--br", "10", "--na", "5", "--notes", "keep")

	run(t, app, "edit", "--date", "05-01-2024", "--br", "11")

	d, _ := core.ParseDate("05-01-2024")
	got, ok := store.Get(d)
	if !ok || got.BR != 11 || got.NA != 5 || got.Notes != "keep" {
		t.Fatalf("partial edit wrong: %+v", got)
	}

	run(t, app, "edit", "--date", "05-01-2024", "--notes", "")
	got, _ = store.Get(d)
	if got.Notes != "" || got.BR != 11 {
		t.Fatalf("explicit empty notes should clear: %+v", got)
	}
}

func TestEditErrors(t *testing.T) {
	app, _, _ := testApp(t)
	run(t, app, "add", "--date", "05-01-2024", "--br", "1")

	// Missing date, unknown date, empty patch, negative counter.
	cases := [][]string{
		{"edit", "--br", "2"},
		{"edit", "--date", "06-01-2024", "--br", "2"},
		{"edit", "--date", "05-01-2024"},
		{"edit", "--date", "05-01-2024", "--br", "-3"},
	}
	for i, args := range cases {
		if err := app.Run(context.Background(), args); err == nil {
			t.Fatalf("case %d expected error for %v", i, args)
		}
	}
}

func TestRemove(t *testing.T) {
	app, store, _ := testApp(t)
	run(t, app, "add", "--date", "05-01-2024", "--br", "1")
	run(t, app, "add", "--date", "06-01-2024", "--br", "2")
	run(t, app, "add", "--date", "07-01-2024", "--br", "3")

	run(t, app, "rm", "05-01-2024", "07-01-2024")
	got := store.Records()
	if len(got) != 1 || got[0].Date.String() != "06-01-2024" {
		t.Fatalf("unexpected survivors: %+v", got)
	}

	if err := app.Run(context.Background(), []string{"rm"}); err == nil {
		t.Fatalf("rm with no dates should fail")
	}
	if err := app.Run(context.Background(), []string{"rm", "not-a-date"}); err == nil {
		t.Fatalf("rm with a bad date should fail")
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	app, _, out := testApp(t)

	doc := "data,alzes_BR,alzes_NA,total,notas\n" +
		"20-01-2024,3,1,4,\n" +
		"05-01-2024,10,5,15,slept badly"
	path := filepath.Join(t.TempDir(), "in.csv")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	run(t, app, "import", path)
	if !strings.Contains(out.String(), "added 2") {
		t.Fatalf("import summary wrong: %s", out.String())
	}

	out.Reset()
	run(t, app, "export")
	if out.String() != doc {
		t.Fatalf("export mismatch:\ngot:\n%s\nwant:\n%s", out.String(), doc)
	}
}

func TestExportJSON(t *testing.T) {
	app, _, out := testApp(t)
	run(t, app, "add", "--date", "05-01-2024", "--br", "1", "--na", "2", "--notes", "a, b")

	run(t, app, "export", "--format", "json")
	back := core.DecodeRecords(out.Bytes())
	if len(back) != 1 || back[0].Notes != "a, b" {
		t.Fatalf("json export did not round trip: %+v", back)
	}

	if err := app.Run(context.Background(), []string{"export", "--format", "xml"}); err == nil {
		t.Fatalf("unsupported format should fail")
	}
}

func TestExportToFile(t *testing.T) {
	app, _, _ := testApp(t)
	run(t, app, "add", "--date", "05-01-2024", "--br", "1", "--na", "2")

	path := filepath.Join(t.TempDir(), "out.csv")
	run(t, app, "export", "--out", path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if want := "data,alzes_BR,alzes_NA,total,notas\n05-01-2024,1,2,3,"; string(data) != want {
		t.Fatalf("file mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestTheme(t *testing.T) {
	app, _, out := testApp(t)

	run(t, app, "theme")
	if strings.TrimSpace(out.String()) != "light" {
		t.Fatalf("default theme = %q, want light", strings.TrimSpace(out.String()))
	}

	run(t, app, "theme", "dark")
	out.Reset()
	run(t, app, "theme")
	if strings.TrimSpace(out.String()) != "dark" {
		t.Fatalf("theme after set = %q, want dark", strings.TrimSpace(out.String()))
	}

	if err := app.Run(context.Background(), []string{"theme", "blue"}); err == nil {
		t.Fatalf("invalid theme should fail")
	}
}

func TestUnknownCommand(t *testing.T) {
	app, _, out := testApp(t)
	if err := app.Run(context.Background(), []string{"frobnicate"}); err == nil {
		t.Fatalf("unknown command should fail")
	}
	if !strings.Contains(out.String(), "usage: alzes") {
		t.Fatalf("usage should be printed, got:\n%s", out.String())
	}
	if err := app.Run(context.Background(), nil); err == nil {
		t.Fatalf("missing command should fail")
	}
}
