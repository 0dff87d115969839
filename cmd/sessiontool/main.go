// Package main provides a standalone tool for managing the session database:
// listing stored sessions, exporting them to JSON, and importing them back.
// It works directly on the SQLite file and never touches a running server's
// Postgres store.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sis-intake-server/internal/config"
	"github.com/sis-intake-server/internal/session"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.LoadLiteConfig()
	if err := cfg.EnsureDataDir(); err != nil {
		fatalf("failed to create data directory: %v", err)
	}

	store, err := session.NewSQLiteStore(cfg.SessionDBPath())
	if err != nil {
		fatalf("failed to open session database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	switch os.Args[1] {
	case "list":
		runList(ctx, store)
	case "export":
		runExport(ctx, cfg, store, os.Args[2:])
	case "import":
		runImport(ctx, store, os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func runList(ctx context.Context, store *session.SQLiteStore) {
	infos, err := store.List(ctx)
	if err != nil {
		fatalf("failed to list sessions: %v", err)
	}
	if len(infos) == 0 {
		fmt.Println("no sessions stored")
		return
	}
	for _, info := range infos {
		name := info.ClientName
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("%s  %s  %s\n", info.ID, info.UpdatedAt.Format(time.RFC3339), name)
	}
}

func runExport(ctx context.Context, cfg *config.LiteConfig, store *session.SQLiteStore, args []string) {
	path := filepath.Join(cfg.ExportDir(), fmt.Sprintf("sessions-%s.json", time.Now().Format("20060102-150405")))
	if len(args) > 0 {
		path = args[0]
	}

	f, err := os.Create(path)
	if err != nil {
		fatalf("failed to create export file: %v", err)
	}
	defer f.Close()

	if err := store.ExportJSON(ctx, f); err != nil {
		fatalf("export failed: %v", err)
	}
	fmt.Printf("exported to %s\n", path)
}

func runImport(ctx context.Context, store *session.SQLiteStore, args []string) {
	if len(args) < 1 {
		fatalf("import requires a file path")
	}
	f, err := os.Open(args[0])
	if err != nil {
		fatalf("failed to open import file: %v", err)
	}
	defer f.Close()

	imported, skipped, err := store.ImportJSON(ctx, f)
	if err != nil {
		fatalf("import failed: %v", err)
	}
	fmt.Printf("imported %d sessions, skipped %d existing\n", imported, skipped)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: sessiontool <command>

Commands:
  list             list stored sessions
  export [file]    export all sessions to JSON (default: data dir exports/)
  import <file>    import sessions from a JSON export, skipping existing ones

Environment:
  SIS_DATA_DIR     data directory (default: ~/.sis-intake)
`)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
