package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database instead of a file.
const MemoryPath = ":memory:"

// connPragmas run once on every database; filePragmas only on file-backed ones.
var (
	connPragmas = []string{"foreign_keys = ON", "busy_timeout = 5000"}
	filePragmas = []string{"journal_mode = WAL"}
)

// OpenDB opens the preference store at path, creating parent directories as
// needed, and brings the schema up to date.
func OpenDB(path string) (*sql.DB, error) {
	inMemory := path == MemoryPath
	if !inMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	pragmas := connPragmas
	if inMemory {
		// one connection, otherwise each pooled connection sees its own empty database
		conn.SetMaxOpenConns(1)
	} else {
		pragmas = append(append([]string{}, filePragmas...), connPragmas...)
	}
	for _, p := range pragmas {
		if _, err := conn.Exec("PRAGMA " + p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("pragma %s: %w", p, err)
		}
	}

	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate preferences schema: %w", err)
	}
	return conn, nil
}
