// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package export

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	// Pure Go SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/ianlewis/go-eckdic/glossary"
)

const driverName = "sqlite"

var schema = []string{
	"CREATE TABLE name (dicname text)",
	"CREATE TABLE dictionary (word text, definition text)",
}

// SQLite writes glossaries to a SQLite database file. The database has a
// single row "name" table holding the dictionary name and a "dictionary"
// table with a row for each entry.
type SQLite struct {
	// Path is the database file path.
	Path string
}

// Write implements [Sink.Write]. An existing database at Path is removed
// first.
func (s *SQLite) Write(ctx context.Context, name string, entries []*glossary.Entry) (err error) {
	if rmErr := os.Remove(s.Path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
		return fmt.Errorf("removing %q: %w", s.Path, rmErr)
	}

	db, err := sql.Open(driverName, s.Path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", s.Path, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", s.Path, closeErr)
		}
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op.
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO name VALUES (?)", name); err != nil {
		return fmt.Errorf("inserting name: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO dictionary VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Key, e.Value); err != nil {
			return fmt.Errorf("inserting %q: %w", e.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
