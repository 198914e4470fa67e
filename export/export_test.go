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
	"bytes"
	"compress/gzip"
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-eckdic/glossary"
)

var testEntries = []*glossary.Entry{
	{Key: "han", Value: "한\n\n(물리)"},
	{Key: "한", Value: "han\n\n(물리)"},
}

func readSQLite(t *testing.T, path string) (string, []*glossary.Entry) {
	t.Helper()

	db, err := sql.Open(driverName, path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()

	var name string
	if err := db.QueryRow("SELECT dicname FROM name").Scan(&name); err != nil {
		t.Fatalf("QueryRow: %v", err)
	}

	rows, err := db.Query("SELECT word, definition FROM dictionary ORDER BY rowid")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	defer rows.Close()

	var entries []*glossary.Entry
	for rows.Next() {
		var e glossary.Entry
		if err := rows.Scan(&e.Key, &e.Value); err != nil {
			t.Fatalf("Scan: %v", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows.Err: %v", err)
	}
	return name, entries
}

// TestSQLite_Write tests writing a glossary database.
func TestSQLite_Write(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "biyak.db")
	s := &SQLite{Path: path}

	if err := s.Write(context.Background(), "Biyak Technical Dictionary", testEntries); err != nil {
		t.Fatalf("Write: %v", err)
	}

	name, entries := readSQLite(t, path)
	if want, got := "Biyak Technical Dictionary", name; want != got {
		t.Errorf("name; want: %q, got: %q", want, got)
	}
	if diff := cmp.Diff(testEntries, entries); diff != "" {
		t.Errorf("entries (-want, +got):\n%s", diff)
	}
}

// TestSQLite_Write_replace tests that existing databases are replaced.
func TestSQLite_Write_replace(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "biyak.db")
	s := &SQLite{Path: path}

	if err := s.Write(context.Background(), "old", testEntries); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.Write(context.Background(), "new", testEntries[:1]); err != nil {
		t.Fatalf("Write: %v", err)
	}

	name, entries := readSQLite(t, path)
	if want, got := "new", name; want != got {
		t.Errorf("name; want: %q, got: %q", want, got)
	}
	if diff := cmp.Diff(testEntries[:1], entries); diff != "" {
		t.Errorf("entries (-want, +got):\n%s", diff)
	}
}

const expectedTSV = "#Biyak\n" +
	"han\t한\\n\\n(물리)\n" +
	"한\than\\n\\n(물리)\n"

// TestTSV_Write tests writing plain and compressed TSV files.
func TestTSV_Write(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dictzip bool
	}{
		{
			name: "plain",
		},
		{
			name:    "dictzip",
			dictzip: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "biyak.tsv")
			s := &TSV{Path: path, DictZip: test.dictzip}
			if err := s.Write(context.Background(), "Biyak", testEntries); err != nil {
				t.Fatalf("Write: %v", err)
			}

			b, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile: %v", err)
			}
			if test.dictzip {
				// dictzip files are valid gzip files.
				z, err := gzip.NewReader(bytes.NewReader(b))
				if err != nil {
					t.Fatalf("gzip.NewReader: %v", err)
				}
				b, err = io.ReadAll(z)
				if err != nil {
					t.Fatalf("ReadAll: %v", err)
				}
			}

			if diff := cmp.Diff(expectedTSV, string(b)); diff != "" {
				t.Fatalf("Write (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestWriteTSV_escape tests escaping of special characters.
func TestWriteTSV_escape(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	entries := []*glossary.Entry{
		{Key: "a\tb", Value: `c\d`},
	}
	if err := WriteTSV(context.Background(), &buf, "n", entries); err != nil {
		t.Fatalf("WriteTSV: %v", err)
	}

	expected := "#n\na\\tb\tc\\\\d\n"
	if diff := cmp.Diff(expected, buf.String()); diff != "" {
		t.Fatalf("WriteTSV (-want, +got):\n%s", diff)
	}
}

// TestWriteTSV_canceled tests that a canceled context stops writing.
func TestWriteTSV_canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := WriteTSV(ctx, io.Discard, "n", testEntries); err == nil {
		t.Fatal("WriteTSV: expected failure")
	}
}

// Compile-time interface assertions.
var (
	_ Sink = (*SQLite)(nil)
	_ Sink = (*TSV)(nil)
)
