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


package eckdic

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ianlewis/go-eckdic/export"
	"github.com/ianlewis/go-eckdic/glossary"
	"github.com/ianlewis/go-eckdic/legacy"
	"github.com/ianlewis/go-eckdic/record"
	"github.com/ianlewis/go-eckdic/subst"
	"github.com/ianlewis/go-eckdic/wordlist"
)

// DefaultName is the name stored with exported glossaries.
const DefaultName = "Biyak Technical Dictionary"

// Options are options for building a glossary.
type Options struct {
	// Logger receives progress and diagnostic messages. Substitution misses
	// are logged at debug level. A nil Logger discards messages.
	Logger *slog.Logger

	// Decode converts legacy encoded text. Defaults to the Korean
	// double-byte decoder from the legacy package.
	Decode glossary.DecodeFunc

	// Repair are the options for repairing field text.
	Repair *subst.Options
}

// DefaultOptions is the default options for building a glossary.
var DefaultOptions = &Options{}

// Dictionary is an eckdata.dic dictionary file.
type Dictionary struct {
	r    io.ReaderAt
	c    io.Closer
	name string
}

// Open opens the dictionary file at path. The caller must call Close when
// done with the Dictionary.
func Open(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	return &Dictionary{
		r:    f,
		c:    f,
		name: path,
	}, nil
}

// New returns a Dictionary reading from r. Close is a no-op for Dictionaries
// created with New.
func New(r io.ReaderAt) *Dictionary {
	return &Dictionary{
		r:    r,
		name: "dictionary",
	}
}

// Close closes the dictionary file.
func (d *Dictionary) Close() error {
	if d.c == nil {
		return nil
	}
	if err := d.c.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", d.name, err)
	}
	return nil
}

// WordTable reads the word list for lang.
func (d *Dictionary) WordTable(lang wordlist.Language) (*wordlist.Table, error) {
	t, err := wordlist.New(d.r, lang)
	if err != nil {
		return nil, fmt.Errorf("reading %q %v word list: %w", d.name, lang, err)
	}
	return t, nil
}

// Records reads the encoded record table.
func (d *Dictionary) Records() ([]*record.Record, error) {
	records, err := record.ReadAll(d.r)
	if err != nil {
		return nil, fmt.Errorf("reading %q records: %w", d.name, err)
	}
	return records, nil
}

// Stats are counts gathered while building a glossary.
type Stats struct {
	// EnglishWords is the number of English words.
	EnglishWords int

	// KoreanWords is the number of Korean words.
	KoreanWords int

	// Records is the number of encoded records.
	Records int

	// Units is the size of the learned substitution table.
	Units int

	// Misses is the number of field units missing from the substitution
	// table.
	Misses int

	// Entries is the number of glossary entries.
	Entries int
}

// Result is a built glossary.
type Result struct {
	Entries []*glossary.Entry
	Stats   Stats
}

// Build reads the dictionary and assembles the glossary entries.
func (d *Dictionary) Build(options *Options) (*Result, error) {
	if options == nil {
		options = DefaultOptions
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	decode := options.Decode
	if decode == nil {
		decode = legacy.New(nil).Decode
	}

	english, err := d.WordTable(wordlist.English)
	if err != nil {
		return nil, err
	}
	korean, err := d.WordTable(wordlist.Korean)
	if err != nil {
		return nil, err
	}
	records, err := d.Records()
	if err != nil {
		return nil, err
	}
	logger.Info("read dictionary",
		slog.String("path", d.name),
		slog.Int("english", english.Len()),
		slog.Int("korean", korean.Len()),
		slog.Int("records", len(records)),
	)

	m := subst.Learn(korean, record.Korean(records))
	logger.Info("learned substitution table", slog.Int("units", m.Len()))

	repairer, err := subst.NewRepairer(m, options.Repair)
	if err != nil {
		return nil, err
	}

	var misses int
	fields := make([]string, len(records))
	for i, field := range record.Fields(records) {
		res := repairer.Repair(field)
		for _, miss := range res.Misses {
			logger.Debug("substitution miss",
				slog.Int("record", i),
				slog.Int("offset", miss.Offset),
				slog.String("unit", fmt.Sprintf("% x", miss.Unit)),
			)
		}
		misses += len(res.Misses)

		fields[i], err = decode(res.Text)
		if err != nil {
			return nil, fmt.Errorf("decoding field %d: %w", i, err)
		}
	}
	if misses > 0 {
		logger.Warn("field units missing from substitution table", slog.Int("misses", misses))
	}

	entries, err := glossary.Assemble(korean, english, fields, decode)
	if err != nil {
		return nil, err
	}
	logger.Info("assembled glossary", slog.Int("entries", len(entries)))

	return &Result{
		Entries: entries,
		Stats: Stats{
			EnglishWords: english.Len(),
			KoreanWords:  korean.Len(),
			Records:      len(records),
			Units:        m.Len(),
			Misses:       misses,
			Entries:      len(entries),
		},
	}, nil
}

// BuildFile opens the dictionary at path, builds the glossary and closes the
// file, whether or not the build succeeded.
func BuildFile(path string, options *Options) (res *Result, err error) {
	d, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := d.Close(); closeErr != nil && err == nil {
			res, err = nil, closeErr
		}
	}()

	return d.Build(options)
}

// Export builds the glossary for the dictionary at path and writes it to
// sink under name. The dictionary file is closed before writing.
func Export(ctx context.Context, path, name string, sink export.Sink, options *Options) (*Stats, error) {
	res, err := BuildFile(path, options)
	if err != nil {
		return nil, err
	}
	if err := sink.Write(ctx, name, res.Entries); err != nil {
		return nil, fmt.Errorf("exporting %q: %w", path, err)
	}
	return &res.Stats, nil
}
