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


// Package glossary assembles bilingual glossary entries from decoded word
// lists and provides lookups over them.
package glossary

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-eckdic/internal/folding"
	"github.com/ianlewis/go-eckdic/internal/index"
	"github.com/ianlewis/go-eckdic/wordlist"
)

// Entry is a glossary entry.
type Entry struct {
	// Key is the headword.
	Key string

	// Value is the translation followed by the annotation.
	Value string
}

// String returns the entry as the key and value on separate lines.
func (e *Entry) String() string {
	return e.Key + "\n" + e.Value
}

// DecodeFunc converts legacy encoded text to a string.
type DecodeFunc func([]byte) (string, error)

// Annotate appends the field annotation to a translation.
func Annotate(translation, field string) string {
	return translation + "\n\n(" + field + ")"
}

// Assemble joins the Korean and English word lists by index. Each index
// present in both lists produces a Korean to English entry and an English to
// Korean entry annotated with the field at the same index. Indexes beyond the
// end of fields get an empty annotation.
//
// The entries are sorted by key. Korean to English entries come before
// English to Korean entries with the same key.
func Assemble(korean, english *wordlist.Table, fields []string, decode DecodeFunc) ([]*Entry, error) {
	var ke, ek []*Entry
	for i, kw := range korean.All() {
		ew, ok := english.Get(i)
		if !ok {
			continue
		}

		k, err := decode(kw)
		if err != nil {
			return nil, fmt.Errorf("decoding Korean word %d: %w", i, err)
		}
		e, err := decode(ew)
		if err != nil {
			return nil, fmt.Errorf("decoding English word %d: %w", i, err)
		}

		var field string
		if uint64(i) < uint64(len(fields)) {
			field = fields[i]
		}

		ke = append(ke, &Entry{Key: k, Value: Annotate(e, field)})
		ek = append(ek, &Entry{Key: e, Value: Annotate(k, field)})
	}

	entries := append(ke, ek...)
	slices.SortStableFunc(entries, func(a, b *Entry) int {
		return strings.Compare(a.Key, b.Key)
	})
	return entries, nil
}

// Options are options for a Glossary.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// case folding, whitespace folding, etc.) on keys and queries.
	Folder func() transform.Transformer
}

// DefaultOptions is the default options for a Glossary.
var DefaultOptions = &Options{
	Folder: folding.Key,
}

type foldedEntry struct {
	folded string
	entry  *Entry
}

// Glossary is an in-memory glossary that can be searched by key.
type Glossary struct {
	entries []*Entry
	index   *index.Index[*foldedEntry]
	folder  func() transform.Transformer
}

// New returns a new Glossary over entries.
func New(entries []*Entry, options *Options) (*Glossary, error) {
	if options == nil {
		options = DefaultOptions
	}

	g := &Glossary{
		entries: entries,
		folder:  DefaultOptions.Folder,
	}
	if options.Folder != nil {
		g.folder = options.Folder
	}

	folded := make([]*foldedEntry, 0, len(entries))
	for _, e := range entries {
		f, _, err := transform.String(g.folder(), e.Key)
		if err != nil {
			return nil, fmt.Errorf("folding key %q: %w", e.Key, err)
		}
		folded = append(folded, &foldedEntry{folded: f, entry: e})
	}
	g.index = index.New(folded, func(f *foldedEntry) string { return f.folded }, strings.Compare)

	return g, nil
}

// Entries returns all entries in key order.
func (g *Glossary) Entries() []*Entry {
	return g.entries
}

// Len returns the number of entries.
func (g *Glossary) Len() int {
	return len(g.entries)
}

// Search returns the entries whose folded key matches the folded query.
func (g *Glossary) Search(query string) ([]*Entry, error) {
	q, _, err := transform.String(g.folder(), query)
	if err != nil {
		return nil, fmt.Errorf("folding query %q: %w", query, err)
	}

	var result []*Entry
	for _, f := range g.index.Search(q) {
		result = append(result, f.entry)
	}
	return result, nil
}
