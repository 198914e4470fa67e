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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-eckdic/glossary"
)

var tsvEscaper = strings.NewReplacer(
	`\`, `\\`,
	"\t", `\t`,
	"\n", `\n`,
)

// TSV writes glossaries as tab separated text. The first line holds the
// dictionary name after a "#" and each following line holds an entry's key and value.
// Backslashes, tabs and newlines are escaped.
type TSV struct {
	// Path is the output file path.
	Path string

	// DictZip compresses the output with the dictzip format.
	DictZip bool
}

// Write implements [Sink.Write].
func (t *TSV) Write(ctx context.Context, name string, entries []*glossary.Entry) (err error) {
	f, err := os.Create(t.Path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", t.Path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", t.Path, closeErr)
		}
	}()

	var w io.Writer = f
	if t.DictZip {
		z, zErr := dictzip.NewWriter(f)
		if zErr != nil {
			return fmt.Errorf("creating dictzip writer: %w", zErr)
		}
		defer func() {
			if closeErr := z.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("closing dictzip writer: %w", closeErr)
			}
		}()
		w = z
	}

	return WriteTSV(ctx, w, name, entries)
}

// WriteTSV writes entries to w in the TSV format.
func WriteTSV(ctx context.Context, w io.Writer, name string, entries []*glossary.Entry) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "#%s\n", tsvEscaper.Replace(name)); err != nil {
		return fmt.Errorf("writing name: %w", err)
	}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("writing entries: %w", err)
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", tsvEscaper.Replace(e.Key), tsvEscaper.Replace(e.Value)); err != nil {
			return fmt.Errorf("writing %q: %w", e.Key, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing: %w", err)
	}
	return nil
}
