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

package textlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-wordlist"
)

// Write writes l to w as a text list. If opts is nil, DefaultOptions is used.
//
// A section heading is written before every entry whose section differs from
// the section of the previous entry. An unsectioned entry following a
// sectioned one is preceded by an empty line. Every line, including the
// last, is terminated by the entry delimiter.
//
// The text format cannot end a section. When an unsectioned entry follows a
// sectioned one, as can happen in lists returned by [wordlist.Compact] or
// [wordlist.List.Partition], reading the output back puts the entry in the
// preceding section.
func Write(w io.Writer, l *wordlist.List, opts *Options) error {
	opts = opts.WithDefaults()

	fields, err := opts.fields()
	if err != nil {
		return err
	}
	enc, err := opts.encoding()
	if err != nil {
		return err
	}

	var closer io.Closer
	if enc != unicode.UTF8 {
		tw := transform.NewWriter(w, enc.NewEncoder())
		w, closer = tw, tw
	}

	bw := bufio.NewWriter(w)
	writeLine := func(line string) {
		// Errors are sticky and reported by Flush.
		_, _ = bw.WriteString(line)
		_, _ = bw.WriteString(opts.EntryDelimiter)
	}

	sections := l.Sections()
	current := -1
	values := make([]string, len(fields))
	for i := range l.Len() {
		e := l.Entry(i)
		if e.Section != current {
			if e.Section >= 0 {
				writeLine(opts.SectionStart + strings.Join(sections[e.Section], opts.SectionDelimiter))
			} else {
				writeLine("")
			}
			current = e.Section
		}

		for j, f := range fields {
			switch f.kind {
			case fieldAttribute:
				values[j] = e.Value(f.attr)
			case fieldCombined:
				values[j] = joinCombined(e.Simplified, e.Traditional)
			case fieldExtra:
				values[j] = e.Extra[f.name]
			}
		}
		writeLine(strings.Join(values, opts.AttributeDelimiter))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing text list: %w", err)
	}
	if closer != nil {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("writing text list: %w", err)
		}
	}
	return nil
}
