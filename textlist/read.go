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
	"fmt"
	"io"

	"github.com/ianlewis/go-wordlist"
)

// Read reads a text list from r and returns it as a list with the given
// name. If opts is nil, DefaultOptions is used.
//
// Entries belong to the section of the most recent section heading. Entries
// before the first heading are unsectioned. A heading directly followed by
// another heading is replaced by it, so empty sections are skipped.
func Read(name string, r io.Reader, opts *Options) (*wordlist.List, error) {
	s, err := NewScanner(r, opts)
	if err != nil {
		return nil, err
	}

	var sections []wordlist.Section
	var entries []wordlist.Entry
	prevSection := false
	for s.Scan() {
		if s.IsSection() {
			if prevSection {
				sections[len(sections)-1] = s.Section()
			} else {
				sections = append(sections, s.Section())
			}
			prevSection = true
			continue
		}
		prevSection = false

		e := s.Entry()
		e.Section = len(sections) - 1
		e.Position = len(entries)
		entries = append(entries, e)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	l, err := wordlist.NewList(name, sections, entries)
	if err != nil {
		return nil, fmt.Errorf("reading text list: %w", err)
	}
	return l, nil
}
