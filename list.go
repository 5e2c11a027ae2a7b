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

package wordlist

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrSectionOutOfRange indicates that an entry references a section that
	// is not in the list's section table.
	ErrSectionOutOfRange = errors.New("section out of range")

	// ErrUnknownAttribute indicates an unknown attribute name.
	ErrUnknownAttribute = errors.New("unknown attribute")
)

// Section is a hierarchical section heading, e.g. ["Book 1", "Chapter 1"].
type Section []string

// Clone returns a copy of the section.
func (s Section) Clone() Section {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}

// List is a named, ordered list of entries with a section table. Every entry
// references either no section (-1) or a section in the list's table.
//
// A List is immutable. Operations return new lists and never share entries
// with their inputs. Indices built by [List.Index] are cached on the list,
// so a List must not be used from multiple goroutines at the same time.
type List struct {
	name     string
	sections []Section
	entries  []Entry

	indices map[indexKey]*Index
}

// NewList returns a new list. The sections and entries are copied. An error
// wrapping [ErrSectionOutOfRange] is returned if an entry's section is not
// -1 or a valid index into sections.
func NewList(name string, sections []Section, entries []Entry) (*List, error) {
	for i := range entries {
		if s := entries[i].Section; s < -1 || s >= len(sections) {
			return nil, fmt.Errorf("%w: entry %d (%s) references section %d of %d",
				ErrSectionOutOfRange, i, entries[i].Word(), s, len(sections))
		}
	}
	return newList(name, cloneSections(sections), cloneEntries(entries)), nil
}

// newList returns a list that takes ownership of sections and entries. The
// caller guarantees the section invariant.
func newList(name string, sections []Section, entries []Entry) *List {
	return &List{
		name:     name,
		sections: sections,
		entries:  entries,
	}
}

// Name returns the list's name.
func (l *List) Name() string {
	return l.name
}

// Rename returns a copy of the list with the given name.
func (l *List) Rename(name string) *List {
	return newList(name, cloneSections(l.sections), cloneEntries(l.entries))
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Entry returns a copy of the i-th entry.
func (l *List) Entry(i int) Entry {
	return l.entries[i].Clone()
}

// Entries returns a copy of the list's entries.
func (l *List) Entries() []Entry {
	return cloneEntries(l.entries)
}

// Sections returns a copy of the list's section table.
func (l *List) Sections() []Section {
	return cloneSections(l.sections)
}

// SectionOf returns the section of the i-th entry. The second return value
// is false if the entry is unsectioned.
func (l *List) SectionOf(i int) (Section, bool) {
	s := l.entries[i].Section
	if s < 0 {
		return nil, false
	}
	return l.sections[s].Clone(), true
}

func cloneEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	c := make([]Entry, len(entries))
	for i := range entries {
		c[i] = entries[i].Clone()
	}
	return c
}

func cloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	c := make([]Section, len(sections))
	for i, s := range sections {
		c[i] = s.Clone()
	}
	return c
}
