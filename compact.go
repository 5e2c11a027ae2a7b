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

// Compact renumbers entries and prunes unused sections. It returns a section
// table holding only the sections referenced by at least one entry, in their
// original order, and copies of the entries with dense 0-based positions and
// section indices rewritten to the new table. Unsectioned entries stay
// unsectioned.
//
// Compact panics if an entry references a section that is not in sections.
// Lists created by [NewList] never do.
func Compact(sections []Section, entries []Entry) ([]Section, []Entry) {
	return compact(sections, cloneEntries(entries))
}

// Compact returns a renumbered copy of the list without unused sections.
func (l *List) Compact() *List {
	sections, entries := Compact(l.sections, l.entries)
	return newList(l.name, sections, entries)
}

// compact renumbers entries in place and returns the new section table.
func compact(sections []Section, entries []Entry) ([]Section, []Entry) {
	used := make([]bool, len(sections))
	for i := range entries {
		entries[i].Position = i
		if s := entries[i].Section; s >= 0 {
			used[s] = true
		}
	}

	remap := make([]int, len(sections))
	compacted := make([]Section, 0, len(sections))
	for i, s := range sections {
		if !used[i] {
			continue
		}
		remap[i] = len(compacted)
		compacted = append(compacted, s.Clone())
	}

	for i := range entries {
		if s := entries[i].Section; s >= 0 {
			entries[i].Section = remap[s]
		}
	}

	if entries == nil {
		entries = []Entry{}
	}
	return compacted, entries
}
