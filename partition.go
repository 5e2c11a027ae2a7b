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
	"cmp"
	"slices"

	"golang.org/x/text/transform"
)

// PartitionOptions are options for comparing two lists.
type PartitionOptions struct {
	// Attribute is the attribute entries are compared by.
	Attribute Attribute

	// PerCharacter compares entries character by character instead of by
	// their whole attribute value.
	PerCharacter bool

	// Folder returns a [transform.Transformer] applied to attribute values
	// before they are compared. A nil Folder compares values unchanged.
	Folder func() transform.Transformer
}

// DefaultPartitionOptions compares whole simplified forms.
var DefaultPartitionOptions = &PartitionOptions{
	Attribute: AttrSimplified,
}

// Partition compares l with other by attribute attr and returns three new
// lists: the entries only in l, the entries in both lists and the entries
// only in other.
//
// When perCharacter is false two entries match if their attribute values are
// equal. Every entry of l goes either to onlySelf or to shared, and every
// entry of other matched by no entry of l goes to onlyOther.
//
// When perCharacter is true an entry of l is shared if each of its characters
// occurs somewhere in other. An entry of other whose characters all occur in
// l is shared too, unless its whole value is already a value in l. It is
// placed after the first entry of l that contains any of its characters and
// moves to that entry's section. Entries of other containing a character
// missing from l go to onlyOther. Entries with an empty value never match in
// this mode.
//
// Entries keep their relative order. The results are named
// "<l>_minus_<other>", "<l>_intersecting_<other>" and "<other>_minus_<l>".
// onlySelf and shared use the sections of l and onlyOther the sections of
// other. Each result is compacted with [Compact].
func (l *List) Partition(other *List, attr Attribute, perCharacter bool) (onlySelf, shared, onlyOther *List) {
	return l.PartitionWithOptions(other, &PartitionOptions{
		Attribute:    attr,
		PerCharacter: perCharacter,
	})
}

// PartitionWithOptions is like [List.Partition] but takes options.
func (l *List) PartitionWithOptions(other *List, opts *PartitionOptions) (onlySelf, shared, onlyOther *List) {
	if opts == nil {
		opts = DefaultPartitionOptions
	}

	var selfEntries, sharedEntries, otherEntries []Entry
	if opts.PerCharacter {
		selfEntries, sharedEntries, otherEntries = l.partitionChars(other, opts)
	} else {
		selfEntries, sharedEntries, otherEntries = l.partitionWords(other, opts)
	}

	sections, entries := compact(l.sections, selfEntries)
	onlySelf = newList(l.name+"_minus_"+other.name, sections, entries)

	sections, entries = compact(l.sections, sharedEntries)
	shared = newList(l.name+"_intersecting_"+other.name, sections, entries)

	sections, entries = compact(other.sections, otherEntries)
	onlyOther = newList(other.name+"_minus_"+l.name, sections, entries)

	return onlySelf, shared, onlyOther
}

// partitionWords compares whole attribute values.
func (l *List) partitionWords(other *List, opts *PartitionOptions) (onlySelf, shared, onlyOther []Entry) {
	otherWords := other.index(opts.Attribute, false, opts.Folder)

	// claimed[i] is true if other.entries[i] matched an entry of l.
	claimed := make([]bool, len(other.entries))
	for i := range l.entries {
		e := &l.entries[i]
		positions := otherWords.idx.Search(otherWords.Fold(e.Value(opts.Attribute)))
		if positions == nil {
			onlySelf = append(onlySelf, e.Clone())
			continue
		}
		shared = append(shared, e.Clone())
		for _, p := range positions {
			claimed[p] = true
		}
	}

	for i := range other.entries {
		if !claimed[i] {
			onlyOther = append(onlyOther, other.entries[i].Clone())
		}
	}

	return onlySelf, shared, onlyOther
}

// rankedEntry is a shared entry with its sort keys. Entries sort by the
// position of their anchor in l, entries of l before entries of other, and
// then by their position in other.
type rankedEntry struct {
	entry  Entry
	anchor int
	rank   int
	order  int
}

func compareRanked(a, b rankedEntry) int {
	return cmp.Or(
		cmp.Compare(a.anchor, b.anchor),
		cmp.Compare(a.rank, b.rank),
		cmp.Compare(a.order, b.order),
	)
}

// partitionChars compares attribute values character by character.
func (l *List) partitionChars(other *List, opts *PartitionOptions) (onlySelf, shared, onlyOther []Entry) {
	selfWords := l.index(opts.Attribute, false, opts.Folder)
	selfChars := l.index(opts.Attribute, true, opts.Folder)
	otherChars := other.index(opts.Attribute, true, opts.Folder)

	var ranked []rankedEntry
	for i := range l.entries {
		e := &l.entries[i]
		if !containsAll(otherChars, selfWords.Fold(e.Value(opts.Attribute))) {
			onlySelf = append(onlySelf, e.Clone())
			continue
		}
		ranked = append(ranked, rankedEntry{
			entry:  e.Clone(),
			anchor: i,
		})
	}

	for i := range other.entries {
		e := &other.entries[i]
		key := selfWords.Fold(e.Value(opts.Attribute))
		anchor, ok := firstAnchor(selfChars, key)
		if !ok {
			onlyOther = append(onlyOther, e.Clone())
			continue
		}
		if selfWords.Contains(key) {
			// The matching entry of l is already shared.
			continue
		}
		c := e.Clone()
		c.Section = l.entries[anchor].Section
		ranked = append(ranked, rankedEntry{
			entry:  c,
			anchor: anchor,
			rank:   1,
			order:  i,
		})
	}

	slices.SortStableFunc(ranked, compareRanked)
	for _, r := range ranked {
		shared = append(shared, r.entry)
	}

	return onlySelf, shared, onlyOther
}

// containsAll returns true if every character of key is in the per-character
// index chars. An empty key contains nothing.
func containsAll(chars *Index, key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if !chars.Contains(string(r)) {
			return false
		}
	}
	return true
}

// firstAnchor returns the lowest entry position at which any character of
// key first occurs in the per-character index chars. It returns false if key
// is empty or any of its characters is missing.
func firstAnchor(chars *Index, key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	anchor := -1
	for _, r := range key {
		p, ok := chars.First(string(r))
		if !ok {
			return 0, false
		}
		if anchor < 0 || p < anchor {
			anchor = p
		}
	}
	return anchor, true
}
