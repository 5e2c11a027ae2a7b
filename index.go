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
	"golang.org/x/text/transform"

	"github.com/ianlewis/go-wordlist/internal/folding"
	"github.com/ianlewis/go-wordlist/internal/index"
)

// IndexOptions are options for building an [Index].
type IndexOptions struct {
	// PerCharacter indexes each distinct character of the attribute value
	// instead of the value as a whole.
	PerCharacter bool

	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// case folding, whitespace folding, etc.) on keys before they are
	// indexed. A nil Folder leaves keys unchanged.
	Folder func() transform.Transformer
}

// DefaultIndexOptions is the default options for an Index.
var DefaultIndexOptions = &IndexOptions{}

type indexKey struct {
	attr         Attribute
	perCharacter bool
}

// Index maps attribute values, or single characters of attribute values, to
// the positions of the list entries holding them. Positions are listed in
// list order.
type Index struct {
	attr         Attribute
	perCharacter bool
	folder       func() transform.Transformer

	idx *index.Index[string]
}

// BuildIndex builds an index over attribute attr of the entries in l.
func BuildIndex(l *List, attr Attribute, opts *IndexOptions) *Index {
	if opts == nil {
		opts = DefaultIndexOptions
	}

	idx := &Index{
		attr:         attr,
		perCharacter: opts.PerCharacter,
		folder:       opts.Folder,
		idx:          index.NewIndex[string](),
	}
	for pos := range l.entries {
		key := idx.Fold(l.entries[pos].Value(attr))
		if !idx.perCharacter {
			idx.idx.Add(key, pos)
			continue
		}
		for _, r := range key {
			idx.idx.Add(string(r), pos)
		}
	}
	return idx
}

// Index returns an unfolded index over attribute attr of the list's entries.
// The index is built on first use and cached on the list.
func (l *List) Index(attr Attribute, perCharacter bool) *Index {
	k := indexKey{attr: attr, perCharacter: perCharacter}
	if idx, ok := l.indices[k]; ok {
		return idx
	}
	idx := BuildIndex(l, attr, &IndexOptions{PerCharacter: perCharacter})
	if l.indices == nil {
		l.indices = map[indexKey]*Index{}
	}
	l.indices[k] = idx
	return idx
}

// index returns the index used by the merge engine. Unfolded indices come
// from the list's cache.
func (l *List) index(attr Attribute, perCharacter bool, folder func() transform.Transformer) *Index {
	if folder == nil {
		return l.Index(attr, perCharacter)
	}
	return BuildIndex(l, attr, &IndexOptions{
		PerCharacter: perCharacter,
		Folder:       folder,
	})
}

// Attribute returns the indexed attribute.
func (idx *Index) Attribute() Attribute {
	return idx.attr
}

// PerCharacter returns true if the index is keyed by single characters.
func (idx *Index) PerCharacter() bool {
	return idx.perCharacter
}

// Fold applies the index's folder to s. Keys passed to the lookup methods
// are not folded automatically.
func (idx *Index) Fold(s string) string {
	if idx.folder == nil {
		return s
	}
	return folding.String(idx.folder(), s)
}

// Positions returns the entry positions for key in list order, or nil if
// the key is not in the index.
func (idx *Index) Positions(key string) []int {
	p := idx.idx.Search(key)
	if p == nil {
		return nil
	}
	return append([]int(nil), p...)
}

// First returns the first entry position for key.
func (idx *Index) First(key string) (int, bool) {
	return idx.idx.First(key)
}

// Contains returns true if key is in the index.
func (idx *Index) Contains(key string) bool {
	return idx.idx.Contains(key)
}

// Keys returns the keys in the order they first occur in the list.
func (idx *Index) Keys() []string {
	return idx.idx.Keys()
}

// Len returns the number of keys.
func (idx *Index) Len() int {
	return idx.idx.Len()
}

// Map returns the index as a map of keys to entry positions.
func (idx *Index) Map() map[string][]int {
	m := make(map[string][]int, idx.idx.Len())
	for _, k := range idx.idx.Keys() {
		m[k] = idx.Positions(k)
	}
	return m
}
