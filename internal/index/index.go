// Copyright 2025 Ian Lewis
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

package index

// Index maps keys to the positions of the values that hold them. Positions
// for a key are kept in the order they were added, which for a sequential
// build is ascending source order.
type Index[K comparable] struct {
	// keys holds every key in the order it was first seen.
	keys []K

	positions map[K][]int
}

// NewIndex creates an empty index.
func NewIndex[K comparable]() *Index[K] {
	return &Index[K]{
		positions: map[K][]int{},
	}
}

// Add records that the value at pos holds key. Adding the same key for the
// position that was added last is a no-op so that a value holding a key
// several times is only listed once.
func (idx *Index[K]) Add(key K, pos int) {
	p, ok := idx.positions[key]
	if !ok {
		idx.keys = append(idx.keys, key)
	}
	if len(p) > 0 && p[len(p)-1] == pos {
		return
	}
	idx.positions[key] = append(p, pos)
}

// Search returns the positions recorded for key or nil if the key is not
// present. The returned slice must not be modified.
func (idx *Index[K]) Search(key K) []int {
	return idx.positions[key]
}

// First returns the first position recorded for key.
func (idx *Index[K]) First(key K) (int, bool) {
	p := idx.positions[key]
	if len(p) == 0 {
		return 0, false
	}
	return p[0], true
}

// Contains returns true if key is present in the index.
func (idx *Index[K]) Contains(key K) bool {
	_, ok := idx.positions[key]
	return ok
}

// Keys returns the index keys in the order they were first added.
func (idx *Index[K]) Keys() []K {
	keys := make([]K, len(idx.keys))
	copy(keys, idx.keys)
	return keys
}

// Len returns the number of keys.
func (idx *Index[K]) Len() int {
	return len(idx.keys)
}
