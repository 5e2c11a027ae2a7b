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

var textAttributes = []Attribute{
	AttrSimplified,
	AttrTraditional,
	AttrPronunciation,
	AttrDefinition,
}

// Fill returns a copy of the list in which empty text attributes are filled
// in from source. An entry is looked up in source by the value of attribute
// attr and the first matching source entry is used. Attributes that already
// have a value are left unchanged.
//
// Fill is typically used after [List.Partition] on a list without
// pronunciations or definitions, e.g. a character frequency list.
func (l *List) Fill(source *List, attr Attribute) *List {
	idx := source.Index(attr, false)

	entries := cloneEntries(l.entries)
	for i := range entries {
		e := &entries[i]
		pos, ok := idx.First(e.Value(attr))
		if !ok {
			continue
		}
		src := &source.entries[pos]
		for _, a := range textAttributes {
			if e.Value(a) == "" {
				e.SetText(a, src.Value(a))
			}
		}
	}

	return newList(l.name, cloneSections(l.sections), entries)
}
