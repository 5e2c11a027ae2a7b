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

// Package wordlist implements ordered, sectioned lists of Chinese vocabulary
// entries and a merge engine for comparing them.
//
// A list contains:
//  1. A name. Results of comparisons derive their names from it, e.g.
//     "hsk_minus_freq".
//  2. A section table. Each section is a hierarchical heading such as
//     ["Book 1", "Chapter 1"].
//  3. The entries. Each entry holds simplified and traditional forms, a
//     pronunciation, a definition, the index of its section (or -1) and its
//     position in the list.
//
// [List.Partition] splits two lists into the entries only in the first list,
// the entries in both lists and the entries only in the second list. Entries
// can be compared by their whole attribute value or character by character.
// Every result is renumbered and its unused sections are pruned.
//
// Reading and writing lists in the plain text format used by Pleco and
// Skritter is implemented by the textlist package.
package wordlist
