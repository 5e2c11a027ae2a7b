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

// Package textlist implements reading and writing word lists in the plain
// text format used by Pleco and Skritter.
//
// A text list is a sequence of records separated by an entry delimiter
// (default: new line). Each record is one of:
//  1. A blank record or a comment starting with "#". These are skipped.
//  2. A section heading starting with "//". The levels of the heading are
//     separated by "/", e.g. "//Book 1/Chapter 1".
//  3. An entry. The attributes of the entry are separated by tabs and mapped
//     onto an attribute order, by default "simplified[traditional]",
//     "pronunciation" and "definition".
//
// A "simplified[traditional]" field holds both forms as "国[國]". A field
// without brackets holds only the simplified form and "[國]" holds only the
// traditional form.
package textlist
