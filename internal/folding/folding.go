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

// Package folding provides text folders used to normalize index keys before
// comparison. Each function returns a new [transform.Transformer] because
// transformers are stateful and may not be shared.
package folding

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Nop returns a folder that leaves text unchanged.
func Nop() transform.Transformer {
	return transform.Nop
}

// Whitespace returns a folder that removes all white space. Chinese words
// are written without spaces so "你 好" and "你好" fold to the same key.
func Whitespace() transform.Transformer {
	return runes.Remove(runes.In(unicode.White_Space))
}

// Width returns a folder that maps full-width and half-width variants to
// their canonical width, e.g. "ｈａｏ３" folds to "hao3".
func Width() transform.Transformer {
	return width.Fold
}

// Case returns a folder that performs Unicode case folding. It is useful for
// comparing pronunciations and definitions.
func Case() transform.Transformer {
	return cases.Fold()
}

// Default returns the folder chain used when folding is requested without
// further configuration: NFC normalization, width folding, case folding and
// white space removal.
func Default() transform.Transformer {
	return transform.Chain(norm.NFC, Width(), Case(), Whitespace())
}

// String folds s with the folder t. If t fails, s is returned unchanged.
func String(t transform.Transformer, s string) string {
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
