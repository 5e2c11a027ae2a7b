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
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-wordlist"
)

// ErrUnsupportedFile indicates a compressed file format that cannot be read
// or written.
var ErrUnsupportedFile = errors.New("unsupported file format")

// unsupportedExts are compression formats that are recognized but not
// supported.
var unsupportedExts = map[string]bool{
	".7z":  true,
	".bz2": true,
	".xz":  true,
	".zip": true,
	".zst": true,
}

func checkSupported(path string) error {
	if ext := strings.ToLower(filepath.Ext(path)); unsupportedExts[ext] {
		return fmt.Errorf("%w: %q: %s", ErrUnsupportedFile, path, ext)
	}
	return nil
}

// ListName returns the list name for the file at path: the file name without
// its extensions, e.g. "hsk" for "lists/hsk.txt.gz".
func ListName(path string) string {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".dz":
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// OpenFile reads the text list at path. Files ending in .gz are decompressed
// with gzip and files ending in .dz with dictzip. The list is named after the
// file (see ListName).
func OpenFile(path string, opts *Options) (*wordlist.List, error) {
	if err := checkSupported(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		defer gz.Close()
		r = gz
	case ".dz":
		z, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		r = z
	}

	l, err := Read(ListName(path), r, opts)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return l, nil
}

// SaveFile writes l to a text list file at path. The file is compressed with
// gzip if path ends in .gz and with dictzip if it ends in .dz.
func SaveFile(path string, l *wordlist.List, opts *Options) (err error) {
	if err := checkSupported(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", path, cerr)
		}
	}()

	var w io.WriteCloser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		w = gzip.NewWriter(f)
	case ".dz":
		w, err = dictzip.NewWriter(f)
		if err != nil {
			return fmt.Errorf("creating %q: %w", path, err)
		}
	}

	if w == nil {
		return Write(f, l, opts)
	}
	if err := Write(w, l, opts); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}
