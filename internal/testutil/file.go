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

package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeFileOptions are options for MakeTempFile.
type MakeFileOptions struct {
	// Name is the file name. Defaults to "list.txt", or "list.txt.gz" and
	// "list.txt.dz" for compressed files.
	Name string

	// Gzip indicates that the file should be compressed with gzip.
	Gzip bool

	// DictZip indicates that the file should be compressed with DictZip.
	DictZip bool
}

// GetName returns the file name.
func (o *MakeFileOptions) GetName() string {
	if o != nil {
		if o.Name != "" {
			return o.Name
		}
		if o.Gzip {
			return "list.txt.gz"
		}
		if o.DictZip {
			return "list.txt.dz"
		}
	}
	return "list.txt"
}

// MakeTempFile writes data to a file in a temporary directory and returns
// the file's path. The directory is removed when the test finishes.
func MakeTempFile(t *testing.T, data []byte, opts *MakeFileOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), opts.GetName())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser
	switch {
	case opts != nil && opts.Gzip:
		w = gzip.NewWriter(f)
	case opts != nil && opts.DictZip:
		w, err = dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
	default:
		w = nopWriteCloser{f}
	}

	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
