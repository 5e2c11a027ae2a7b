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

package main

import (
	"errors"
	"fmt"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordlist/textlist"
)

var listCommand = &cli.Command{
	Name:      "list",
	Usage:     "print a summary of word lists",
	ArgsUsage: "FILE...",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: expected at least one file", ErrFlagParse)
		}

		opts, err := formatOptions(c)
		if err != nil {
			return err
		}

		tbl := table.New("Name", "Entries", "Sections").WithWriter(c.App.Writer)

		var errs []error
		for _, path := range c.Args().Slice() {
			l, err := textlist.OpenFile(path, opts)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			tbl.AddRow(l.Name(), l.Len(), len(l.Sections()))
		}
		tbl.Print()

		if err := errors.Join(errs...); err != nil {
			return fmt.Errorf("%w: %w", ErrWlutil, err)
		}
		return nil
	},
}
