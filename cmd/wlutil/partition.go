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
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordlist"
	"github.com/ianlewis/go-wordlist/internal/folding"
	"github.com/ianlewis/go-wordlist/textlist"
)

var partitionCommand = &cli.Command{
	Name:  "partition",
	Usage: "split two word lists into the entries only in A, in both, and only in B",
	Description: "Writes A_minus_B.txt, A_intersecting_B.txt and B_minus_A.txt\n" +
		"to the output directory, where A and B are the list names.",
	ArgsUsage: "A B",
	Flags: []cli.Flag{
		attributeFlag(),
		&cli.BoolFlag{
			Name:               "per-character",
			Usage:              "compare entries character by character",
			Aliases:            []string{"c"},
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "fold",
			Usage:              "ignore width, case and white space differences",
			DisableDefaultText: true,
		},
		&cli.StringFlag{
			Name:    "out",
			Usage:   "write result lists to `DIR`",
			Aliases: []string{"o"},
			Value:   ".",
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: expected two files", ErrFlagParse)
		}

		if nameA, nameB := textlist.ListName(c.Args().Get(0)), textlist.ListName(c.Args().Get(1)); nameA == nameB {
			return fmt.Errorf("%w: both lists are named %q", ErrFlagParse, nameA)
		}

		attr, err := parseAttribute(c)
		if err != nil {
			return err
		}

		lists, err := openLists(c, c.Args().Slice()...)
		if err != nil {
			return err
		}

		partOpts := &wordlist.PartitionOptions{
			Attribute:    attr,
			PerCharacter: c.Bool("per-character"),
		}
		if c.Bool("fold") {
			partOpts.Folder = folding.Default
		}
		onlySelf, shared, onlyOther := lists[0].PartitionWithOptions(lists[1], partOpts)

		opts, err := formatOptions(c)
		if err != nil {
			return err
		}

		logger := newLogger(c)
		for _, l := range []*wordlist.List{onlySelf, shared, onlyOther} {
			path := filepath.Join(c.String("out"), l.Name()+".txt")
			if err := textlist.SaveFile(path, l, opts); err != nil {
				return fmt.Errorf("%w: %w", ErrWlutil, err)
			}
			logger.Info("wrote list", "path", path, "entries", l.Len(), "sections", len(l.Sections()))
			if _, err := fmt.Fprintln(c.App.Writer, path); err != nil {
				return fmt.Errorf("%w: %w", ErrWlutil, err)
			}
		}

		return nil
	},
}
