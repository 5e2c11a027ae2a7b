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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordlist/textlist"
)

var fillCommand = &cli.Command{
	Name:      "fill",
	Usage:     "fill in missing attributes of TARGET from SOURCE",
	ArgsUsage: "TARGET SOURCE",
	Flags: []cli.Flag{
		attributeFlag(),
		&cli.StringFlag{
			Name:    "out",
			Usage:   "write the filled list to `FILE` instead of stdout",
			Aliases: []string{"o"},
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 2 {
			return fmt.Errorf("%w: expected two files", ErrFlagParse)
		}

		attr, err := parseAttribute(c)
		if err != nil {
			return err
		}

		lists, err := openLists(c, c.Args().Slice()...)
		if err != nil {
			return err
		}
		filled := lists[0].Fill(lists[1], attr)

		opts, err := formatOptions(c)
		if err != nil {
			return err
		}

		out := c.String("out")
		if out == "" {
			if err := textlist.Write(c.App.Writer, filled, opts); err != nil {
				return fmt.Errorf("%w: %w", ErrWlutil, err)
			}
			return nil
		}

		if err := textlist.SaveFile(out, filled, opts); err != nil {
			return fmt.Errorf("%w: %w", ErrWlutil, err)
		}
		newLogger(c).Info("wrote list", "path", out, "entries", filled.Len())
		return nil
	},
}
