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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"
)

var showCommand = &cli.Command{
	Name:      "show",
	Usage:     "print the entries of a word list",
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:               "plain",
			Usage:              "render Pleco markup in definitions as plain text",
			DisableDefaultText: true,
		},
	},
	Action: func(c *cli.Context) error {
		if c.NArg() != 1 {
			return fmt.Errorf("%w: expected one file", ErrFlagParse)
		}

		lists, err := openLists(c, c.Args().First())
		if err != nil {
			return err
		}
		l := lists[0]

		tbl := table.New("#", "Section", "Simplified", "Traditional", "Pronunciation", "Definition").
			WithWriter(c.App.Writer)
		for i := range l.Len() {
			e := l.Entry(i)
			def := e.Definition
			if c.Bool("plain") {
				// Table rows are single line.
				def = strings.Join(strings.Fields(e.PlainDefinition()), " ")
			}
			var section string
			if s, ok := l.SectionOf(i); ok {
				section = strings.Join(s, "/")
			}
			tbl.AddRow(e.Position, section, e.Simplified, e.Traditional, e.Pronunciation, def)
		}
		tbl.Print()

		return nil
	},
}
