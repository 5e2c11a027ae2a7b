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
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-wordlist"
	"github.com/ianlewis/go-wordlist/textlist"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrWlutil is a parent error for all command errors.
var ErrWlutil = errors.New("wlutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrWlutil)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newWordlistApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Compare and convert Chinese word lists.",
		Description: strings.Join([]string{
			"Word list utility written in Go.",
			"http://github.com/ianlewis/go-wordlist",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Usage:   "read the text list format from the YAML file `FILE`",
				Aliases: []string{"f"},
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "print debug logs",
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			listCommand,
			showCommand,
			partitionCommand,
			fillCommand,
		},
	}
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()

	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0
`, c.App.Name, versionInfo.GitVersion, strings.Join(copyrightNames, "\n"))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWlutil, err)
	}
	return nil
}

// newLogger returns a logger writing to the app's error writer.
func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}

	var w io.Writer = c.App.ErrWriter
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// formatOptions returns the text list format. The --format flag takes
// precedence over the first format file found in formatLocations.
func formatOptions(c *cli.Context) (*textlist.Options, error) {
	path := c.String("format")
	if path == "" {
		for _, loc := range formatLocations() {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}
	if path == "" {
		return textlist.DefaultOptions, nil
	}

	opts, err := textlist.LoadOptions(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWlutil, err)
	}
	newLogger(c).Debug("loaded format", "path", path)
	return opts, nil
}

// attributeFlag is the --attribute flag shared by commands comparing lists.
func attributeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "attribute",
		Usage:   "compare entries by `ATTR` (simplified, traditional, pronunciation, definition)",
		Aliases: []string{"a"},
		Value:   wordlist.AttrSimplified.String(),
	}
}

func parseAttribute(c *cli.Context) (wordlist.Attribute, error) {
	a, err := wordlist.ParseAttribute(c.String("attribute"))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return a, nil
}

// openLists opens the lists at paths concurrently. Lists are returned in the
// order of paths.
func openLists(c *cli.Context, paths ...string) ([]*wordlist.List, error) {
	opts, err := formatOptions(c)
	if err != nil {
		return nil, err
	}

	logger := newLogger(c)
	lists := make([]*wordlist.List, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			l, err := textlist.OpenFile(path, opts)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrWlutil, err)
			}
			logger.Debug("opened list", "path", path, "name", l.Name(), "entries", l.Len(), "sections", len(l.Sections()))
			lists[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lists, nil
}
