// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
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
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-doxsearch"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError

	// ExitCodeCheckFailed is the exit code when the link check finds
	// problems.
	ExitCodeCheckFailed
)

// ErrDoxsearch is a parent error for all command errors.
var ErrDoxsearch = errors.New("doxsearch")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrDoxsearch)

// ErrCheckFailed indicates that the link check found problems.
var ErrCheckFailed = fmt.Errorf("%w: check failed", ErrDoxsearch)

// defaultDir is the search directory used when none is given.
const defaultDir = "html/search"

const loggerKey = "logger"

var copyrightNames = []string{
	"2026 Ian Lewis",
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse):
		return ExitCodeFlagParseError
	case errors.Is(err, ErrCheckFailed):
		return ExitCodeCheckFailed
	default:
		return ExitCodeUnknownError
	}
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

// logger returns the logger configured for the app.
func logger(c *cli.Context) *slog.Logger {
	if l, ok := c.App.Metadata[loggerKey].(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// openIndex opens the search index in the directory given by the --dir flag.
func openIndex(c *cli.Context) (*doxsearch.Index, error) {
	dir := c.String("dir")
	logger(c).Debug("opening search index", "dir", dir)

	x, err := doxsearch.Open(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDoxsearch, err)
	}
	return x, nil
}

// queryArg returns the command arguments joined as a single query.
func queryArg(c *cli.Context) (string, error) {
	if c.NArg() == 0 {
		return "", fmt.Errorf("%w: missing QUERY", ErrFlagParse)
	}
	return strings.Join(c.Args().Slice(), " "), nil
}

func newDoxsearchApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search Doxygen documentation indexes.",
		Description: strings.Join([]string{
			"Doxygen search index utility written in Go.",
			"http://github.com/ianlewis/go-doxsearch",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Usage:   "read the search index in `DIR`",
				Aliases: []string{"d"},
				EnvVars: []string{"DOXSEARCH_DIR"},
				Value:   defaultDir,
			},
			&cli.BoolFlag{
				Name:               "verbose",
				Usage:              "print debug logs",
				Aliases:            []string{"v"},
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
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		Metadata:        map[string]interface{}{},
		OnUsageError:    usageError,
		Before: func(c *cli.Context) error {
			level := slog.LevelInfo
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			c.App.Metadata[loggerKey] = slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
				Level: level,
			}))
			return nil
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			sectionsCommand,
			queryCommand,
			searchCommand,
			checkCommand,
			listCommand,
		},
	}
}
