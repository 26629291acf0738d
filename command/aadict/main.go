// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/keyfold/aadict/configuration"
	"github.com/keyfold/aadict/fault"
)

type metadata struct {
	file    string // data file with one key=value per line
	config  *configuration.Configuration
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "aadict"
	app.Usage = "ordered key/value batch tool"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " aadict configuration `FILE` (Lua), optional",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: "*data `FILE` with one key=value per line",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "sort",
			Usage:  "list the data file in ascending key order",
			Action: runSort,
		},
		{
			Name:      "get",
			Usage:     "look up keys in the data file",
			ArgsUsage: " KEY...",
			Action:    runGet,
		},
		{
			Name:      "floor",
			Usage:     "find the highest key not above each given key",
			ArgsUsage: " KEY...",
			Action:    runFloor,
		},
		{
			Name:      "prefix",
			Usage:     "list all keys sharing a prefix",
			ArgsUsage: " PREFIX",
			Action:    runPrefix,
		},
		{
			Name:      "delete",
			Usage:     "remove keys, then list the remainder in order",
			ArgsUsage: " KEY...",
			Action:    runDelete,
		},
		{
			Name:  "dump",
			Usage: "display the balanced tree built from the data file",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "levels, l",
					Usage: " include values, parents and balance levels",
				},
			},
			Action: runDump,
		},
		{
			Name:  "version",
			Usage: "display aadict version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		m := &metadata{
			file:    c.GlobalString("file"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if fileName := c.GlobalString("config"); "" != fileName {
			options, err := configuration.Parse(fileName)
			if nil != err {
				return err
			}
			if err := logger.Initialise(options.Logging); nil != err {
				return err
			}
			if err := fault.Initialise(); nil != err {
				return err
			}
			m.config = options
			m.log = logger.New("main")
			m.log.Infof("starting… version: %s", version)
		}

		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && nil != m.log {
			m.log.Info("shutting down…")
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}
