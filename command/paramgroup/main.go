// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
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

	"github.com/bitmark-inc/paramgroup/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	log     *logger.L
	verbose bool
	r       io.Reader
	e       io.Writer
	w       io.Writer
}

const (
	logCategory = "paramgroup"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "paramgroup"
	app.Usage = "group command-line tokens by key"
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
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: "",
			Usage: " output `FORMAT` [json|text]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:            "args",
			Usage:           "group tokens given as separate arguments",
			ArgsUsage:       "TOKEN...",
			SkipFlagParsing: true,
			Action:          runArgs,
		},
		{
			Name:            "line",
			Usage:           "group a space separated line, reads lines from stdin if none given",
			ArgsUsage:       "[LINE]",
			SkipFlagParsing: true,
			Action:          runLine,
		},
		{
			Name:            "keys",
			Usage:           "list the keys of the given tokens in order",
			ArgsUsage:       "TOKEN...",
			SkipFlagParsing: true,
			Action:          runKeys,
		},
		{
			Name:  "version",
			Usage: "display paramgroup version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file and logging for certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h":
			return nil
		}

		file := c.GlobalString("config-file")
		config, err := readConfiguration(file, e, verbose)
		if nil != err {
			return err
		}

		if c.GlobalIsSet("format") {
			config.Format = c.GlobalString("format")
			if err := configuration.CheckFormat(config.Format); nil != err {
				return fmt.Errorf("%s: %q", err, config.Format)
			}
		}

		if err := os.MkdirAll(config.Logging.Directory, 0700); nil != err {
			return err
		}
		if err := logger.Initialise(config.Logging); nil != err {
			return fmt.Errorf("logger setup failed with error: %s", err)
		}

		log := logger.New(logCategory)
		log.Infof("version: %s  command: %s", version, command)

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  config,
			log:     log,
			verbose: verbose,
			r:       os.Stdin,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

// the default configuration is used if no file is given
func readConfiguration(file string, e io.Writer, verbose bool) (*configuration.Configuration, error) {
	if "" == file {
		return configuration.Default(), nil
	}

	file = os.ExpandEnv(file)
	if verbose {
		fmt.Fprintf(e, "reading config file: %s\n", file)
	}
	return configuration.GetConfiguration(file)
}
