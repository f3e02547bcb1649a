// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/paramgroup/fault"
)

// output formats
const (
	FormatJSON = "json"
	FormatText = "text"
)

// basic defaults (log directory is relative to the configuration file)
const (
	defaultFormat = FormatJSON
	defaultIndent = "  "

	defaultLogDirectory = "log"
	defaultLogFile      = "paramgroup.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// Configuration - settings for the paramgroup command
type Configuration struct {
	Format  string               `gluamapper:"format" json:"format"`
	Indent  string               `gluamapper:"indent" json:"indent"`
	Logging logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - the configuration used when no file is given, logs go to
// a directory under the system temporary directory
func Default() *Configuration {
	return &Configuration{
		Format: defaultFormat,
		Indent: defaultIndent,
		Logging: logger.Configuration{
			Directory: filepath.Join(os.TempDir(), "paramgroup"),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: LoglevelMap{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// GetConfiguration - will read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(configurationFileName); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundConfiguration
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := Default()
	options.Logging.Directory = defaultLogDirectory

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.check(dataDirectory); nil != err {
		return nil, err
	}
	return options, nil
}

// normalise and validate, relative paths are made absolute from dataDirectory
func (options *Configuration) check(dataDirectory string) error {

	options.Format = strings.ToLower(strings.TrimSpace(options.Format))
	if err := CheckFormat(options.Format); nil != err {
		return err
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case ".":
	default:
		return fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}
	if "" == options.Logging.File {
		options.Logging.File = defaultLogFile
	}

	if "" == options.Logging.Directory {
		options.Logging.Directory = defaultLogDirectory
	}
	options.Logging.Directory = ensureAbsolute(dataDirectory, options.Logging.Directory)

	if options.Logging.Size <= 0 {
		options.Logging.Size = defaultLogSize
	}
	if options.Logging.Count <= 0 {
		options.Logging.Count = defaultLogCount
	}
	return nil
}

// CheckFormat - only the known output formats are accepted
func CheckFormat(format string) error {
	switch format {
	case FormatJSON, FormatText:
		return nil
	default:
		return fault.ErrInvalidFormat
	}
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
