// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Keyfold
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/keyfold/aadict/fault"
)

// Configuration - settings for the aadict tool
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Parse - read a Lua configuration file over built-in defaults
func Parse(fileName string) (*Configuration, error) {
	if "" == fileName {
		return nil, fault.ErrRequiredConfigFile
	}
	if _, err := os.Stat(fileName); nil != err {
		return nil, fault.ErrNotFoundConfigFile
	}

	options := &Configuration{
		DataDirectory: ".",
		Logging: logger.Configuration{
			Directory: "log",
			File:      "aadict.log",
			Size:      1048576,
			Count:     10,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		},
	}

	if err := ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}

	// log directory is relative to the data directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(options.DataDirectory, options.Logging.Directory)
	}

	return options, nil
}
