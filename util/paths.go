// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - relative paths are taken relative to directory
func EnsureAbsolute(directory string, filePath string) string {
	if "" == filePath {
		return ""
	}
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureDirectory - create a directory, and its parents, if it does
// not already exist
func EnsureDirectory(directory string) error {
	return os.MkdirAll(directory, 0700)
}
