// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vectors reads digest-vector files: one message per line, in the
// form
//
//	<hex-digest> <whitespace> [*]<path>
//
// where path names the file whose digest is expected, relative to the
// vector file, and a leading '*' marks the file as binary (the marker is
// accepted and stripped; contents are always read byte-for-byte).
package vectors

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/LightningCreations/lc-crypto/cryptoerr"
)

var lineRe = regexp.MustCompile(`^([0-9a-fA-F]+)\s+(\*?)(.+)$`)

// Entry is one line of a vector file.
type Entry struct {
	// Digest is the expected output, decoded from hex.
	Digest []byte
	// Path is the message file, resolved against the vector file's
	// directory.
	Path string
	// Binary reports whether the '*' marker was present.
	Binary bool
}

// ParseFile reads a vector file. Blank lines and lines starting with '#'
// are skipped; any other malformed line fails with InvalidData.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, cryptoerr.Wrap(cryptoerr.Other, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	var entries []Entry
	sc := bufio.NewScanner(f)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, cryptoerr.Wrap(cryptoerr.InvalidData,
				fmt.Errorf("%s:%d: malformed vector line", path, lineno))
		}
		digest, err := hex.DecodeString(m[1])
		if err != nil {
			return nil, cryptoerr.Wrap(cryptoerr.InvalidData,
				fmt.Errorf("%s:%d: %w", path, lineno, err))
		}
		entries = append(entries, Entry{
			Digest: digest,
			Path:   filepath.Join(dir, filepath.FromSlash(m[3])),
			Binary: m[2] == "*",
		})
	}
	if err := sc.Err(); err != nil {
		return nil, cryptoerr.Wrap(cryptoerr.Other, err)
	}
	return entries, nil
}
