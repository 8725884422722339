// Copyright 2024 The lc-crypto Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// ctsum is a basic checksum command over the library's digest family.
//
//	ctsum -a sha3-256 file...            hash files (stdin when none)
//	ctsum -a sha256 -mackey secret file  HMAC instead of a plain digest
//	ctsum -a sha256 -check vectors.txt   verify a digest-vector file
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/LightningCreations/lc-crypto/digest"
	"github.com/LightningCreations/lc-crypto/hmac"
	"github.com/LightningCreations/lc-crypto/internal/vectors"
	"github.com/LightningCreations/lc-crypto/sha1"
	"github.com/LightningCreations/lc-crypto/sha2"
	"github.com/LightningCreations/lc-crypto/sha3"
	"github.com/LightningCreations/lc-crypto/subtle"
)

// algorithms maps the -a flag to a digest factory.
var algorithms = map[string]func() digest.Raw{
	"sha1":       func() digest.Raw { return sha1.New() },
	"sha224":     func() digest.Raw { return sha2.New224() },
	"sha256":     func() digest.Raw { return sha2.New256() },
	"sha384":     func() digest.Raw { return sha2.New384() },
	"sha512":     func() digest.Raw { return sha2.New512() },
	"sha512-224": func() digest.Raw { return sha2.New512_224() },
	"sha512-256": func() digest.Raw { return sha2.New512_256() },
	"sha3-224":   func() digest.Raw { return sha3.New224() },
	"sha3-256":   func() digest.Raw { return sha3.New256() },
	"sha3-384":   func() digest.Raw { return sha3.New384() },
	"sha3-512":   func() digest.Raw { return sha3.New512() },
	"shake128":   func() digest.Raw { return sha3.NewShake128(32) },
	"shake256":   func() digest.Raw { return sha3.NewShake256(64) },
}

func algorithmNames() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	errColor = color.New(color.FgRed)
	okColor  = color.New(color.FgGreen)
)

func main() {
	app := &cli.App{
		Name:  "ctsum",
		Usage: "checksum files with the SHA-2 and SHA-3 families",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Value:   "shake256",
				Usage:   fmt.Sprintf("one of %v", algorithmNames()),
			},
			&cli.StringFlag{
				Name:  "mackey",
				Usage: "an ASCII MAC key; compute an HMAC instead of a plain digest",
			},
			&cli.StringFlag{
				Name:  "check",
				Usage: "verify the digests listed in a vector `FILE`",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		errColor.Fprintf(os.Stderr, "ctsum: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	name := c.String("algorithm")
	newDigest, ok := algorithms[name]
	if !ok {
		return fmt.Errorf("unknown algorithm %q (have %v)", name, algorithmNames())
	}

	if vf := c.String("check"); vf != "" {
		return check(newDigest, vf)
	}

	if c.NArg() == 0 {
		sum, err := sumReader(newDigest, c.String("mackey"), os.Stdin)
		if err != nil {
			return err
		}
		fmt.Printf("%x\n", sum)
		return nil
	}

	for _, filename := range c.Args().Slice() {
		sum, err := sumFile(newDigest, c.String("mackey"), filename)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		fmt.Printf("%x  %s\n", sum, filename)
	}
	return nil
}

func sumFile(newDigest func() digest.Raw, macKey, filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return sumReader(newDigest, macKey, f)
}

func sumReader(newDigest func() digest.Raw, macKey string, r io.Reader) ([]byte, error) {
	if macKey != "" {
		m, err := hmac.New(newDigest, []byte(macKey))
		if err != nil {
			return nil, err
		}
		defer m.Destroy()
		if _, err := io.Copy(m, r); err != nil {
			return nil, err
		}
		return m.Sum()
	}

	w := digest.NewWriter(newDigest())
	if _, err := io.Copy(w, r); err != nil {
		return nil, err
	}
	return w.Sum()
}

// check verifies every entry of a digest-vector file and reports per-file
// OK / FAILED lines, failing overall when any entry mismatches.
func check(newDigest func() digest.Raw, vectorFile string) error {
	entries, err := vectors.ParseFile(vectorFile)
	if err != nil {
		return err
	}
	failed := 0
	for _, e := range entries {
		sum, err := sumFile(newDigest, "", e.Path)
		if err != nil {
			return err
		}
		eq := len(sum) == len(e.Digest) && subtle.MustEq(sum, e.Digest)
		if eq {
			okColor.Printf("%s: OK\n", e.Path)
		} else {
			errColor.Printf("%s: FAILED\n", e.Path)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d checksums failed", failed, len(entries))
	}
	return nil
}
