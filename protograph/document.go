// SPDX-License-Identifier: MIT
// Package: ldpcgen/protograph
//
// document.go - TOML description of a protograph lift.
//
// Contract:
//   - factor and matrix are required; construction and seed are optional.
//   - Unknown keys are rejected so typos do not silently fall back to defaults.
//   - Matrix validation is delegated to FromRows.

package protograph

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Document is the on-disk description of a protograph and its lift settings.
type Document struct {
	// Factor is the lift factor f (size of each square block).
	Factor int `toml:"factor"`
	// Construction names the submatrix construction; empty means the caller's default.
	Construction string `toml:"construction"`
	// Seed, when set, fixes the random source for the lift.
	Seed *int64 `toml:"seed"`
	// Matrix holds the multiplicities, one inner array per check-node class.
	Matrix [][]int `toml:"matrix"`
}

// Decode reads a Document from r and checks that it is complete.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("protograph.Decode: %w: %w", ErrSyntax, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("protograph.Decode: unknown keys [%s]: %w",
			strings.Join(keys, ", "), ErrDocument)
	}
	if !md.IsDefined("factor") || !md.IsDefined("matrix") {
		return nil, fmt.Errorf("protograph.Decode: factor and matrix are required: %w", ErrDocument)
	}

	return &doc, nil
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("protograph.LoadFile: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Protograph converts the document matrix into a validated Protograph.
func (d *Document) Protograph() (*Protograph, error) {
	return FromRows(d.Matrix)
}
