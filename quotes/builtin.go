// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package quotes

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var builtinYAML []byte

var (
	builtinOnce    sync.Once
	builtinCatalog *Catalog
	builtinErr     error
)

type catalogFile struct {
	Topics []Topic `yaml:"topics"`
}

// Default returns the built-in catalog, parsed on first use.
// It panics if the embedded data is invalid; tests guard against that.
func Default() *Catalog {
	builtinOnce.Do(func() {
		builtinCatalog, builtinErr = LoadYAML(bytes.NewReader(builtinYAML))
	})
	if builtinErr != nil {
		panic(fmt.Sprintf("built-in catalog: %v", builtinErr))
	}
	return builtinCatalog
}

// LoadYAML reads a catalog document of the form
//
//	topics:
//	  - name: general
//	    quotes: ["...", "..."]
func LoadYAML(r io.Reader) (*Catalog, error) {
	var doc catalogFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return NewCatalog(doc.Topics)
}

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
