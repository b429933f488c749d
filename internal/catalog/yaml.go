// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dotandev/bricks/internal/errors"
)

// document is the on-disk YAML shape for a full catalog dump.
type document struct {
	Items []*Item `yaml:"items"`
}

// ExportYAML writes the items to w as a YAML document.
func ExportYAML(w io.Writer, items []*Item) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Items: items}); err != nil {
		return errors.WrapExportFailed(err)
	}
	if err := enc.Close(); err != nil {
		return errors.WrapExportFailed(err)
	}
	return nil
}

// ImportYAML reads a YAML catalog dump produced by ExportYAML.
func ImportYAML(r io.Reader) ([]*Item, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.WrapImportFailed(err)
	}
	for n, item := range doc.Items {
		if item.PartID == 0 {
			return nil, errors.WrapImportFailed(fmt.Errorf("item %d is missing part_id", n))
		}
	}
	return doc.Items, nil
}
