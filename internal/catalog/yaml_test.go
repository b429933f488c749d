// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	brickserr "github.com/dotandev/bricks/internal/errors"
)

func TestYAMLRoundTrip(t *testing.T) {
	items := []*Item{
		{
			PartID:         3001,
			AlternativeIDs: []uint32{93888},
			Name:           "Brick 2x4",
			Amount:         amount(12),
			ColorGroupSet:  []ColorGroup{ColorBasic, ColorGrey},
		},
		{PartID: 44, Name: "Plate 1x1"},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportYAML(&buf, items))
	assert.Contains(t, buf.String(), "part_id: 3001")

	got, err := ImportYAML(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, items[0].Name, got[0].Name)
	assert.Equal(t, items[0].AlternativeIDs, got[0].AlternativeIDs)
	require.NotNil(t, got[0].Amount)
	assert.Equal(t, uint32(12), *got[0].Amount)
	assert.Nil(t, got[1].Amount)
}

func TestImportYAMLRejectsMissingPartID(t *testing.T) {
	doc := "items:\n  - name: orphan\n"

	_, err := ImportYAML(strings.NewReader(doc))
	assert.True(t, errors.Is(err, brickserr.ErrImportFailed))
}

func TestImportYAMLRejectsMalformedDocument(t *testing.T) {
	_, err := ImportYAML(strings.NewReader("items: [not-an-item"))
	assert.True(t, errors.Is(err, brickserr.ErrImportFailed))
}
