// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

// Package catalog holds the brick inventory: the Item record, its
// sqlite-backed store, and YAML import/export.
package catalog

import (
	"fmt"
	"strings"
)

// ColorGroup is a coarse bucket of brick colors used for sorting bins.
type ColorGroup string

const (
	ColorAll         ColorGroup = "All"
	ColorBasic       ColorGroup = "Basic"
	ColorEarth       ColorGroup = "Earth"
	ColorGrey        ColorGroup = "Grey"
	ColorRoad        ColorGroup = "Road"
	ColorNice        ColorGroup = "Nice"
	ColorTranslucent ColorGroup = "Translucent"
)

// ColorGroups lists every group in display order.
func ColorGroups() []ColorGroup {
	return []ColorGroup{
		ColorAll, ColorBasic, ColorEarth, ColorGrey,
		ColorRoad, ColorNice, ColorTranslucent,
	}
}

func (c ColorGroup) String() string { return string(c) }

// Item is one catalog record. The part ID is the primary identity;
// alternative IDs cover re-released molds of the same part.
type Item struct {
	PartID         uint32       `json:"part_id" yaml:"part_id"`
	AlternativeIDs []uint32     `json:"alternative_ids,omitempty" yaml:"alternative_ids,omitempty"`
	Name           string       `json:"name" yaml:"name"`
	Amount         *uint32      `json:"amount,omitempty" yaml:"amount,omitempty"`
	ColorGroupSet  []ColorGroup `json:"color_groups,omitempty" yaml:"color_groups,omitempty"`
}

// ID returns the primary part identifier.
func (i *Item) ID() uint32 { return i.PartID }

// String renders the item one field per line for the display and edit
// screens.
func (i *Item) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Part ID: %d", i.PartID)

	if len(i.AlternativeIDs) > 0 {
		ids := make([]string, len(i.AlternativeIDs))
		for n, id := range i.AlternativeIDs {
			ids[n] = fmt.Sprintf("%d", id)
		}
		fmt.Fprintf(&b, "\nAlternative IDs: %s", strings.Join(ids, ", "))
	}

	fmt.Fprintf(&b, "\nName: %s", i.Name)

	if i.Amount != nil {
		fmt.Fprintf(&b, "\nAmount: %d", *i.Amount)
	}

	if len(i.ColorGroupSet) > 0 {
		groups := make([]string, len(i.ColorGroupSet))
		for n, g := range i.ColorGroupSet {
			groups[n] = string(g)
		}
		fmt.Fprintf(&b, "\nColor groups: %s", strings.Join(groups, ", "))
	}

	return b.String()
}

// HasID reports whether id matches the primary or any alternative ID.
func (i *Item) HasID(id uint32) bool {
	if i.PartID == id {
		return true
	}
	for _, alt := range i.AlternativeIDs {
		if alt == id {
			return true
		}
	}
	return false
}

// AddColorGroup appends the group if not already present.
func (i *Item) AddColorGroup(g ColorGroup) {
	for _, have := range i.ColorGroupSet {
		if have == g {
			return
		}
	}
	i.ColorGroupSet = append(i.ColorGroupSet, g)
}

// RemoveColorGroup drops the group if present.
func (i *Item) RemoveColorGroup(g ColorGroup) {
	for n, have := range i.ColorGroupSet {
		if have == g {
			i.ColorGroupSet = append(i.ColorGroupSet[:n], i.ColorGroupSet[n+1:]...)
			return
		}
	}
}

// AddAlternativeID appends the id if not already present.
func (i *Item) AddAlternativeID(id uint32) {
	for _, have := range i.AlternativeIDs {
		if have == id {
			return
		}
	}
	i.AlternativeIDs = append(i.AlternativeIDs, id)
}
