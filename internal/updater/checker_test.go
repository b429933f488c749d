// Copyright 2025 Bricks Users
// SPDX-License-Identifier: Apache-2.0

package updater

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareVersions(t *testing.T) {
	c := NewChecker("1.2.0")

	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{"newer available", "1.2.0", "1.3.0", true},
		{"same version", "1.2.0", "1.2.0", false},
		{"older remote", "1.2.0", "1.1.9", false},
		{"v prefixes stripped", "v1.0.0", "v2.0.0", true},
		{"dev build never updates", "dev", "9.9.9", false},
		{"empty current never updates", "", "1.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.compareVersions(tt.current, tt.latest)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompareVersionsMalformed(t *testing.T) {
	c := NewChecker("1.0.0")

	_, err := c.compareVersions("1.0.0", "not-a-version")
	assert.Error(t, err)
}

func TestShouldCheckWithoutCache(t *testing.T) {
	c := NewChecker("1.0.0")
	c.cacheDir = t.TempDir()

	should, err := c.shouldCheck()
	require.NoError(t, err)
	assert.True(t, should, "missing cache means a check is due")
}

func TestShouldCheckAfterFreshUpdate(t *testing.T) {
	c := NewChecker("1.0.0")
	c.cacheDir = t.TempDir()

	require.NoError(t, c.updateCache("1.1.0"))

	should, err := c.shouldCheck()
	require.NoError(t, err)
	assert.False(t, should, "a just-written cache suppresses the next check")
}
