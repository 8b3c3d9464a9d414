package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadGraph verifies a saved editor file round-trips into a graph:
// node order is preserved and unknown fields like screen locations are
// ignored.
func TestLoadGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	raw := `{
		"nodes": [
			{"name": "a", "id": 1, "location": [40, 80],
			 "connections": [{"other": "b", "weight": 1}]},
			{"name": "b", "id": 2, "location": [120, 80],
			 "connections": [{"other": "a", "weight": 1}]}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	g, err := loadGraph(path)
	require.NoError(t, err)
	require.Equal(t, 2, g.Len())

	names := make([]string, 0, g.Len())
	for _, n := range g.Nodes() {
		names = append(names, n.Name)
	}
	assert.Equal(t, []string{"a", "b"}, names)

	a, err := g.NodeByName("a")
	require.NoError(t, err)
	require.Len(t, a.Connections, 1)
	assert.Equal(t, "b", a.Connections[0].Other)
}

// TestLoadGraph_Errors covers the missing-file, malformed-JSON, and
// duplicate-node paths.
func TestLoadGraph_Errors(t *testing.T) {
	_, err := loadGraph(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = loadGraph(bad)
	assert.Error(t, err)

	dup := filepath.Join(t.TempDir(), "dup.json")
	require.NoError(t, os.WriteFile(dup, []byte(
		`{"nodes": [{"name": "a", "id": 1}, {"name": "a", "id": 2}]}`), 0o644))
	_, err = loadGraph(dup)
	assert.Error(t, err)
}
