package buildcode

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadNodeFile(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "nodes.yaml"))
	require.NoError(t, err)
	defer f.Close()

	nf, err := ReadNodeFile(f)
	require.NoError(t, err)
	require.Equal(t, [NumBranches]string{"warfare", "sorcery", "artifice"}, nf.RootIDs())
	require.Len(t, nf.Nodes, 9)
	require.Equal(t, []string{"warfare"}, nf.Nodes[1].Parents)
	require.Equal(t, 5, nf.Nodes[1].MaxLevel)
}

func TestReadNodeFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"two roots", "roots: [a, b]\nnodes:\n  - id: a\n  - id: b\n"},
		{"no nodes", "roots: [a, b, c]\n"},
		{"unknown field", "roots: [a, b, c]\nnodes:\n  - id: a\n    level: 3\n"},
		{"not yaml", "{{{"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadNodeFile(strings.NewReader(tt.doc))
			require.Error(t, err)
		})
	}
}

func TestLoadNodeFile(t *testing.T) {
	c, err := LoadNodeFile(filepath.Join("testdata", "nodes.yaml"))
	require.NoError(t, err)

	// overclock lists turret first, so it sits in the artifice branch
	br, ok := c.Classifier().BranchOf("overclock")
	require.True(t, ok)
	require.Equal(t, BranchBlue, br)

	b := NewBuild()
	b.Trees[0]["warfare"] = 1
	b.Trees[0]["cleave"] = 3
	code := c.Encode(b)
	require.Equal(t, "1-3-2_1_3--", code)

	back, err := c.Decode(code)
	require.NoError(t, err)
	require.Equal(t, 3, back.Trees[0].Level("cleave"))
}

func TestLoadNodeFile_Missing(t *testing.T) {
	_, err := LoadNodeFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
