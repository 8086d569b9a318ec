package buildcode

import "fmt"

// The frame shape is fixed: a build always has exactly NumTrees trees and
// every tree always has exactly NumBranches branches. Changing either is a
// wire-format break.
const (
	NumTrees    = 3
	NumBranches = 3
)

// Branch identifies one of the three fixed node groupings within a tree.
type Branch uint8

const (
	BranchRed Branch = iota
	BranchGreen
	BranchBlue
)

// String returns the branch color name.
func (b Branch) String() string {
	switch b {
	case BranchRed:
		return "red"
	case BranchGreen:
		return "green"
	case BranchBlue:
		return "blue"
	default:
		return fmt.Sprintf("branch(%d)", uint8(b))
	}
}

// Node describes one skill node. The order of the node list a Codec is
// built from is significant: it fixes every node's position inside its
// branch, and with it the meaning of every encoded string. Only the first
// declared parent counts for branch membership.
type Node struct {
	ID       string   `yaml:"id" json:"id"`
	MaxLevel int      `yaml:"max" json:"max"`
	Parents  []string `yaml:"parents,omitempty" json:"parents,omitempty"`
}

// TreeLevels holds one tree's spent levels keyed by node id. A missing key
// means level zero; the two are interchangeable everywhere in this
// package.
type TreeLevels map[string]int

// Level returns the level for id, zero when unset.
func (t TreeLevels) Level(id string) int { return t[id] }

// Set records a level, deleting the entry when lvl is zero or less so
// sparse maps stay sparse.
func (t TreeLevels) Set(id string, lvl int) {
	if lvl <= 0 {
		delete(t, id)
		return
	}
	t[id] = lvl
}

// Build is the caller-facing state: three positional trees plus the owned
// currency total.
type Build struct {
	Trees [NumTrees]TreeLevels `json:"trees"`
	Owned int                  `json:"owned"`
}

// NewBuild returns an empty build with all three tree maps allocated.
func NewBuild() *Build {
	var b Build
	for i := range b.Trees {
		b.Trees[i] = TreeLevels{}
	}
	return &b
}
