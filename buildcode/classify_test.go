package buildcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifier_Branches(t *testing.T) {
	c, err := NewClassifier(testNodeList(), testRoots, OrphanReject)
	require.NoError(t, err)

	for id, want := range map[string]Branch{
		"r0": BranchRed, "r1": BranchRed, "r2": BranchRed, "r3": BranchRed, "r4": BranchRed,
		"g0": BranchGreen, "g1": BranchGreen, "g2": BranchGreen,
		"b0": BranchBlue, "b1": BranchBlue, "b2": BranchBlue,
	} {
		got, ok := c.BranchOf(id)
		require.True(t, ok, id)
		require.Equal(t, want, got, id)
	}

	_, ok := c.BranchOf("nope")
	require.False(t, ok)
}

func TestClassifier_MemberOrderFollowsNodeList(t *testing.T) {
	c, err := NewClassifier(testNodeList(), testRoots, OrphanReject)
	require.NoError(t, err)

	require.Equal(t, []string{"r0", "r1", "r2", "r3", "r4"}, c.Members(BranchRed))
	require.Equal(t, []string{"g0", "g1", "g2"}, c.Members(BranchGreen))
	require.Equal(t, []string{"b0", "b1", "b2"}, c.Members(BranchBlue))

	br, pos, ok := c.PositionOf("r3")
	require.True(t, ok)
	require.Equal(t, BranchRed, br)
	require.Equal(t, 3, pos)
}

func TestClassifier_FirstParentDecides(t *testing.T) {
	nodes := append(testNodeList(), Node{
		ID: "hybrid", MaxLevel: 1, Parents: []string{"g1", "b1"},
	})
	c, err := NewClassifier(nodes, testRoots, OrphanReject)
	require.NoError(t, err)

	br, ok := c.BranchOf("hybrid")
	require.True(t, ok)
	require.Equal(t, BranchGreen, br)
}

func TestClassifier_Orphans(t *testing.T) {
	orphaned := append(testNodeList(),
		Node{ID: "lost", MaxLevel: 1},
		Node{ID: "lost-child", MaxLevel: 1, Parents: []string{"lost"}},
	)

	t.Run("default policy falls back to red", func(t *testing.T) {
		c, err := NewClassifier(orphaned, testRoots, OrphanDefault)
		require.NoError(t, err)
		for _, id := range []string{"lost", "lost-child"} {
			br, ok := c.BranchOf(id)
			require.True(t, ok, id)
			require.Equal(t, BranchRed, br, id)
		}
		require.Equal(t, []string{"r0", "r1", "r2", "r3", "r4", "lost", "lost-child"}, c.Members(BranchRed))
	})

	t.Run("strict policy rejects", func(t *testing.T) {
		_, err := NewClassifier(orphaned, testRoots, OrphanReject)
		require.Error(t, err)
		require.Contains(t, err.Error(), "lost")
	})
}

func TestClassifier_CycleCountsAsOrphan(t *testing.T) {
	cyclic := append(testNodeList(),
		Node{ID: "c1", MaxLevel: 1, Parents: []string{"c2"}},
		Node{ID: "c2", MaxLevel: 1, Parents: []string{"c1"}},
	)

	// must terminate rather than walk the loop forever
	c, err := NewClassifier(cyclic, testRoots, OrphanDefault)
	require.NoError(t, err)
	br, ok := c.BranchOf("c1")
	require.True(t, ok)
	require.Equal(t, BranchRed, br)

	_, err = NewClassifier(cyclic, testRoots, OrphanReject)
	require.Error(t, err)
}

func TestClassifier_BadInput(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		nodes := append(testNodeList(), Node{ID: "r1", MaxLevel: 2})
		_, err := NewClassifier(nodes, testRoots, OrphanDefault)
		require.Error(t, err)
	})

	t.Run("root not in list", func(t *testing.T) {
		_, err := NewClassifier(testNodeList(), [NumBranches]string{"r0", "g0", "missing"}, OrphanDefault)
		require.Error(t, err)
	})

	t.Run("root designated twice", func(t *testing.T) {
		_, err := NewClassifier(testNodeList(), [NumBranches]string{"r0", "r0", "b0"}, OrphanDefault)
		require.Error(t, err)
	})

	t.Run("empty id", func(t *testing.T) {
		nodes := append(testNodeList(), Node{MaxLevel: 1})
		_, err := NewClassifier(nodes, testRoots, OrphanDefault)
		require.Error(t, err)
	})
}
