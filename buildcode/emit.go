package buildcode

import "strings"

// Grammar characters. Base62 values never contain '-', '_' or '~'; the
// owned marker 'o' is only a marker directly after the final '-'.
const (
	tokenSep  = "_"
	treeSep   = "-"
	runMark   = '~'
	ownedMark = "o"
)

// serialize renders branch-grouped level arrays and the owned total as one
// code string. trees[t][b] lists levels by branch position.
//
// Trailing empty structure is dropped at every level: zero levels at the
// end of a branch, all-zero branches, and trailing empty trees. That, much
// more than the radix, is where the compression comes from: most real
// builds are mostly unspent.
func serialize(trees [NumTrees][NumBranches][]int, owned int) string {
	treeStrs := make([]string, NumTrees)
	last := -1
	for t := range trees {
		treeStrs[t] = emitTree(trees[t])
		if treeStrs[t] != "" {
			last = t
		}
	}

	var sb strings.Builder
	sb.WriteString(encode62(last + 1))
	sb.WriteString(treeSep)
	sb.WriteString(joinTrees(treeStrs[:last+1]))
	if owned > 0 {
		sb.WriteString(treeSep)
		sb.WriteString(ownedMark)
		sb.WriteString(encode62(owned))
	}
	return sb.String()
}

// joinTrees joins tree strings with '-', collapsing a run of an identical
// tree into tree~count. The run form is only used when the tree ends with
// an empty third branch: the repeat marker then lands where that empty
// branch segment would be, with nothing but the opening '-' before it,
// which is what keeps it distinguishable from a '~' inside branch content
// (see splitTreeRun).
func joinTrees(treeStrs []string) string {
	var parts []string
	for i := 0; i < len(treeStrs); {
		j := i + 1
		for j < len(treeStrs) && treeStrs[j] == treeStrs[i] {
			j++
		}
		count := j - i
		v := treeStrs[i]
		if count > 1 && treeRunSafe(v) && runWins(len(v), count) {
			parts = append(parts, v+string(runMark)+encode62(count))
		} else {
			for k := 0; k < count; k++ {
				parts = append(parts, v)
			}
		}
		i = j
	}
	return strings.Join(parts, treeSep)
}

// treeRunSafe reports whether a tree string may carry a trailing repeat
// marker. A tree ending in a non-empty branch would glue the marker onto
// that branch's tokens, where it reads as branch content.
func treeRunSafe(s string) bool {
	return strings.HasSuffix(s, treeSep)
}

// emitTree renders one tree. Branch identity is positional, so the branch
// count is always the literal 3 and no branch is ever omitted at this
// level.
func emitTree(branches [NumBranches][]int) string {
	bs := make([]string, NumBranches)
	empty := true
	for i, levels := range branches {
		bs[i] = emitBranch(levels)
		if bs[i] != "" {
			empty = false
		}
	}
	if empty {
		return ""
	}
	return "3" + treeSep + strings.Join(bs, treeSep)
}

// emitBranch renders one branch's positional levels: the logical length in
// base62, then '_'-joined tokens. Trailing zeros are dropped before
// compression; a branch with nothing left renders empty.
func emitBranch(levels []int) string {
	last := -1
	for i, v := range levels {
		if v > 0 {
			last = i
		}
	}
	if last < 0 {
		return ""
	}
	values := make([]string, last+1)
	for i := 0; i <= last; i++ {
		if levels[i] > 0 {
			values[i] = encode62(levels[i])
		}
	}
	tokens := compressValues(values)
	return encode62(last+1) + tokenSep + strings.Join(tokens, tokenSep)
}
