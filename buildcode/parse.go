package buildcode

import (
	"fmt"
	"strings"
)

// ValidAlphabet reports whether s contains only characters that can appear
// in a build code. Callers sitting on a URL route can use it to discard
// foreign path segments without paying for a full parse.
func ValidAlphabet(s string) bool {
	return alphabetViolation(s) < 0
}

// alphabetViolation returns the offset of the first character outside the
// code alphabet, or -1.
func alphabetViolation(s string) int {
	for i := 0; i < len(s); i++ {
		if _, ok := base62Value(s[i]); ok {
			continue
		}
		switch s[i] {
		case '-', '_', runMark:
			continue
		}
		return i
	}
	return -1
}

// splitTreeRun decides whether a '-'-delimited segment carries a
// tree-level repeat marker and splits it off. A '~' is tree-level only
// when no '_' precedes it inside the segment: the nearest separator before
// it is then the '-' that opened the segment. With a '_' in front, the '~'
// belongs to a branch run token and the segment is left alone.
//
// This runs before any count or segment validation; applying it later
// would misread well-formed codes.
func splitTreeRun(seg string) (rest, countStr string, ok bool) {
	i := strings.LastIndexByte(seg, runMark)
	if i < 0 || strings.Contains(seg[:i], tokenSep) {
		return seg, "", false
	}
	return seg[:i], seg[i+1:], true
}

// parseFrame is the strict inverse of serialize: it validates every
// declared count against actual content and fails closed on any
// inconsistency. Only the trailing omissions the grammar defines are
// padded back; nothing else is ever defaulted.
func parseFrame(s string) (trees [NumTrees][NumBranches][]int, owned int, err error) {
	if i := alphabetViolation(s); i >= 0 {
		return trees, 0, fmt.Errorf("%w: %q at offset %d", ErrAlphabet, s[i], i)
	}

	s, owned, err = splitOwned(s)
	if err != nil {
		return trees, 0, err
	}
	if s == "0"+treeSep {
		return trees, owned, nil
	}

	segs := strings.Split(s, treeSep)
	declared, err := decode62(segs[0])
	if err != nil {
		return trees, 0, err
	}
	if declared > NumTrees {
		return trees, 0, fmt.Errorf("%w: tree count: declared %d, limit %d", ErrCountMismatch, declared, NumTrees)
	}
	if declared == 0 {
		// the only zero-tree forms are the sentinels handled above
		return trees, 0, fmt.Errorf("%w: empty build is written %q", ErrIncomplete, "0"+treeSep)
	}
	segs = segs[1:]

	parsed, err := parseTrees(segs)
	if err != nil {
		return trees, 0, err
	}
	if len(parsed) < declared {
		return trees, 0, fmt.Errorf("%w: tree count: declared %d, got %d", ErrIncomplete, declared, len(parsed))
	}
	if len(parsed) > declared {
		return trees, 0, fmt.Errorf("%w: tree count: declared %d, got %d", ErrCountMismatch, declared, len(parsed))
	}
	// trees beyond the declared count stay empty: the mirror of the
	// serializer's trailing truncation
	copy(trees[:], parsed)
	return trees, owned, nil
}

// parseTrees consumes the '-'-delimited segments after the tree count.
// Each tree is a branch-count segment plus exactly three branch segments.
// A repeat marker rides in the tree's final branch segment (the serializer
// only attaches one to a tree ending in an empty third branch, so the
// marker lands where that empty segment would be); splitTreeRun is applied
// to that segment before its content is validated as a branch.
func parseTrees(segs []string) ([][NumBranches][]int, error) {
	var parsed [][NumBranches][]int
	for i := 0; i < len(segs); {
		seg := segs[i]

		if _, _, ok := splitTreeRun(seg); ok {
			// a marker can only occupy a tree's final branch position
			return nil, fmt.Errorf("%w: misplaced repeat marker %q", ErrIncomplete, seg)
		}

		if seg == "" {
			parsed = append(parsed, [NumBranches][]int{})
			i++
			continue
		}

		bc, err := decode62(seg)
		if err != nil {
			return nil, err
		}
		if bc != NumBranches {
			return nil, fmt.Errorf("%w: branch count: declared %d, want %d", ErrCountMismatch, bc, NumBranches)
		}
		if i+NumBranches >= len(segs) {
			return nil, fmt.Errorf("%w: tree needs %d branch segments, %d left", ErrIncomplete, NumBranches, len(segs)-i-1)
		}

		repeat := 1
		lastSeg := segs[i+NumBranches]
		if rest, countStr, ok := splitTreeRun(lastSeg); ok {
			count, err := decode62(countStr)
			if err != nil {
				return nil, err
			}
			if count < 2 {
				return nil, fmt.Errorf("%w: tree repeat count %d", ErrCountMismatch, count)
			}
			repeat = count
			lastSeg = rest
		}

		var tree [NumBranches][]int
		for b := 0; b < NumBranches-1; b++ {
			levels, err := parseBranch(segs[i+1+b])
			if err != nil {
				return nil, err
			}
			tree[b] = levels
		}
		last, err := parseBranch(lastSeg)
		if err != nil {
			return nil, err
		}
		tree[NumBranches-1] = last

		for k := 0; k < repeat; k++ {
			parsed = append(parsed, tree)
		}
		i += 1 + NumBranches
	}
	return parsed, nil
}

// parseBranch expands one branch segment into positional levels. The empty
// segment is the all-zero branch. The declared logical length must equal
// the expanded token count exactly.
func parseBranch(seg string) ([]int, error) {
	if seg == "" {
		return nil, nil
	}
	parts := strings.Split(seg, tokenSep)
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: branch %q has no token separator", ErrIncomplete, seg)
	}
	declared, err := decode62(parts[0])
	if err != nil {
		return nil, err
	}
	values, err := expandTokens(parts[1:])
	if err != nil {
		return nil, err
	}
	if len(values) != declared {
		return nil, fmt.Errorf("%w: branch length: declared %d, got %d", ErrCountMismatch, declared, len(values))
	}
	levels := make([]int, declared)
	for i, v := range values {
		if v == "" {
			continue
		}
		lvl, err := decode62(v)
		if err != nil {
			return nil, err
		}
		levels[i] = lvl
	}
	return levels, nil
}

// splitOwned strips a trailing -o<base62> owned suffix. The suffix is only
// recognized when everything after the marker is base62: an 'o' inside
// branch content always has structure characters somewhere after it. A
// marker with no digits is an error, not a zero.
func splitOwned(s string) (string, int, error) {
	i := strings.LastIndex(s, treeSep+ownedMark)
	if i < 0 {
		return s, 0, nil
	}
	tail := s[i+2:]
	if tail == "" {
		return "", 0, fmt.Errorf("%w: owned suffix has no value", ErrIncomplete)
	}
	for j := 0; j < len(tail); j++ {
		if _, ok := base62Value(tail[j]); !ok {
			return s, 0, nil // the '-o' is structure, not an owned marker
		}
	}
	owned, err := decode62(tail)
	if err != nil {
		return "", 0, err
	}
	return s[:i], owned, nil
}
