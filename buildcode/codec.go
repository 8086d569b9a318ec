package buildcode

import "fmt"

// Codec converts between sparse Build maps and the wire string. A Codec is
// bound to one node list; encode and decode of the same string must go
// through a Codec built from the same list, or branch positions will not
// line up. Applications carrying several node-list versions need one Codec
// per version.
type Codec struct {
	class *Classifier
}

// NewCodec builds the branch classifier for nodes and returns the codec.
// roots designates the red, green and blue root ids in that order. Orphan
// nodes fall back to the red branch; use NewStrictCodec to reject them
// instead.
func NewCodec(nodes []Node, roots [NumBranches]string) (*Codec, error) {
	return newCodec(nodes, roots, OrphanDefault)
}

// NewStrictCodec is NewCodec with OrphanReject: a node list containing a
// node with no ancestry to any root is refused up front.
func NewStrictCodec(nodes []Node, roots [NumBranches]string) (*Codec, error) {
	return newCodec(nodes, roots, OrphanReject)
}

func newCodec(nodes []Node, roots [NumBranches]string, policy OrphanPolicy) (*Codec, error) {
	class, err := NewClassifier(nodes, roots, policy)
	if err != nil {
		return nil, err
	}
	return &Codec{class: class}, nil
}

// Classifier returns the codec's branch classifier.
func (c *Codec) Classifier() *Classifier { return c.class }

// Encode renders b as a build code. Encode is total: node ids unknown to
// the codec's node list are skipped, and non-positive levels and owned
// totals read as zero.
func (c *Codec) Encode(b *Build) string {
	var trees [NumTrees][NumBranches][]int
	for t := range b.Trees {
		for id, lvl := range b.Trees[t] {
			if lvl <= 0 {
				continue
			}
			br, pos, ok := c.class.PositionOf(id)
			if !ok {
				continue
			}
			if trees[t][br] == nil {
				trees[t][br] = make([]int, len(c.class.Members(br)))
			}
			trees[t][br][pos] = lvl
		}
	}
	owned := b.Owned
	if owned < 0 {
		owned = 0
	}
	return serialize(trees, owned)
}

// Decode parses a build code produced by Encode. Any malformed input
// reports ErrMalformed; the specific cause stays reachable through
// errors.Is on the wrapped error. Decoded levels above a node's max are
// passed through for the caller to judge.
func (c *Codec) Decode(s string) (*Build, error) {
	trees, owned, err := parseFrame(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	b := NewBuild()
	b.Owned = owned
	for t := range trees {
		for br := range trees[t] {
			members := c.class.Members(Branch(br))
			levels := trees[t][br]
			if len(levels) > len(members) {
				return nil, fmt.Errorf("%w: %w: %s branch has %d nodes, code declares %d",
					ErrMalformed, ErrCountMismatch, Branch(br), len(members), len(levels))
			}
			for i, lvl := range levels {
				if lvl > 0 {
					b.Trees[t][members[i]] = lvl
				}
			}
		}
	}
	return b, nil
}
