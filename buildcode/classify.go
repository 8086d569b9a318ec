package buildcode

import "fmt"

// OrphanPolicy controls what the classifier does with a node whose
// first-parent chain never reaches any designated root.
type OrphanPolicy uint8

const (
	// OrphanDefault places orphan nodes in the red branch. This matches
	// the historical planner behavior, so existing node files keep
	// producing the same strings.
	OrphanDefault OrphanPolicy = iota

	// OrphanReject makes NewClassifier fail on the first orphan node.
	OrphanReject
)

// Classifier maps node ids to branches and fixes each node's position
// within its branch. It is built once per node list and never mutated
// afterwards, so a single Classifier is safe for concurrent use without
// locking.
type Classifier struct {
	branchOf map[string]Branch
	position map[string]int
	members  [NumBranches][]string
}

// NewClassifier derives branch membership for nodes. roots designates the
// red, green and blue root ids in that order. Branch assignment follows
// each node's first declared parent upward until a root is reached; node
// list order fixes within-branch positions.
//
// A chain that leaves the node list, or that loops back on itself, can
// never reach a root; such nodes are orphans and fall under policy.
func NewClassifier(nodes []Node, roots [NumBranches]string, policy OrphanPolicy) (*Classifier, error) {
	c := &Classifier{
		branchOf: make(map[string]Branch, len(nodes)),
		position: make(map[string]int, len(nodes)),
	}

	firstParent := make(map[string]string, len(nodes))
	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("buildcode: node with empty id")
		}
		if _, dup := firstParent[n.ID]; dup {
			return nil, fmt.Errorf("buildcode: duplicate node id %q", n.ID)
		}
		parent := ""
		if len(n.Parents) > 0 {
			parent = n.Parents[0]
		}
		firstParent[n.ID] = parent
	}

	rootBranch := make(map[string]Branch, NumBranches)
	for i, id := range roots {
		if id == "" {
			return nil, fmt.Errorf("buildcode: %s root id is empty", Branch(i))
		}
		if _, ok := firstParent[id]; !ok {
			return nil, fmt.Errorf("buildcode: %s root %q not in node list", Branch(i), id)
		}
		if prev, dup := rootBranch[id]; dup {
			return nil, fmt.Errorf("buildcode: node %q designated as both %s and %s root", id, prev, Branch(i))
		}
		rootBranch[id] = Branch(i)
	}

	for _, n := range nodes {
		br, ok := c.resolve(n.ID, firstParent, rootBranch)
		if !ok {
			if policy == OrphanReject {
				return nil, fmt.Errorf("buildcode: node %q has no ancestry to any root", n.ID)
			}
			br = BranchRed
		}
		c.branchOf[n.ID] = br
		c.position[n.ID] = len(c.members[br])
		c.members[br] = append(c.members[br], n.ID)
	}
	return c, nil
}

// resolve walks the first-parent chain from id until it hits a root or an
// already-classified ancestor, then records the answer for every node on
// the walked chain so shared ancestors are only resolved once.
func (c *Classifier) resolve(id string, firstParent map[string]string, rootBranch map[string]Branch) (Branch, bool) {
	var chain []string
	cur := id
	for {
		if br, ok := rootBranch[cur]; ok {
			for _, m := range chain {
				c.branchOf[m] = br
			}
			return br, true
		}
		if br, ok := c.branchOf[cur]; ok {
			for _, m := range chain {
				c.branchOf[m] = br
			}
			return br, true
		}
		for _, m := range chain {
			if m == cur {
				return 0, false // cycle, unreachable from any root
			}
		}
		parent, known := firstParent[cur]
		if !known || parent == "" {
			return 0, false
		}
		chain = append(chain, cur)
		cur = parent
	}
}

// BranchOf reports the branch a node id was classified into.
func (c *Classifier) BranchOf(id string) (Branch, bool) {
	br, ok := c.branchOf[id]
	return br, ok
}

// PositionOf reports a node's branch and its index within that branch.
func (c *Classifier) PositionOf(id string) (Branch, int, bool) {
	br, ok := c.branchOf[id]
	if !ok {
		return 0, 0, false
	}
	return br, c.position[id], true
}

// Members returns the ordered node ids of a branch. The returned slice is
// the classifier's own and must not be modified.
func (c *Classifier) Members(b Branch) []string {
	if int(b) >= NumBranches {
		return nil
	}
	return c.members[b]
}
