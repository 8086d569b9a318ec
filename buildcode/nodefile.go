package buildcode

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// NodeFile is the YAML document that defines a node list and its three
// branch roots:
//
//	roots: [warfare, sorcery, artifice]
//	nodes:
//	  - id: warfare
//	    max: 1
//	  - id: cleave
//	    max: 5
//	    parents: [warfare]
type NodeFile struct {
	Roots []string `yaml:"roots"`
	Nodes []Node   `yaml:"nodes"`
}

// RootIDs returns the roots as a fixed array in branch order.
func (nf *NodeFile) RootIDs() [NumBranches]string {
	var roots [NumBranches]string
	copy(roots[:], nf.Roots)
	return roots
}

// ReadNodeFile decodes a node definition document. Unknown fields are
// rejected so typos in node files surface instead of silently dropping
// nodes into the wrong branch.
func ReadNodeFile(r io.Reader) (*NodeFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var nf NodeFile
	if err := dec.Decode(&nf); err != nil {
		return nil, fmt.Errorf("buildcode: decode node file: %w", err)
	}
	if len(nf.Roots) != NumBranches {
		return nil, fmt.Errorf("buildcode: node file must name %d roots, has %d", NumBranches, len(nf.Roots))
	}
	if len(nf.Nodes) == 0 {
		return nil, fmt.Errorf("buildcode: node file has no nodes")
	}
	return &nf, nil
}

// LoadNodeFile reads a node definition file and builds a codec from it
// with the default orphan policy.
func LoadNodeFile(path string) (*Codec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	nf, err := ReadNodeFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	codec, err := NewCodec(nf.Nodes, nf.RootIDs())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return codec, nil
}
