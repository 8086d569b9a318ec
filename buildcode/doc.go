// Package buildcode implements the compact build-code codec used to share
// skill-tree builds as a single URL path segment.
//
// A build is three fixed trees of per-node skill levels plus one
// owned-currency total. The codec turns that sparse state into the shortest
// ASCII string it can, and reconstructs it losslessly. Every character of
// the output is URL-path-safe, so codes never need escaping.
//
// # Data Model
//
// Nodes are defined once, as an ordered list with at most one meaningful
// parent edge each. Three designated root nodes split every tree into three
// color branches (red, green, blue): a node belongs to the branch of
// whichever root its first-parent chain reaches. List order fixes each
// node's position within its branch, which is why encode and decode must
// use the same node list.
//
// # Wire Grammar
//
//	frame   := "0-" | "0--o" number | trees [ "-o" number ]
//	trees   := count ( "-" tree )*          count in [0,3]
//	tree    := "3" "-" branch "-" branch "-" branch
//	branch  := "" | count "_" token ( "_" token )*
//	token   := literal | literal "~" count | "~" count
//	literal := [0-9a-zA-Z]+                 base62 level
//	number  := [0-9a-zA-Z]+                 base62
//
// Levels are base62 (digits, then lowercase, then uppercase). Runs of one
// repeated value collapse to value~count when that is shorter than writing
// the copies out. Trailing zero structure is omitted at every level: zero
// levels at the end of a branch, all-zero branches, and empty trailing
// trees are all left out and padded back by the parser. An empty build is
// the two-character sentinel "0-".
//
// # Strictness
//
// Parsing fails closed. Declared counts must match the content that
// follows them, foreign characters are rejected before any structural
// work, and nothing is ever coerced to a default outside the trailing
// omissions the grammar itself defines. Codec.Decode reports every failure
// as ErrMalformed with the typed cause wrapped inside.
//
// # Example
//
//	codec, _ := buildcode.NewCodec(nodes, [3]string{"warfare", "sorcery", "artifice"})
//	code := codec.Encode(build)        // e.g. "2-3-5_1~5--~2-ojU"
//	back, err := codec.Decode(code)
package buildcode
