// Package trie builds the segment trie the brace composer folds over.
//
// All nodes live in one arena slice and refer to their children by index, so
// the structure has no back references and can be walked with an explicit
// stack regardless of path depth. Children keep first-seen order; that order
// is the default output order of every brace group.
package trie

import (
	"strings"

	"github.com/elliotchance/orderedmap/v3"
)

// Root is the arena index of the root node.
const Root = 0

// Key identifies a child under its parent. ID is zero except for the final
// segment of a path when duplicates are kept distinct.
type Key struct {
	Label string
	ID    int
}

// Node is one segment in the trie.
type Node struct {
	Label       string
	Children    *orderedmap.OrderedMap[Key, int]
	Leaf        bool
	TrailingSep bool
	Depth       int
}

// Options controls segmentation and duplicate handling.
type Options struct {
	// SplitSegments splits at every separator; otherwise only the first
	// separator is honoured.
	SplitSegments bool
	// Distinct keeps literal duplicate paths as separate leaves.
	Distinct bool
}

// Trie is a node arena rooted at index Root.
type Trie struct {
	Nodes []Node
}

func newNode(label string, depth int) Node {
	return Node{
		Label:    label,
		Children: orderedmap.NewOrderedMap[Key, int](),
		Depth:    depth,
	}
}

// Build inserts every path into a fresh trie.
func Build(paths []string, sep string, opts Options) *Trie {
	t := &Trie{Nodes: []Node{newNode("", 0)}}

	nextID := 1
	for _, p := range paths {
		segs := Segments(p, sep, opts.SplitSegments)

		cur := Root
		for i, seg := range segs {
			last := i == len(segs)-1

			key := Key{Label: seg}
			if opts.Distinct && last {
				key.ID = nextID
				nextID++
			}

			child, ok := t.Nodes[cur].Children.Get(key)
			if !ok {
				child = len(t.Nodes)
				t.Nodes[cur].Children.Set(key, child)
				t.Nodes = append(t.Nodes, newNode(seg, t.Nodes[cur].Depth+1))
			}
			cur = child

			if last {
				t.Nodes[cur].Leaf = true
				t.Nodes[cur].TrailingSep = seg == "" && sep != "" && strings.HasSuffix(p, sep)
			}
		}
	}

	return t
}

// Segments splits a path for insertion. With split disabled a path holding
// the separator yields exactly two segments: everything before the first
// separator and the untouched remainder.
func Segments(path, sep string, split bool) []string {
	if sep == "" {
		return []string{path}
	}
	if split {
		return strings.Split(path, sep)
	}
	if before, after, found := strings.Cut(path, sep); found {
		return []string{before, after}
	}
	return []string{path}
}

// Len reports the number of nodes, root included.
func (t *Trie) Len() int {
	return len(t.Nodes)
}

// ChildIndices returns the children of node i in stored order.
func (t *Trie) ChildIndices(i int) []int {
	children := t.Nodes[i].Children
	out := make([]int, 0, children.Len())
	for idx := range children.Values() {
		out = append(out, idx)
	}
	return out
}

// Postorder lists node indices children-first, siblings in stored order,
// using an explicit stack.
func (t *Trie) Postorder() []int {
	type frame struct {
		node     int
		expanded bool
	}

	post := make([]int, 0, len(t.Nodes))
	stack := []frame{{node: Root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.expanded {
			post = append(post, top.node)
			continue
		}

		stack = append(stack, frame{node: top.node, expanded: true})
		for _, child := range t.Nodes[top.node].Children.AllFromBack() {
			stack = append(stack, frame{node: child})
		}
	}
	return post
}
