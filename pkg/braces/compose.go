package braces

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/braces/pkg/logging"
	"github.com/arthur-debert/braces/pkg/paths"
	"github.com/arthur-debert/braces/pkg/trie"
)

// stemStops may not be factored out of alternatives.
const stemStops = "{},"

// item is one alternative of a group. A stop item stands for a path ending
// at the group's own label.
type item struct {
	text string
	stop bool
}

// composer folds a trie bottom-up into brace fragments.
type composer struct {
	t      *trie.Trie
	cfg    Config
	sep    string
	logger zerolog.Logger

	reprs []string
	// flat marks nodes dissolved into their literal paths.
	flat []bool
	// raws holds literal paths below each node, the node's own label
	// included. Only filled when a fallback can need them.
	raws    [][]string
	needRaw bool

	// enumerated counts paths listed literally by the depth limit.
	enumerated int
}

func newComposer(t *trie.Trie, cfg Config) *composer {
	return &composer{
		t:       t,
		cfg:     cfg,
		sep:     cfg.PathSeparator,
		logger:  logging.GetLogger("braces.compose"),
		reprs:   make([]string, t.Len()),
		flat:    make([]bool, t.Len()),
		raws:    make([][]string, t.Len()),
		needRaw: cfg.DisallowEmptyBraces || maxDepth(t) > cfg.MaxDepth,
	}
}

func maxDepth(t *trie.Trie) int {
	deepest := 0
	for i := range t.Nodes {
		deepest = max(deepest, t.Nodes[i].Depth)
	}
	return deepest
}

// run composes every node and returns the root's words.
func (c *composer) run() []string {
	for _, n := range c.t.Postorder() {
		c.visit(n)
	}

	if c.flat[trie.Root] {
		return append([]string(nil), c.raws[trie.Root]...)
	}
	return []string{c.reprs[trie.Root]}
}

func (c *composer) visit(n int) {
	node := &c.t.Nodes[n]
	root := n == trie.Root
	children := c.t.ChildIndices(n)

	if c.needRaw {
		c.raws[n] = c.rawPaths(n, children)
	}

	var items []item
	if node.Depth > c.cfg.MaxDepth {
		for _, child := range children {
			for _, r := range c.raws[child] {
				items = append(items, item{text: r})
			}
		}
		// only the shallowest cut-off node reaches the output
		if node.Depth == max(c.cfg.MaxDepth+1, 0) && len(items) > 0 {
			c.enumerated += len(items)
			c.logger.Trace().Str("label", node.Label).Int("depth", node.Depth).Int("paths", len(items)).Msg("Depth limit reached, enumerating")
		}
	} else {
		for _, child := range children {
			if c.flat[child] {
				for _, r := range c.raws[child] {
					items = append(items, item{text: r})
				}
				continue
			}
			items = append(items, item{text: c.reprs[child]})
		}
	}
	if node.Leaf {
		items = append(items, item{stop: true})
	}

	if c.violatesEmpty(items) {
		c.logger.Trace().Str("label", node.Label).Msg("Empty alternative, dissolving group")
		c.flat[n] = true
		return
	}

	if s, ok := c.stemSplit(node.Label, root, items); ok {
		c.reprs[n] = s
		return
	}

	c.reprs[n] = c.compose(node.Label, root, items)
}

func (c *composer) rawPaths(n int, children []int) []string {
	node := &c.t.Nodes[n]
	var out []string
	for _, child := range children {
		for _, r := range c.raws[child] {
			if n == trie.Root {
				out = append(out, r)
			} else {
				out = append(out, node.Label+c.sep+r)
			}
		}
	}
	if node.Leaf {
		out = append(out, node.Label)
	}
	return out
}

func (c *composer) violatesEmpty(items []item) bool {
	if !c.cfg.DisallowEmptyBraces || len(items) < 2 {
		return false
	}
	for _, it := range items {
		if it.stop || it.text == "" {
			return true
		}
	}
	return false
}

// stemSplit factors a common character prefix and suffix out of items.
func (c *composer) stemSplit(label string, root bool, items []item) (string, bool) {
	if !c.cfg.AllowStemSplit || len(items) < 2 {
		return "", false
	}

	texts := make([]string, len(items))
	for i, it := range items {
		if it.stop {
			return "", false
		}
		texts[i] = it.text
	}

	prefix := paths.CommonPrefix(texts)
	if i := strings.IndexAny(prefix, stemStops); i >= 0 {
		prefix = prefix[:i]
	}
	rest := make([]string, len(texts))
	for i, t := range texts {
		rest[i] = t[len(prefix):]
	}
	suffix := paths.CommonSuffix(rest)
	if i := strings.LastIndexAny(suffix, stemStops); i >= 0 {
		suffix = suffix[i+1:]
	}
	if prefix == "" && suffix == "" {
		return "", false
	}

	variants := make([]string, len(rest))
	for i, r := range rest {
		variants[i] = r[:len(r)-len(suffix)]
		if variants[i] == "" && c.cfg.DisallowEmptyBraces {
			return "", false
		}
	}
	if c.cfg.MaxBraceSize > 0 && len(variants) > c.cfg.MaxBraceSize {
		return "", false
	}
	if c.cfg.SortItems {
		sort.Strings(variants)
	}

	out := prefix + wrap(variants) + suffix
	if !root {
		out = label + c.sep + out
	}
	return out, true
}

// compose sorts and chunks items, then renders them as groups.
func (c *composer) compose(label string, root bool, items []item) string {
	if c.cfg.SortItems {
		// a stop renders as the empty slot, ahead of any separator-led one
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].text == items[j].text {
				return items[i].stop && !items[j].stop
			}
			return items[i].text < items[j].text
		})
	}

	size := c.cfg.MaxBraceSize
	if size <= 0 || len(items) <= size {
		return c.group(label, root, items)
	}

	var chunks []string
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, c.group(label, root, items[start:end]))
	}
	return "{" + strings.Join(chunks, ",") + "}"
}

// group renders label followed by its alternatives. Only the root omits the
// label and separator.
func (c *composer) group(label string, root bool, items []item) string {
	if len(items) == 0 {
		return label
	}

	hasStop := false
	for _, it := range items {
		if it.stop {
			hasStop = true
			break
		}
	}

	if !hasStop {
		texts := make([]string, len(items))
		for i, it := range items {
			texts[i] = it.text
		}
		if root {
			return wrap(texts)
		}
		return label + c.sep + wrap(texts)
	}

	if len(items) == 1 {
		return label
	}
	slots := make([]string, len(items))
	for i, it := range items {
		if !it.stop {
			slots[i] = c.sep + it.text
		}
	}
	return label + "{" + strings.Join(slots, ",") + "}"
}

// wrap braces alternatives unless there is only one.
func wrap(alts []string) string {
	if len(alts) == 1 {
		return alts[0]
	}
	return "{" + strings.Join(alts, ",") + "}"
}
