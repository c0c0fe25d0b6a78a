package braces

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/braces/pkg/errors"
)

func with(mod func(*Config)) Config {
	cfg := DefaultConfig()
	mod(&cfg)
	return cfg
}

func TestBrace_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		cfg   Config
		want  string
	}{
		{
			name:  "shared directory and extension",
			paths: []string{"foo/bar.rs", "foo/baz.rs"},
			cfg:   DefaultConfig(),
			want:  "foo/{bar,baz}.rs",
		},
		{
			name:  "trailing separator",
			paths: []string{"a/", "a/b"},
			cfg:   DefaultConfig(),
			want:  "a/{,b}",
		},
		{
			name:  "insertion order kept",
			paths: []string{"z.rs", "b.rs"},
			cfg:   DefaultConfig(),
			want:  "{z,b}.rs",
		},
		{
			name:  "sorted",
			paths: []string{"z.rs", "b.rs"},
			cfg:   with(func(c *Config) { c.SortItems = true }),
			want:  "{b,z}.rs",
		},
		{
			name:  "max depth 1",
			paths: []string{"a/b/c/1", "a/b/c/2", "a/b/d/3"},
			cfg:   with(func(c *Config) { c.MaxDepth = 1 }),
			want:  "a/b/{c/1,c/2,d/3}",
		},
		{
			name:  "max depth 2",
			paths: []string{"a/b/c/1", "a/b/c/2", "a/b/d/3"},
			cfg:   with(func(c *Config) { c.MaxDepth = 2 }),
			want:  "a/b/{c/{1,2},d/3}",
		},
		{
			name:  "mixed separators normalised",
			paths: []string{"foo/bar", "foo\\baz"},
			cfg:   with(func(c *Config) { c.AllowMixedSeparators = true }),
			want:  "foo/{bar,baz}",
		},
		{
			name:  "brace input reprocessed",
			paths: []string{"foo/{bar,baz}.rs"},
			cfg:   with(func(c *Config) { c.ReprocessBraces = true }),
			want:  "foo/{bar,baz}.rs",
		},
		{
			name:  "path stops at interior node",
			paths: []string{"a/b", "a/b/c"},
			cfg:   DefaultConfig(),
			want:  "a/b{,/c}",
		},
		{
			name:  "three nested stops",
			paths: []string{"a/b", "a/b/c", "a/b/c/d"},
			cfg:   DefaultConfig(),
			want:  "a/b{,/c{,/d}}",
		},
		{
			name:  "empty alternative dissolved into parent",
			paths: []string{"a/b", "a/b/c"},
			cfg:   with(func(c *Config) { c.DisallowEmptyBraces = true }),
			want:  "a/{b/c,b}",
		},
		{
			name:  "empty alternative dissolved into root group",
			paths: []string{"a", "a/b"},
			cfg:   with(func(c *Config) { c.DisallowEmptyBraces = true }),
			want:  "{a/b,a}",
		},
		{
			name:  "dissolved root yields words",
			paths: []string{"ab", "b"},
			cfg:   with(func(c *Config) { c.DisallowEmptyBraces = true }),
			want:  "ab b",
		},
		{
			name:  "stem split",
			paths: []string{"foo/bar.rs", "foo/baz.rs"},
			cfg:   with(func(c *Config) { c.AllowStemSplit = true }),
			want:  "foo/ba{r,z}.rs",
		},
		{
			name:  "segment split disabled",
			paths: []string{"a/b", "a/b/c"},
			cfg:   with(func(c *Config) { c.AllowSegmentSplit = false }),
			want:  "a/{b,b/c}",
		},
		{
			name:  "segment split disabled without separator",
			paths: []string{"abc", "abcd"},
			cfg:   with(func(c *Config) { c.AllowSegmentSplit = false }),
			want:  "{abc,abcd}",
		},
		{
			name:  "duplicates kept",
			paths: []string{"foo/bar.rs", "foo/bar.rs", "foo/baz.rs"},
			cfg:   with(func(c *Config) { c.DeduplicateInputs = false }),
			want:  "foo/{bar,bar,baz}.rs",
		},
		{
			name:  "duplicates removed",
			paths: []string{"foo/bar.rs", "foo/bar.rs", "foo/baz.rs"},
			cfg:   DefaultConfig(),
			want:  "foo/{bar,baz}.rs",
		},
		{
			name:  "max brace size chunks",
			paths: []string{"a/b", "a/c", "a/d"},
			cfg:   with(func(c *Config) { c.MaxBraceSize = 2 }),
			want:  "{a/{b,c},a/d}",
		},
		{
			name:  "multi character separator",
			paths: []string{"foo::bar", "foo::baz"},
			cfg:   with(func(c *Config) { c.PathSeparator = "::" }),
			want:  "foo::{bar,baz}",
		},
		{
			name:  "absolute paths keep leading separator",
			paths: []string{"/usr/bin", "/usr/lib"},
			cfg:   DefaultConfig(),
			want:  "/usr/{bin,lib}",
		},
		{
			name:  "preserve order flag does not sort",
			paths: []string{"z.rs", "b.rs"},
			cfg:   with(func(c *Config) { c.PreserveOrderWithinBraces = true }),
			want:  "{z,b}.rs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Brace(tt.paths, tt.cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBrace_Errors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Brace(nil, DefaultConfig())
		assert.Equal(t, errors.EmptyInput(), err)
	})

	t.Run("mixed separators", func(t *testing.T) {
		_, err := Brace([]string{"foo/bar", "foo\\baz"}, DefaultConfig())
		assert.Equal(t, errors.MixedSeparators([]string{"\\"}, "/"), err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMixedSeparators))
	})

	t.Run("brace input", func(t *testing.T) {
		_, err := Brace([]string{"ok", "foo/{bar,baz}.rs"}, DefaultConfig())
		assert.Equal(t, errors.InvalidBraceInput("foo/{bar,baz}.rs", "reprocessing disabled"), err)
	})

	t.Run("caller slice untouched", func(t *testing.T) {
		in := []string{"foo\\a", "foo\\a", "foo/b"}
		_, err := Brace(in, with(func(c *Config) { c.AllowMixedSeparators = true }))
		require.NoError(t, err)
		assert.Equal(t, []string{"foo\\a", "foo\\a", "foo/b"}, in)
	})
}

func TestBrace_SingleItemStaysLiteral(t *testing.T) {
	configs := map[string]Config{
		"default":       DefaultConfig(),
		"depth zero":    with(func(c *Config) { c.MaxDepth = 0 }),
		"no empties":    with(func(c *Config) { c.DisallowEmptyBraces = true }),
		"stem":          with(func(c *Config) { c.AllowStemSplit = true }),
		"size one":      with(func(c *Config) { c.MaxBraceSize = 1 }),
		"no split":      with(func(c *Config) { c.AllowSegmentSplit = false }),
		"sorted no dup": with(func(c *Config) { c.SortItems = true; c.DeduplicateInputs = false }),
	}

	for name, cfg := range configs {
		for _, p := range []string{"foo/bar/baz.rs", "/abs/path/", "plain", ""} {
			got, err := Brace([]string{p}, cfg)
			require.NoError(t, err, name)
			assert.Equal(t, p, got, name)
		}
	}
}

func TestBrace_DedupIdempotent(t *testing.T) {
	withDups := []string{"a/b", "a/c", "a/b", "d", "a/c", "d/e"}
	without := []string{"a/b", "a/c", "d", "d/e"}

	want, err := Brace(without, DefaultConfig())
	require.NoError(t, err)
	got, err := Brace(withDups, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

var roundTripInputs = [][]string{
	{"foo/bar.rs", "foo/baz.rs"},
	{"a/", "a/b"},
	{"a/b/c/1", "a/b/c/2", "a/b/d/3"},
	{"/usr/bin/env", "/usr/lib/x.so", "/usr/bin", "/etc/hosts"},
	{"a/b", "a/b/c", "a/b/c/d"},
	{"src/main.go", "src/main_test.go", "src/util/strings.go", "README.md", "docs/"},
	{"x", "xy", "xyz"},
	{"ab", "b"},
	{"a//b", "a/b"},
	{"pkg/a/a.go", "pkg/a/a_test.go", "pkg/b/b.go", "pkg/b/b_test.go", "pkg/c/c.go", "cmd/main.go"},
}

var roundTripConfigs = map[string]Config{
	"default":        DefaultConfig(),
	"sorted":         with(func(c *Config) { c.SortItems = true }),
	"stem":           with(func(c *Config) { c.AllowStemSplit = true }),
	"stem sorted":    with(func(c *Config) { c.AllowStemSplit = true; c.SortItems = true }),
	"depth 0":        with(func(c *Config) { c.MaxDepth = 0 }),
	"depth 1":        with(func(c *Config) { c.MaxDepth = 1 }),
	"brace size 2":   with(func(c *Config) { c.MaxBraceSize = 2 }),
	"no empties":     with(func(c *Config) { c.DisallowEmptyBraces = true }),
	"no split":       with(func(c *Config) { c.AllowSegmentSplit = false }),
	"no empty stem":  with(func(c *Config) { c.DisallowEmptyBraces = true; c.AllowStemSplit = true }),
	"no empty size2": with(func(c *Config) { c.DisallowEmptyBraces = true; c.MaxBraceSize = 2 }),
	"everything": with(func(c *Config) {
		c.AllowStemSplit = true
		c.SortItems = true
		c.MaxDepth = 1
		c.MaxBraceSize = 2
		c.DisallowEmptyBraces = true
	}),
}

func TestCompress_RoundTrip(t *testing.T) {
	for name, cfg := range roundTripConfigs {
		for _, in := range roundTripInputs {
			res, err := Compress(in, cfg)
			require.NoError(t, err)

			var got []string
			for _, w := range res.Words {
				got = append(got, Expand(w)...)
			}

			want := append([]string(nil), in...)
			sort.Strings(want)
			sort.Strings(got)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("%s: round trip of %v via %v mismatch (-want +got):\n%s", name, in, res.Words, diff)
			}
		}
	}
}

func TestCompress_Result(t *testing.T) {
	res, err := Compress([]string{"foo/bar.rs", "foo/baz.rs"}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"foo/{bar,baz}.rs"}, res.Words)
	assert.Equal(t, ".rs", res.Suffix)
	assert.Equal(t, 4, res.Nodes)
}

// assertSortedGroups checks that the alternatives of every group, nested
// groups included, are in non-decreasing order.
func assertSortedGroups(t *testing.T, expr string) {
	t.Helper()
	for i := 0; i < len(expr); {
		if expr[i] != '{' {
			i++
			continue
		}
		alts, next := splitGroup(expr, i)
		assert.True(t, sort.StringsAreSorted(alts), "unsorted group %v in %q", alts, expr)
		for _, alt := range alts {
			assertSortedGroups(t, alt)
		}
		i = next
	}
}

func TestBrace_SortedGroups(t *testing.T) {
	configs := []Config{
		with(func(c *Config) { c.SortItems = true }),
		with(func(c *Config) { c.SortItems = true; c.AllowStemSplit = true }),
		with(func(c *Config) { c.SortItems = true; c.MaxDepth = 1 }),
	}
	for _, cfg := range configs {
		for _, in := range roundTripInputs {
			got, err := Brace(in, cfg)
			require.NoError(t, err)
			assertSortedGroups(t, got)
		}
	}
}

func TestBrace_DepthLimitNeverErrors(t *testing.T) {
	deep := strings.Repeat("d/", 200)
	got, err := Brace([]string{deep + "x", deep + "y"}, DefaultConfig())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{deep + "x", deep + "y"}, Expand(got))
}

// braceNesting returns the deepest level of '{' in expr.
func braceNesting(expr string) int {
	depth, deepest := 0, 0
	for _, ch := range expr {
		switch ch {
		case '{':
			depth++
			deepest = max(deepest, depth)
		case '}':
			depth--
		}
	}
	return deepest
}

func TestCompress_DepthGrowth(t *testing.T) {
	tests := []struct {
		paths      []string
		maxDepth   int
		want       string
		nesting    int
		enumerated int
	}{
		{[]string{"a/b/c/1", "a/b/c/2", "a/b/d/3"}, 0, "a/{b/c/1,b/c/2,b/d/3}", 1, 3},
		{[]string{"a/b/c/1", "a/b/c/2", "a/b/d/3"}, 1, "a/b/{c/1,c/2,d/3}", 1, 3},
		{[]string{"a/b/c/1", "a/b/c/2", "a/b/d/3"}, 2, "a/b/{c/{1,2},d/3}", 2, 3},
		{[]string{"a/b/c/1", "a/b/c/2", "a/b/d/3"}, 3, "a/b/{c/{1,2},d/3}", 2, 0},
		{[]string{"b", "c/b/a", "c/c/a"}, 0, "{b,c/{b/a,c/a}}", 2, 2},
		{[]string{"b", "c/b/a", "c/c/a"}, 1, "{b,c/{b/a,c/a}}", 2, 2},
		{[]string{"b", "c/b/a", "c/c/a"}, 2, "{b,c/{b/a,c/a}}", 2, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/max_depth=%d", tt.paths[0], tt.maxDepth), func(t *testing.T) {
			res, err := Compress(tt.paths, with(func(c *Config) { c.MaxDepth = tt.maxDepth }))
			require.NoError(t, err)
			require.Len(t, res.Words, 1)
			assert.Equal(t, tt.want, res.Words[0])
			assert.Equal(t, tt.nesting, braceNesting(res.Words[0]))
			assert.Equal(t, tt.enumerated, res.Enumerated)
		})
	}
}

// randomPaths draws short paths from a tiny alphabet, empty segments
// included, so shared prefixes and doubled separators are common.
func randomPaths(r *rand.Rand) []string {
	segments := []string{"", "a", "b", "c"}
	out := make([]string, 1+r.IntN(5))
	for i := range out {
		parts := make([]string, 1+r.IntN(5))
		for j := range parts {
			parts[j] = segments[r.IntN(len(segments))]
		}
		out[i] = strings.Join(parts, "/")
		if out[i] == "" {
			out[i] = "a"
		}
	}
	return out
}

func TestCompress_DepthBound(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for range 500 {
		paths := randomPaths(r)
		for _, size := range []int{0, 2} {
			levels := 1
			if size > 0 {
				levels = 2
			}
			prev := -1
			for md := 0; md <= 4; md++ {
				cfg := with(func(c *Config) { c.MaxDepth = md; c.MaxBraceSize = size })
				res, err := Compress(append([]string(nil), paths...), cfg)
				require.NoError(t, err, "%q", paths)

				got := strings.Join(res.Words, " ")
				assert.LessOrEqual(t, braceNesting(got), (md+2)*levels,
					"%q max_depth=%d max_brace_size=%d -> %q", paths, md, size, got)
				if prev >= 0 {
					assert.LessOrEqual(t, res.Enumerated, prev,
						"%q max_depth=%d max_brace_size=%d", paths, md, size)
				}
				prev = res.Enumerated
			}
		}
	}
}

func TestBrace_SortedChunksKeepChunkOrder(t *testing.T) {
	cfg := with(func(c *Config) { c.SortItems = true; c.MaxBraceSize = 2 })

	got, err := Brace([]string{"a/d", "a/c", "a/b"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "{a/{b,c},a/d}", got)

	alts, _ := splitGroup(got, 0)
	assert.Equal(t, []string{"a/{b,c}", "a/d"}, alts)
	for _, alt := range alts {
		assertSortedGroups(t, alt)
	}
}

func TestBraceGroups(t *testing.T) {
	groups := [][]string{
		{"foo/bar.rs", "foo/baz.rs"},
		{"a/", "a/b"},
		{"single"},
	}

	got, err := BraceGroups(context.Background(), groups, DefaultConfig(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"foo/{bar,baz}.rs", "a/{,b}", "single"}, got)
}

func TestBraceGroups_Error(t *testing.T) {
	groups := [][]string{{"a/b"}, {}, {"c/d"}}

	_, err := BraceGroups(context.Background(), groups, DefaultConfig(), 0)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEmptyInput))
}

func TestBraceGroups_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BraceGroups(ctx, [][]string{{"a"}}, DefaultConfig(), 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompressGroups_KeepsWords(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisallowEmptyBraces = true

	got, err := CompressGroups(context.Background(), [][]string{{"ab", "b"}, {"x/1", "x/2"}}, cfg, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"ab", "b"}, got[0].Words)
	assert.Equal(t, "b", got[0].Suffix)
	assert.Equal(t, []string{"x/{1,2}"}, got[1].Words)
}
