package ancestry_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"twig.dev/twig/internal/ancestry"
)

// commitGraph is an in-memory commit history standing in for a real backend.
// Commits are registered with their parents; CommonAncestor answers
// merge-base queries by reachability.
type commitGraph struct {
	parents map[ancestry.CommitID][]ancestry.CommitID
}

func newCommitGraph() *commitGraph {
	return &commitGraph{parents: make(map[ancestry.CommitID][]ancestry.CommitID)}
}

func (g *commitGraph) commit(id string, parents ...string) ancestry.CommitID {
	cid := ancestry.CommitID(id)
	for _, p := range parents {
		g.parents[cid] = append(g.parents[cid], ancestry.CommitID(p))
	}
	if len(parents) == 0 {
		g.parents[cid] = nil
	}
	return cid
}

// ancestors returns every commit reachable from id, including id itself.
func (g *commitGraph) ancestors(id ancestry.CommitID) map[ancestry.CommitID]bool {
	seen := make(map[ancestry.CommitID]bool)
	stack := []ancestry.CommitID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		stack = append(stack, g.parents[cur]...)
	}
	return seen
}

func (g *commitGraph) CommonAncestor(a, b ancestry.CommitID) (ancestry.CommitID, bool, error) {
	ancA := g.ancestors(a)
	ancB := g.ancestors(b)

	common := make(map[ancestry.CommitID]bool)
	for c := range ancA {
		if ancB[c] {
			common[c] = true
		}
	}
	if len(common) == 0 {
		return "", false, nil
	}

	// The best common ancestor is the one every other common ancestor is
	// reachable from. Test histories are shaped so it is unique.
	for c := range common {
		reach := g.ancestors(c)
		all := true
		for d := range common {
			if !reach[d] {
				all = false
				break
			}
		}
		if all {
			return c, true, nil
		}
	}
	return "", false, fmt.Errorf("no unique best common ancestor of %s and %s", a, b)
}

// failingOracle returns an error on every query.
type failingOracle struct{ err error }

func (o *failingOracle) CommonAncestor(a, b ancestry.CommitID) (ancestry.CommitID, bool, error) {
	return "", false, o.err
}

func TestResolve_StackedBranches(t *testing.T) {
	g := newCommitGraph()
	a := g.commit("A")
	b := g.commit("B", "A")
	c := g.commit("C", "B")

	branches := []ancestry.Branch{
		{Name: "main", Tip: a},
		{Name: "feature-x", Tip: b},
		{Name: "feature-x-sub", Tip: c},
	}

	parents, err := ancestry.Resolve(branches, g)
	require.NoError(t, err)
	require.Equal(t, ancestry.ParentRelation{
		"feature-x":     "main",
		"feature-x-sub": "feature-x",
	}, parents)
}

func TestResolve_LinearChain(t *testing.T) {
	g := newCommitGraph()
	const n = 6

	prev := ""
	branches := make([]ancestry.Branch, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("c%d", i)
		if prev == "" {
			g.commit(id)
		} else {
			g.commit(id, prev)
		}
		branches = append(branches, ancestry.Branch{
			Name: fmt.Sprintf("branch-%d", i),
			Tip:  ancestry.CommitID(id),
		})
		prev = id
	}

	parents, err := ancestry.Resolve(branches, g)
	require.NoError(t, err)

	// One root, a single unbroken chain of n-1 links.
	require.Len(t, parents, n-1)
	for i := 1; i < n; i++ {
		require.Equal(t, fmt.Sprintf("branch-%d", i-1), parents[fmt.Sprintf("branch-%d", i)])
	}
	_, hasParent := parents["branch-0"]
	require.False(t, hasParent)
}

func TestResolve_UnrelatedHistories(t *testing.T) {
	g := newCommitGraph()
	a := g.commit("A")
	x := g.commit("X")

	branches := []ancestry.Branch{
		{Name: "main", Tip: a},
		{Name: "orphan", Tip: x},
	}

	parents, err := ancestry.Resolve(branches, g)
	require.NoError(t, err)
	require.Empty(t, parents)
}

func TestResolve_SameTipBranchesExcludeEachOther(t *testing.T) {
	g := newCommitGraph()
	a := g.commit("A")
	b := g.commit("B", "A")

	branches := []ancestry.Branch{
		{Name: "main", Tip: a},
		{Name: "dup-one", Tip: b},
		{Name: "dup-two", Tip: b},
	}

	parents, err := ancestry.Resolve(branches, g)
	require.NoError(t, err)
	require.Equal(t, "main", parents["dup-one"])
	require.Equal(t, "main", parents["dup-two"])
	require.NotEqual(t, "dup-two", parents["dup-one"])
	require.NotEqual(t, "dup-one", parents["dup-two"])
}

func TestResolve_CloserAncestorReplacesEarlierCandidate(t *testing.T) {
	g := newCommitGraph()
	a := g.commit("A")
	b := g.commit("B", "A")
	c := g.commit("C", "B")

	// "main" sorts before "zz-mid", so the farther ancestor is found first
	// and must be replaced by the closer one.
	branches := []ancestry.Branch{
		{Name: "main", Tip: a},
		{Name: "zz-mid", Tip: b},
		{Name: "zz-top", Tip: c},
	}

	parents, err := ancestry.Resolve(branches, g)
	require.NoError(t, err)
	require.Equal(t, "zz-mid", parents["zz-top"])
}

func TestResolve_DivergedAncestorsTieBreakByName(t *testing.T) {
	// Merge commit M has two branch ancestors that have diverged from each
	// other. Neither is closer; the first in sorted-name order wins.
	g := newCommitGraph()
	g.commit("A")
	p1 := g.commit("P1", "A")
	p2 := g.commit("P2", "A")
	m := g.commit("M", "P1", "P2")

	branches := []ancestry.Branch{
		{Name: "zeta", Tip: p1},
		{Name: "beta", Tip: p2},
		{Name: "merged", Tip: m},
	}

	parents, err := ancestry.Resolve(branches, g)
	require.NoError(t, err)
	require.Equal(t, "beta", parents["merged"])

	// Same shape with the names swapped: still the alphabetically first.
	branches = []ancestry.Branch{
		{Name: "beta", Tip: p1},
		{Name: "zeta", Tip: p2},
		{Name: "merged", Tip: m},
	}
	parents, err = ancestry.Resolve(branches, g)
	require.NoError(t, err)
	require.Equal(t, "beta", parents["merged"])
}

func TestResolve_Idempotent(t *testing.T) {
	g := newCommitGraph()
	a := g.commit("A")
	b := g.commit("B", "A")
	c := g.commit("C", "B")
	d := g.commit("D", "A")

	branches := []ancestry.Branch{
		{Name: "main", Tip: a},
		{Name: "one", Tip: b},
		{Name: "two", Tip: c},
		{Name: "side", Tip: d},
	}

	first, err := ancestry.Resolve(branches, g)
	require.NoError(t, err)
	second, err := ancestry.Resolve(branches, g)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestResolve_InputOrderIndependent(t *testing.T) {
	g := newCommitGraph()
	a := g.commit("A")
	b := g.commit("B", "A")
	c := g.commit("C", "B")

	forward := []ancestry.Branch{
		{Name: "main", Tip: a},
		{Name: "one", Tip: b},
		{Name: "two", Tip: c},
	}
	backward := []ancestry.Branch{
		{Name: "two", Tip: c},
		{Name: "one", Tip: b},
		{Name: "main", Tip: a},
	}

	fromForward, err := ancestry.Resolve(forward, g)
	require.NoError(t, err)
	fromBackward, err := ancestry.Resolve(backward, g)
	require.NoError(t, err)
	require.Equal(t, fromForward, fromBackward)
}

func TestResolve_OracleErrorAborts(t *testing.T) {
	boom := errors.New("object database corrupt")
	branches := []ancestry.Branch{
		{Name: "main", Tip: "A"},
		{Name: "feature", Tip: "B"},
	}

	_, err := ancestry.Resolve(branches, &failingOracle{err: boom})
	require.Error(t, err)
	require.ErrorIs(t, err, boom)
}
