package ancestry

import "sort"

// CommitID is an opaque commit identifier assigned by the version-control
// backend. The resolver only ever compares IDs for equality and passes them
// back to the backend; it never constructs one itself.
type CommitID string

// Branch is a local branch with its tip commit.
type Branch struct {
	Name string
	Tip  CommitID
}

// Oracle answers merge-base queries between two commits. The second return
// value is false when the two commits share no history at all, which is a
// normal negative result rather than an error.
type Oracle interface {
	CommonAncestor(a, b CommitID) (CommitID, bool, error)
}

// ParentRelation maps a branch name to the name of its nearest ancestor
// branch. Branches with no discovered ancestor have no entry.
type ParentRelation map[string]string

// Forest maps a branch name to its children, sorted by name.
type Forest map[string][]string

// SortByName sorts branches by name in place. Branch ordering is
// load-bearing: it fixes the tie-break order in Resolve and the print
// order of the flat fallback.
func SortByName(branches []Branch) {
	sort.Slice(branches, func(i, j int) bool {
		return branches[i].Name < branches[j].Name
	})
}
