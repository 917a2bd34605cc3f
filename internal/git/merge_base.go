package git

import (
	"github.com/go-git/go-git/v5/plumbing"

	"twig.dev/twig/internal/ancestry"
	"twig.dev/twig/internal/errors"
)

// CommonAncestor returns the best common ancestor of two commits. The false
// return means the histories are unrelated, which is a normal negative
// result. This implements ancestry.Oracle.
func (r *Repository) CommonAncestor(a, b ancestry.CommitID) (ancestry.CommitID, bool, error) {
	commitA, err := r.CommitObject(plumbing.NewHash(string(a)))
	if err != nil {
		return "", false, errors.NewBackendError("load commit "+string(a), err)
	}

	commitB, err := r.CommitObject(plumbing.NewHash(string(b)))
	if err != nil {
		return "", false, errors.NewBackendError("load commit "+string(b), err)
	}

	bases, err := commitA.MergeBase(commitB)
	if err != nil {
		return "", false, errors.NewBackendError("merge-base", err)
	}
	if len(bases) == 0 {
		return "", false, nil
	}

	return ancestry.CommitID(bases[0].Hash.String()), true, nil
}
