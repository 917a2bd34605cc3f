package git

import (
	"unicode/utf8"

	"github.com/go-git/go-git/v5/plumbing"

	"twig.dev/twig/internal/ancestry"
	"twig.dev/twig/internal/errors"
)

// LocalBranches returns every local branch with its tip commit. A branch
// whose name does not decode as UTF-8 is skipped with a warning rather than
// failing the whole run.
func (r *Repository) LocalBranches() ([]ancestry.Branch, error) {
	iter, err := r.Branches()
	if err != nil {
		return nil, errors.NewBackendError("list branches", err)
	}

	var branches []ancestry.Branch
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if !utf8.ValidString(name) {
			r.logger.Warn("skipping branch with undecodable name", "name", name)
			return nil
		}
		branches = append(branches, ancestry.Branch{
			Name: name,
			Tip:  ancestry.CommitID(ref.Hash().String()),
		})
		return nil
	})
	if err != nil {
		return nil, errors.NewBackendError("iterate branches", err)
	}

	return branches, nil
}
