package git

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	gogit "github.com/go-git/go-git/v5"

	"twig.dev/twig/internal/errors"
)

// Repository wraps a go-git repository with a working tree.
type Repository struct {
	*gogit.Repository
	root   string
	logger *log.Logger
}

// Discover opens the repository containing the current working directory,
// walking up parent directories the way git itself does. Bare repositories
// are rejected: the tool reasons about local branches of a checkout.
func Discover(logger *log.Logger) (*Repository, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return Open(wd, logger)
}

// Open opens the repository containing path.
func Open(path string, logger *log.Logger) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if err == gogit.ErrRepositoryNotExists {
			return nil, fmt.Errorf("%w: %s", errors.ErrNotARepository, path)
		}
		return nil, errors.NewBackendError("open repository", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if err == gogit.ErrIsBareRepository {
			return nil, errors.ErrBareRepository
		}
		return nil, errors.NewBackendError("resolve worktree", err)
	}

	return &Repository{
		Repository: repo,
		root:       worktree.Filesystem.Root(),
		logger:     logger,
	}, nil
}

// Root returns the root directory of the repository's working tree.
func (r *Repository) Root() string {
	return r.root
}

// CurrentBranch returns the branch HEAD points to, or "" when HEAD is
// detached or unborn. This only feeds a display annotation, so the
// degenerate cases are not errors here.
func (r *Repository) CurrentBranch() string {
	head, err := r.Head()
	if err != nil || !head.Name().IsBranch() {
		return ""
	}
	return head.Name().Short()
}
