package git_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"twig.dev/twig/internal/errors"
	"twig.dev/twig/internal/git"
	"twig.dev/twig/testhelpers"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestOpen(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	repo, err := git.Open(scene.Dir, testLogger())
	require.NoError(t, err)

	wantRoot, err := filepath.EvalSymlinks(scene.Dir)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(repo.Root())
	require.NoError(t, err)
	require.Equal(t, wantRoot, gotRoot)
}

func TestDiscover_FromSubdirectory(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	// Discovery walks up from the working directory to find the repository.
	sub := filepath.Join(scene.Dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0750))
	require.NoError(t, os.Chdir(sub))

	repo, err := git.Discover(testLogger())
	require.NoError(t, err)
	require.Equal(t, "main", repo.CurrentBranch())

	wantRoot, err := filepath.EvalSymlinks(scene.Dir)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(repo.Root())
	require.NoError(t, err)
	require.Equal(t, wantRoot, gotRoot)
}

func TestOpen_NotARepository(t *testing.T) {
	dir := t.TempDir()

	_, err := git.Open(dir, testLogger())
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrNotARepository)
}

func TestOpen_BareRepositoryRejected(t *testing.T) {
	dir := t.TempDir()
	_, err := testhelpers.NewBareGitRepo(dir)
	require.NoError(t, err)

	_, err = git.Open(dir, testLogger())
	require.Error(t, err)
	require.ErrorIs(t, err, errors.ErrBareRepository)
}

func TestCurrentBranch(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	repo, err := git.Open(scene.Dir, testLogger())
	require.NoError(t, err)
	require.Equal(t, "main", repo.CurrentBranch())

	require.NoError(t, scene.Repo.CreateAndCheckoutBranch("feature"))
	repo, err = git.Open(scene.Dir, testLogger())
	require.NoError(t, err)
	require.Equal(t, "feature", repo.CurrentBranch())
}

func TestCurrentBranch_DetachedHead(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	require.NoError(t, scene.Repo.CheckoutDetached("HEAD"))

	repo, err := git.Open(scene.Dir, testLogger())
	require.NoError(t, err)
	require.Equal(t, "", repo.CurrentBranch())
}
