package actions

import (
	"twig.dev/twig/internal/ancestry"
	"twig.dev/twig/internal/context"
	"twig.dev/twig/internal/output"
)

// TreeOptions configures the tree action
type TreeOptions struct {
	Render output.RenderConfig
}

// Tree prints the ancestry tree of the repository's local branches: each
// branch nested under the nearest other branch it descends from, roots
// highlighted when they are not a conventional mainline branch.
func Tree(opts TreeOptions, ctx *context.Context) error {
	branches, err := ctx.Repo.LocalBranches()
	if err != nil {
		return err
	}
	if len(branches) == 0 {
		return nil
	}
	ancestry.SortByName(branches)

	ctx.Log.Debug("resolving branch ancestry", "branches", len(branches))

	parents, err := ancestry.Resolve(branches, ctx.Repo)
	if err != nil {
		return err
	}
	for child, parent := range parents {
		ctx.Log.Debug("resolved parent", "branch", child, "parent", parent)
	}

	forest, roots := ancestry.BuildForest(branches, parents)

	renderer := output.NewTreeRenderer(opts.Render, ctx.Log.Warnf)
	for _, line := range renderer.Render(branches, parents, forest, roots) {
		ctx.Splog.Line(line)
	}

	return nil
}
