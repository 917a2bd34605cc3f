package output

import (
	"twig.dev/twig/internal/ancestry"
)

// Escape sequences for the default (terminal) render config.
const (
	brightRed  = "\x1b[91m"
	colorReset = "\x1b[0m"
)

// mainlineNames are conventional primary-branch names. Roots with one of
// these names are printed bare; any other root gets the detached marker.
var mainlineNames = []string{"main", "master", "develop", "dev", "local-dev"}

// RenderConfig carries the formatting knobs of the tree renderer so headless
// output modes need no code changes.
type RenderConfig struct {
	MainlineNames []string
	// DetachedMarker is printed before non-mainline root names, wrapped in
	// HighlightStart/HighlightReset.
	DetachedMarker string
	HighlightStart string
	HighlightReset string
	// CurrentBranch, when set, suffixes the matching branch name with a
	// marker wherever it appears in the tree.
	CurrentBranch string
}

// DefaultRenderConfig returns the terminal config: the detached marker is
// highlighted bright red.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MainlineNames:  mainlineNames,
		DetachedMarker: "(detached)",
		HighlightStart: brightRed,
		HighlightReset: colorReset,
	}
}

// PlainRenderConfig returns a config with no escape sequences, for
// non-terminal output.
func PlainRenderConfig() RenderConfig {
	cfg := DefaultRenderConfig()
	cfg.HighlightStart = ""
	cfg.HighlightReset = ""
	return cfg
}

// TreeRenderer renders a branch forest as an indented ASCII tree.
type TreeRenderer struct {
	cfg      RenderConfig
	mainline map[string]bool
	warnf    func(format string, args ...interface{})
}

// NewTreeRenderer creates a tree renderer. warnf receives diagnostic
// warnings and must not write to the same stream as the rendered lines.
func NewTreeRenderer(cfg RenderConfig, warnf func(format string, args ...interface{})) *TreeRenderer {
	mainline := make(map[string]bool, len(cfg.MainlineNames))
	for _, name := range cfg.MainlineNames {
		mainline[name] = true
	}
	if warnf == nil {
		warnf = func(string, ...interface{}) {}
	}
	return &TreeRenderer{
		cfg:      cfg,
		mainline: mainline,
		warnf:    warnf,
	}
}

// Render produces the output lines for the branch forest, in order.
//
// Normally each root prints a header followed by its subtree. When every
// branch has a parent the relation must contain a cycle, which the resolver
// is designed to prevent; rather than aborting, a warning is emitted and all
// branches are listed flatly. An empty branch set produces no lines.
func (r *TreeRenderer) Render(branches []ancestry.Branch, parents ancestry.ParentRelation, forest ancestry.Forest, roots []string) []string {
	if len(branches) == 0 {
		return nil
	}

	sorted := make([]ancestry.Branch, len(branches))
	copy(sorted, branches)
	ancestry.SortByName(sorted)

	var lines []string

	if len(roots) == 0 {
		if len(parents) > 0 {
			r.warnf("could not determine clear root(s) for branch tree, check for unusual branch structures")
			for _, branch := range sorted {
				lines = append(lines, r.label(branch.Name))
			}
			return lines
		}
		// No relations at all: every branch is its own root.
		for _, branch := range sorted {
			lines = append(lines, r.headerLine(branch.Name))
			lines = r.appendSubtree(lines, branch.Name, forest, "")
		}
		return lines
	}

	for _, root := range roots {
		lines = append(lines, r.headerLine(root))
		lines = r.appendSubtree(lines, root, forest, "")
	}

	return lines
}

// appendSubtree prints the children of parent, depth first. Child lists in
// the forest are already sorted.
func (r *TreeRenderer) appendSubtree(lines []string, parent string, forest ancestry.Forest, prefix string) []string {
	children := forest[parent]
	for i, child := range children {
		last := i == len(children)-1

		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		lines = append(lines, prefix+connector+r.label(child))
		lines = r.appendSubtree(lines, child, forest, childPrefix)
	}
	return lines
}

// headerLine formats a root-level branch name, prefixing non-mainline names
// with the highlighted detached marker.
func (r *TreeRenderer) headerLine(name string) string {
	if r.mainline[name] {
		return r.label(name)
	}
	return r.cfg.HighlightStart + r.cfg.DetachedMarker + r.cfg.HighlightReset + " " + r.label(name)
}

func (r *TreeRenderer) label(name string) string {
	if r.cfg.CurrentBranch != "" && name == r.cfg.CurrentBranch {
		return name + " *"
	}
	return name
}
