package ancestry

import "sort"

// BuildForest turns the parent relation into a parent-to-children adjacency
// map and returns it together with the roots: branches with no discovered
// parent. Child lists and roots are sorted by name so output is stable
// regardless of enumeration order.
func BuildForest(branches []Branch, parents ParentRelation) (Forest, []string) {
	forest := make(Forest)
	for child, parent := range parents {
		forest[parent] = append(forest[parent], child)
	}
	for _, children := range forest {
		sort.Strings(children)
	}

	var roots []string
	for _, branch := range branches {
		if _, hasParent := parents[branch.Name]; !hasParent {
			roots = append(roots, branch.Name)
		}
	}
	sort.Strings(roots)

	return forest, roots
}
