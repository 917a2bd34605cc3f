package ancestry

import "fmt"

// Resolve finds, for every branch, the nearest other branch whose tip is an
// ancestor of its own tip. Branch tips form a partial order under commit
// reachability; the nearest ancestor is the maximal element among the
// branches that are ancestors of the child, found with a linear scan.
//
// When two candidate ancestors have diverged from each other (no reachability
// either way between their tips), neither is closer in any meaningful sense.
// The first candidate encountered in sorted-name order wins. That tie-break
// is a documented policy, not an accident; callers must not rely on it
// picking the "true" nearest ancestor when the history is ambiguous.
func Resolve(branches []Branch, oracle Oracle) (ParentRelation, error) {
	sorted := make([]Branch, len(branches))
	copy(sorted, branches)
	SortByName(sorted)

	parents := make(ParentRelation)

	for _, child := range sorted {
		var best *Branch

		for i := range sorted {
			candidate := &sorted[i]

			// A branch is never its own parent, and two branches sharing a
			// tip are never in an ancestor relation with each other.
			if candidate.Name == child.Name || candidate.Tip == child.Tip {
				continue
			}

			base, ok, err := oracle.CommonAncestor(candidate.Tip, child.Tip)
			if err != nil {
				return nil, fmt.Errorf("resolving ancestor of %s: %w", child.Name, err)
			}
			if !ok || base != candidate.Tip {
				// Unrelated, or candidate is not an ancestor of child.
				continue
			}

			if best == nil {
				best = candidate
				continue
			}
			if best.Tip == candidate.Tip {
				continue
			}

			// Both best and candidate are ancestors of child. If best is in
			// turn an ancestor of candidate, candidate is closer to the tip.
			between, ok, err := oracle.CommonAncestor(best.Tip, candidate.Tip)
			if err != nil {
				return nil, fmt.Errorf("comparing ancestors of %s: %w", child.Name, err)
			}
			if ok && between == best.Tip {
				best = candidate
			}
		}

		if best != nil {
			parents[child.Name] = best.Name
		}
	}

	return parents, nil
}
