// Package ancestry infers the parent/child structure of a set of branches.
//
// Given the local branches and a merge-base oracle, it determines for each
// branch the nearest other branch it descends from, then assembles the
// relation into a forest:
//   - Resolve: pairwise merge-base scan for the nearest ancestor branch
//   - BuildForest: parent relation to sorted adjacency map plus roots
//
// The package has no I/O of its own. The backend is injected through the
// Oracle interface so the algorithm can be tested against an in-memory
// commit graph.
package ancestry
