// Package git is the go-git backed adapter behind the ancestry ports.
//
// It provides:
//   - Repository discovery and opening (bare repositories are rejected)
//   - Local branch enumeration with tip commits
//   - Merge-base queries implementing ancestry.Oracle
//
// This package should be the only place that talks to go-git.
package git
