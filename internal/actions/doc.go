// Package actions provides the high-level logic behind CLI commands.
//
// Actions accept a context.Context bundle (repository, output, logger) and
// orchestrate the ancestry, git, and output packages. They hold no state of
// their own; every invocation recomputes from the repository.
package actions
