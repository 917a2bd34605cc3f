package context

import (
	"github.com/charmbracelet/log"

	"twig.dev/twig/internal/git"
	"twig.dev/twig/internal/output"
)

// Context provides access to the repository and output streams for actions
type Context struct {
	Repo  *git.Repository
	Splog *output.Splog
	Log   *log.Logger
}

// NewContext creates a new context
func NewContext(repo *git.Repository, logger *log.Logger) *Context {
	return &Context{
		Repo:  repo,
		Splog: output.NewSplog(),
		Log:   logger,
	}
}
