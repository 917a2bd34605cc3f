package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"twig.dev/twig/internal/actions"
	"twig.dev/twig/internal/context"
	"twig.dev/twig/internal/git"
	"twig.dev/twig/internal/output"
)

// NewRootCmd creates the root cobra command. Running twig with no arguments
// prints the branch ancestry tree of the enclosing repository.
func NewRootCmd(version, commit, date string) *cobra.Command {
	var (
		noColor bool
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "twig",
		Short: "Twig prints the ancestry tree of your local branches",
		Long: `Twig infers which local branch each branch was cut from and prints the
result as an indented tree. Roots that are not a conventional mainline
branch (main, master, develop, dev, local-dev) are marked as detached.`,
		Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.WarnLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			repo, err := git.Discover(logger)
			if err != nil {
				return err
			}

			cfg := output.DefaultRenderConfig()
			if noColor || !isTerminal(os.Stdout) {
				cfg = output.PlainRenderConfig()
			}
			cfg.CurrentBranch = repo.CurrentBranch()

			ctx := context.NewContext(repo, logger)
			return actions.Tree(actions.TreeOptions{Render: cfg}, ctx)
		},
	}

	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable the detached-root highlight")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log resolution decisions to stderr")

	return rootCmd
}

// newLogger creates the stderr diagnostic logger.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level: level,
	})
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
