package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mvp-joe/minigrep/internal/config"
	"github.com/mvp-joe/minigrep/internal/document"
)

// env holds the process-level dependencies of a command.
type env struct {
	fs         afero.Fs
	stdout     io.Writer
	stderr     io.Writer
	searchDirs func() []string
}

// rootFlags are the values bound to the root command's flags.
type rootFlags struct {
	cfgFile     string
	verbose     bool
	ignoreCase  bool
	lineNumbers bool
	countOnly   bool
}

// newRootCmd builds the minigrep command.
func newRootCmd(e env) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "minigrep [flags] <query> <file_path>",
		Short: "Print the lines of a file that contain a query",
		Long: `minigrep reads a file and prints every line that contains the query,
in the order the lines appear in the file.

Matching is a plain substring test. Set IGNORE_CASE (to any value) or pass
--ignore-case to ignore letter case; matched lines are always printed as
they appear in the file.

Settings can also come from .minigrep.yaml in the working or home directory
and from MINIGREP_* environment variables.

Exit status is 0 when the search ran, whether or not anything matched,
1 when the file could not be read and 2 for usage errors.

Examples:
  # Case-sensitive search
  minigrep duct poem.txt

  # Ignore case through the environment
  IGNORE_CASE=1 minigrep to poem.txt

  # Ignore case with a flag and show line numbers
  minigrep -i -n body poem.txt

  # Count matching lines
  minigrep --count the poem.txt
`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, flags, e)
		},
	}

	cmd.SetOut(e.stdout)
	cmd.SetErr(e.stderr)
	cmd.Version = Version
	cmd.SetVersionTemplate(versionTemplate())

	cmd.Flags().StringVar(&flags.cfgFile, "config", "", "config file (default is .minigrep.yaml in the working or home directory)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	cmd.Flags().BoolVarP(&flags.ignoreCase, "ignore-case", "i", false, "ignore letter case when matching")
	cmd.Flags().BoolVarP(&flags.lineNumbers, "line-number", "n", false, "prefix each matching line with its line number")
	cmd.Flags().BoolVarP(&flags.countOnly, "count", "c", false, "print only the number of matching lines")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string, flags *rootFlags, e env) error {
	// Argument count is checked before any settings file is read.
	if len(args) != config.ExpectedArgs {
		return &StageError{
			Stage: StageConfiguring,
			Err:   &config.MissingArgumentsError{Expected: config.ExpectedArgs, Actual: len(args)},
		}
	}

	loader := config.NewLoader(config.LoaderOptions{
		ConfigFile: flags.cfgFile,
		SearchDirs: e.searchDirs(),
		Flags:      cmd.Flags(),
	})
	settings, err := loader.Load()
	if err != nil {
		return &StageError{Stage: StageConfiguring, Err: err}
	}

	logger, closer, err := newLogger(settings.Log, flags.verbose, e.stderr)
	if err != nil {
		return &StageError{Stage: StageConfiguring, Err: err}
	}
	defer closer.Close()

	runner := NewRunner(settings, document.NewLoader(e.fs), e.stdout, logger)
	return runner.Run(args)
}

// execute runs cmd with args and reports failures on stderr.
func execute(cmd *cobra.Command, args []string, stderr io.Writer) int {
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "minigrep: %v\n", err)
		return ExitCode(err)
	}

	return ExitOK
}

// Execute runs minigrep with the process arguments and returns the exit status.
// This is called by main.main(), which is the only place the process exits.
func Execute() int {
	e := env{
		fs:         afero.NewOsFs(),
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		searchDirs: config.DefaultSearchDirs,
	}
	return execute(newRootCmd(e), os.Args[1:], e.stderr)
}
