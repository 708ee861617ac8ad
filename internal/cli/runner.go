package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/mvp-joe/minigrep/internal/config"
	"github.com/mvp-joe/minigrep/internal/document"
	"github.com/mvp-joe/minigrep/internal/search"
)

// Stage is a step of a search run.
type Stage int

const (
	StageStart Stage = iota
	StageConfiguring
	StageLoading
	StageSearching
	StageReporting
	StageDone
	StageAborted
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageConfiguring:
		return "configuring"
	case StageLoading:
		return "loading"
	case StageSearching:
		return "searching"
	case StageReporting:
		return "reporting"
	case StageDone:
		return "done"
	case StageAborted:
		return "aborted"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Exit codes returned by Execute.
const (
	ExitOK          = 0
	ExitFailure     = 1 // file could not be read, output could not be written, or the runner was reused
	ExitConfigError = 2 // wrong arguments, bad flags or invalid settings
)

// ErrRunnerUsed indicates Run was called on a runner that already ran.
var ErrRunnerUsed = errors.New("runner already used")

// StageError records the stage a run failed in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	switch e.Stage {
	case StageConfiguring:
		if errors.Is(e.Err, config.ErrMissingArguments) {
			return fmt.Sprintf("problem parsing arguments: %v", e.Err)
		}
		return fmt.Sprintf("problem loading settings: %v", e.Err)
	case StageLoading:
		return fmt.Sprintf("problem reading file: %v", e.Err)
	case StageReporting:
		return fmt.Sprintf("problem writing output: %v", e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by a run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var stageErr *StageError
	if errors.As(err, &stageErr) && stageErr.Stage != StageConfiguring {
		return ExitFailure
	}

	// Everything else is a usage problem: arguments, flags or settings.
	return ExitConfigError
}

// Runner executes one search: resolve, load, search, report.
// A Runner is single-use; stages are never revisited.
type Runner struct {
	settings *config.Settings
	loader   *document.Loader
	reporter *Reporter
	log      *logrus.Logger
	stage    Stage
}

// NewRunner creates a Runner. A nil settings value means config.Default()
// and a nil logger means the logrus standard logger.
func NewRunner(settings *config.Settings, loader *document.Loader, stdout io.Writer, log *logrus.Logger) *Runner {
	if settings == nil {
		settings = config.Default()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Runner{
		settings: settings,
		loader:   loader,
		reporter: NewReporter(stdout),
		log:      log,
		stage:    StageStart,
	}
}

// Stage returns the stage the runner is in.
func (r *Runner) Stage() Stage {
	return r.stage
}

// Run searches the file named in args for the query in args.
// Nothing is written to the output unless the file was loaded and searched.
func (r *Runner) Run(args []string) error {
	if r.stage != StageStart {
		return &StageError{Stage: r.stage, Err: ErrRunnerUsed}
	}

	r.enter(StageConfiguring)
	cfg, err := config.Resolve(args, r.settings)
	if err != nil {
		return r.abort(err)
	}
	r.log.WithFields(logrus.Fields{
		"query":       cfg.Query,
		"file":        cfg.FilePath,
		"ignore_case": cfg.IgnoreCase,
	}).Debug("Resolved search")

	r.enter(StageLoading)
	doc, err := r.loader.Load(cfg.FilePath)
	if err != nil {
		return r.abort(err)
	}
	if r.log.IsLevelEnabled(logrus.DebugLevel) {
		r.log.WithFields(logrus.Fields{
			"file":  doc.Path(),
			"bytes": doc.Len(),
			"lines": search.CountLines(doc.Text()),
		}).Debug("Loaded document")
	}

	r.enter(StageSearching)
	matches := search.Find(cfg.Query, doc.Text(), cfg.IgnoreCase)
	r.log.WithField("matches", len(matches)).Debug("Search complete")

	// Matches are views into doc; report them while doc is still in scope.
	r.enter(StageReporting)
	if err := r.reporter.Report(matches, cfg); err != nil {
		return r.abort(err)
	}

	r.enter(StageDone)
	return nil
}

func (r *Runner) enter(stage Stage) {
	r.log.WithField("from", r.stage.String()).Debugf("Entering %s", stage)
	r.stage = stage
}

func (r *Runner) abort(err error) error {
	failed := r.stage
	r.log.WithError(err).WithField("stage", failed.String()).Debug("Run aborted")
	r.stage = StageAborted
	return &StageError{Stage: failed, Err: err}
}
