// Package cli dispatches the sys verbs to the collector and reporter.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	kingpin "github.com/alecthomas/kingpin/v2"
	"github.com/google/uuid"

	"horizonx-sys/internal/domain"
	"horizonx-sys/internal/logger"
	"horizonx-sys/internal/report"
)

const (
	appName = "sys"
	appDesc = "Report host identity and live resource utilization."

	ExitOK      = 0
	ExitFailure = 1
)

type Telemetry interface {
	CollectIdentity(ctx context.Context) domain.HostIdentity
	CollectResources(ctx context.Context) (domain.ResourceSnapshot, error)
}

type App struct {
	telemetry Telemetry
	log       logger.Logger
	stdout    io.Writer
	stderr    io.Writer
	version   string
	getwd     func() (string, error)
}

type commands struct {
	info   *kingpin.CmdClause
	status *kingpin.CmdClause
	output *string
}

func New(telemetry Telemetry, log logger.Logger, stdout, stderr io.Writer, version string) *App {
	return &App{
		telemetry: telemetry,
		log:       log,
		stdout:    stdout,
		stderr:    stderr,
		version:   version,
		getwd:     os.Getwd,
	}
}

// Run executes one invocation and returns the process exit code. The first
// argument is matched case-insensitively. Unknown commands print the usage
// text and still exit with ExitOK.
func (a *App) Run(ctx context.Context, args []string) int {
	log := a.log.With("run_id", uuid.NewString())
	a.recordInvocation(log, args)

	if len(args) == 0 {
		return a.help()
	}

	args = append([]string{strings.ToLower(args[0])}, args[1:]...)

	switch {
	case args[0] == "help" || hasFlag(args, "-h", "--help"):
		return a.help()
	case hasFlag(args, "-v", "--version"):
		fmt.Fprintf(a.stdout, "%s %s\n", appName, a.version)
		return ExitOK
	}

	app, cmds := a.application()
	command, err := app.Parse(args)
	if errors.Is(err, kingpin.ErrCommandNotSpecified) {
		// kingpin has already written the usage text
		return ExitOK
	}
	if err != nil {
		log.Debug("unknown command", "command", args[0], "error", err)
		return a.help()
	}

	r := report.New(a.stdout, report.Format(*cmds.output))

	switch command {
	case cmds.info.FullCommand():
		return a.info(ctx, log, r)
	case cmds.status.FullCommand():
		return a.status(ctx, log, r)
	default:
		log.Warn("unhandled command", "command", command)
		return a.help()
	}
}

func (a *App) info(ctx context.Context, log logger.Logger, r *report.Reporter) int {
	id := a.telemetry.CollectIdentity(ctx)

	if err := r.Identity(id); err != nil {
		return a.fail(log, "failed to write identity", err)
	}

	return ExitOK
}

func (a *App) status(ctx context.Context, log logger.Logger, r *report.Reporter) int {
	snapshot, err := a.telemetry.CollectResources(ctx)
	if err != nil {
		return a.fail(log, "failed to collect resources", err)
	}

	if err := r.Status(snapshot); err != nil {
		return a.fail(log, "failed to write status", err)
	}

	return ExitOK
}

func (a *App) fail(log logger.Logger, msg string, err error) int {
	log.Debug(msg, "error", err)
	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	return ExitFailure
}

func (a *App) help() int {
	app, _ := a.application()
	app.Usage(nil)
	return ExitOK
}

func (a *App) application() (*kingpin.Application, *commands) {
	app := kingpin.New(appName, appDesc)
	app.UsageWriter(a.stdout)
	app.ErrorWriter(a.stderr)
	app.Terminate(func(int) {})
	app.UsageTemplate(kingpin.CompactUsageTemplate)
	app.Version(a.version)
	app.VersionFlag.Short('v')
	app.HelpFlag.Short('h')

	cmds := &commands{
		output: app.Flag("output", "Output format.").Short('o').Default(string(report.FormatText)).Enum(report.Formats...),
		info:   app.Command("info", "List system information."),
		status: app.Command("status", "Check system status."),
	}

	return app, cmds
}

func hasFlag(args []string, names ...string) bool {
	for _, arg := range args {
		for _, name := range names {
			if arg == name {
				return true
			}
		}
	}
	return false
}
