package update

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zamoon6/greetsync/cmd/greetsync/internal/flags"
	"github.com/zamoon6/greetsync/internal/greetings"
	"github.com/zamoon6/greetsync/internal/i18n"
	"github.com/zamoon6/greetsync/internal/logger"
	"github.com/zamoon6/greetsync/internal/perf"
	"github.com/zamoon6/greetsync/internal/translations"
	"github.com/zamoon6/greetsync/internal/tui"
)

const (
	flagDryRun        = "dry-run"
	flagCreateMissing = "create-missing"
	flagStrict        = "strict"
)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "update",
		Aliases: []string{"u"},
		Short:   i18n.T("cmd.update.short"),
		Long:    i18n.T("cmd.update.long"),
		Args:    cobra.NoArgs,
		RunE:    RunE,
	}

	cmd.Flags().BoolP(flagDryRun, "n", false, i18n.T("cmd.update.flag.dry_run"))
	cmd.Flags().Bool(flagCreateMissing, false, i18n.T("cmd.update.flag.create_missing"))
	cmd.Flags().Bool(flagStrict, false, i18n.T("cmd.update.flag.strict"))

	return cmd
}

// RunE is shared with the root command, which runs an update with default options.
func RunE(cmd *cobra.Command, _ []string) (err error) {
	ctx, span := perf.StartSpan(flags.Context(cmd), "app.command.update")
	defer func() {
		span.SetAttributes(attribute.Bool("success", err == nil))
		span.End()
	}()

	common, err := flags.ReadCommon(cmd)
	if err != nil {
		return err
	}
	dryRun, err := flags.OptionalBool(cmd, flagDryRun)
	if err != nil {
		return err
	}
	createMissing, err := flags.OptionalBool(cmd, flagCreateMissing)
	if err != nil {
		return err
	}
	strict, err := flags.OptionalBool(cmd, flagStrict)
	if err != nil {
		return err
	}

	opts := updateOptions{
		Dir:           common.Dir,
		Field:         common.Field,
		GreetingsPath: common.GreetingsPath,
		DryRun:        dryRun,
		CreateMissing: createMissing,
		Strict:        strict,
	}
	deps := updateDeps{
		fs:       afero.NewOsFs(),
		logger:   logger.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), common.Quiet, common.Debug),
		colorize: tui.ShouldColorize(cmd.OutOrStdout()),
	}

	_, err = runUpdate(ctx, opts, deps)
	return err
}

type updateOptions struct {
	Dir           string
	Field         string
	GreetingsPath string
	DryRun        bool
	CreateMissing bool
	Strict        bool
}

type updateDeps struct {
	fs       afero.Fs
	logger   *logger.Logger
	colorize bool
}

// FailedFilesError is returned in strict mode when at least one translation file
// could not be updated.
type FailedFilesError struct {
	Count int
}

func (e *FailedFilesError) Error() string {
	return fmt.Sprintf("%d translation file(s) could not be updated", e.Count)
}

func runUpdate(ctx context.Context, opts updateOptions, deps updateDeps) (translations.Report, error) {
	table, err := greetings.Resolve(deps.fs, opts.GreetingsPath)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		deps.logger.Log(i18n.T("cmd.update.dry_run"), true)
	}

	dir := translations.NewDir(opts.Dir)
	deps.logger.Debugf("Updating %d languages (%s) in %s", table.Len(), strings.Join(table.Codes(), ", "), dir.Path)

	report := translations.UpdateAll(ctx, deps.fs, dir, table, translations.UpdateOptions{
		Field:         opts.Field,
		CreateMissing: opts.CreateMissing,
		DryRun:        opts.DryRun,
	}, func(result translations.Result) {
		printResult(deps, dir, opts.DryRun, result)
	})

	deps.logger.Log("", true)
	deps.logger.Log(i18n.T("cmd.update.done", i18n.Tvars{
		Data: &i18n.TData{"icon": tui.SuccessIcon(deps.colorize)},
	}), true)

	failed := len(report.Failed())
	if failed == 0 {
		return report, nil
	}

	deps.logger.Error(i18n.T("cmd.update.failed", i18n.Tvars{Count: failed}))
	if opts.Strict {
		return report, &FailedFilesError{Count: failed}
	}
	return report, nil
}

func printResult(deps updateDeps, dir translations.Dir, dryRun bool, result translations.Result) {
	file := dir.FileName(result.Code)

	if !result.OK() {
		deps.logger.Log(i18n.T("cmd.update.error", i18n.Tvars{
			Data: &i18n.TData{
				"icon":  tui.ErrorIcon(deps.colorize),
				"file":  file,
				"error": result.Err.Error(),
			},
		}), true)
		return
	}

	deps.logger.Debugf("%s: %d bytes", result.Path, result.Change.Size)

	unchanged := i18n.T("cmd.update.unchanged", i18n.Tvars{
		Data: &i18n.TData{"file": file},
	})
	if deps.colorize {
		unchanged = tui.MutedStyle.Render(unchanged)
	}

	key := "cmd.update.success"
	switch {
	case dryRun && result.Change.Unchanged:
		deps.logger.Log(unchanged, false)
		return
	case dryRun:
		key = "cmd.update.would_update"
	case result.Change.Created:
		key = "cmd.update.created"
	case result.Change.Unchanged:
		deps.logger.Debug(unchanged)
	}

	deps.logger.Log(i18n.T(key, i18n.Tvars{
		Data: &i18n.TData{
			"icon": tui.SuccessIcon(deps.colorize),
			"file": file,
		},
	}), false)
}
