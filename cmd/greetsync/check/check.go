package check

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zamoon6/greetsync/cmd/greetsync/internal/flags"
	"github.com/zamoon6/greetsync/internal/constants"
	"github.com/zamoon6/greetsync/internal/greetings"
	"github.com/zamoon6/greetsync/internal/i18n"
	"github.com/zamoon6/greetsync/internal/logger"
	"github.com/zamoon6/greetsync/internal/perf"
	"github.com/zamoon6/greetsync/internal/translations"
	"github.com/zamoon6/greetsync/internal/tui"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Aliases: []string{"c"},
		Short:   i18n.T("cmd.check.short"),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx, span := perf.StartSpan(flags.Context(cmd), "app.command.check")
			defer func() {
				span.SetAttributes(attribute.Bool("success", err == nil))
				span.End()
			}()

			common, err := flags.ReadCommon(cmd)
			if err != nil {
				return err
			}

			deps := checkDeps{
				fs:       afero.NewOsFs(),
				logger:   logger.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), common.Quiet, common.Debug),
				colorize: tui.ShouldColorize(cmd.OutOrStdout()),
			}

			_, err = runCheck(ctx, checkOptions{
				Dir:           common.Dir,
				Field:         common.Field,
				GreetingsPath: common.GreetingsPath,
			}, deps)
			return err
		},
	}
}

type checkOptions struct {
	Dir           string
	Field         string
	GreetingsPath string
}

type checkDeps struct {
	fs       afero.Fs
	logger   *logger.Logger
	colorize bool
}

// NotUpToDateError reports how many translation files failed the check.
type NotUpToDateError struct {
	Count int
}

func (e *NotUpToDateError) Error() string {
	return fmt.Sprintf("%d translation file(s) are not up to date", e.Count)
}

func runCheck(ctx context.Context, opts checkOptions, deps checkDeps) ([]translations.Inspection, error) {
	table, err := greetings.Resolve(deps.fs, opts.GreetingsPath)
	if err != nil {
		return nil, err
	}

	field := opts.Field
	if field == "" {
		field = constants.DefaultMessagesField
	}
	dir := translations.NewDir(opts.Dir)

	inspections := translations.InspectAll(ctx, deps.fs, dir, table, field, func(inspection translations.Inspection) {
		printInspection(deps, dir, field, inspection)
	})

	failed := 0
	for _, inspection := range inspections {
		if inspection.Status != translations.StatusOK {
			failed++
		}
	}

	deps.logger.Log("", true)
	if failed == 0 {
		deps.logger.Log(i18n.T("cmd.check.done", i18n.Tvars{
			Data: &i18n.TData{"icon": tui.SuccessIcon(deps.colorize)},
		}), true)
		return inspections, nil
	}

	deps.logger.Log(i18n.T("cmd.check.failed", i18n.Tvars{Count: failed}), true)
	return inspections, &NotUpToDateError{Count: failed}
}

func printInspection(deps checkDeps, dir translations.Dir, field string, inspection translations.Inspection) {
	data := i18n.TData{
		"icon":  tui.ErrorIcon(deps.colorize),
		"file":  dir.FileName(inspection.Code),
		"field": field,
	}

	switch inspection.Status {
	case translations.StatusOK:
		data["icon"] = tui.SuccessIcon(deps.colorize)
		deps.logger.Log(i18n.T("cmd.check.ok", i18n.Tvars{Data: &data}), false)
	case translations.StatusMissingFile:
		deps.logger.Log(i18n.T("cmd.check.missing_file", i18n.Tvars{Data: &data}), true)
	case translations.StatusInvalid:
		data["error"] = inspection.Err.Error()
		deps.logger.Log(i18n.T("cmd.check.invalid", i18n.Tvars{Data: &data}), true)
	case translations.StatusFieldMissing:
		data["icon"] = tui.WarningIcon(deps.colorize)
		deps.logger.Log(i18n.T("cmd.check.field_missing", i18n.Tvars{Data: &data}), true)
	case translations.StatusOutOfDate:
		data["icon"] = tui.WarningIcon(deps.colorize)
		deps.logger.Log(i18n.T("cmd.check.out_of_date", i18n.Tvars{Data: &data}), true)
	}
}
