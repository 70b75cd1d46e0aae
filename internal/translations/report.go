package translations

import (
	"context"

	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zamoon6/greetsync/internal/greetings"
	"github.com/zamoon6/greetsync/internal/perf"
)

// Result is the outcome of updating the file of one language code.
type Result struct {
	Code   string
	Path   string
	Change Change
	Err    error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Report lists results in the order the languages were processed.
type Report []Result

func (report Report) Failed() Report {
	out := make(Report, 0)
	for _, result := range report {
		if !result.OK() {
			out = append(out, result)
		}
	}
	return out
}

func (report Report) Succeeded() Report {
	out := make(Report, 0)
	for _, result := range report {
		if result.OK() {
			out = append(out, result)
		}
	}
	return out
}

// UpdateAll runs UpdateFile once per language of table, in table order. A failing file never
// stops the run; its error is recorded in the returned report instead. observe, when not nil,
// is called with each result as soon as it is known.
func UpdateAll(ctx context.Context, fs afero.Fs, dir Dir, table *greetings.Table, opts UpdateOptions, observe func(Result)) Report {
	report := make(Report, 0, table.Len())

	for _, lang := range table.Languages() {
		path := dir.FilePath(lang.Code)
		langCtx, span := perf.StartSpan(ctx, "app.translations.language", attribute.String("lang", lang.Code))

		change, err := UpdateFile(langCtx, fs, path, lang.Messages, opts)
		result := Result{Code: lang.Code, Path: path, Change: change, Err: err}

		span.SetAttributes(attribute.Bool("success", result.OK()))
		span.End()

		report = append(report, result)
		if observe != nil {
			observe(result)
		}
	}

	return report
}
