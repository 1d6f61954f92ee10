package format

import (
	"fmt"

	"github.com/open-cli-collective/cheetah-fmt/internal/batch"
	"github.com/open-cli-collective/cheetah-fmt/internal/view"
)

const maxDetailWidth = 60

type report struct {
	Results []batch.Result `json:"results"`
	Summary batch.Summary  `json:"summary"`
}

func renderResults(r *view.Renderer, results []batch.Result, summary batch.Summary) error {
	switch r.Format() {
	case view.FormatJSON:
		if results == nil {
			results = []batch.Result{}
		}
		return r.RenderJSON(report{Results: results, Summary: summary})

	case view.FormatPlain:
		rows := make([][]string, 0, len(results))
		for _, res := range results {
			rows = append(rows, []string{string(res.Status), res.Source, res.Target, view.Truncate(res.Error, maxDetailWidth)})
		}
		r.RenderTable([]string{"STATUS", "SOURCE", "TARGET", "DETAIL"}, rows)
		return nil
	}

	for _, res := range results {
		switch res.Status {
		case batch.StatusFormatted:
			r.Success(res.Message())
		case batch.StatusUnchanged, batch.StatusSkipped:
			r.Info(res.Message())
		case batch.StatusChanged:
			r.Error(res.Message())
			if res.Diff != "" {
				r.RenderDiff(res.Diff)
			}
		case batch.StatusFailed:
			r.Error(res.Message())
		}
	}

	if len(results) > 1 {
		r.RenderText(fmt.Sprintf("\n%d formatted, %d unchanged, %d not formatted, %d failed",
			summary.Formatted, summary.Unchanged, summary.Changed, summary.Failed))
	}
	return nil
}
