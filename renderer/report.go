package renderer

import (
	"strings"

	"github.com/etnz/payoff"
)

// reportView is the data model of the report templates.
type reportView struct {
	Summary  payoff.Summary
	Sections []strategySection
}

// strategySection is one ranked block of the report.
type strategySection struct {
	Title string // e.g. "AVALANCHE_METHOD"
	Loans []payoff.DerivedLoan
}

// Report renders the analysis in the reference plain-text layout: a summary
// block, then one block per strategy listing the loans in priority order.
//
// The ratio and balanced-score fields are never rendered, so their non-finite
// values for zero-principal loans cannot leak into the output.
func Report(r *payoff.StrategyReport) string {
	view := reportView{Summary: r.Summary}
	for _, s := range payoff.StrategyOrder {
		view.Sections = append(view.Sections, strategySection{
			Title: strings.ToUpper(string(s)),
			Loans: r.Strategies[s],
		})
	}

	partials := map[string]string{
		"report_summary":  "report_summary.tmpl",
		"report_strategy": "report_strategy.tmpl",
	}
	return renderTemplate("report", "report.tmpl", partials, view)
}
