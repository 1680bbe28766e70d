package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/joechiboo/homecalc"
)

//go:embed *.md
var templates embed.FS

// loanPartials are the partials shared by the loan templates.
var loanPartials = map[string]string{
	"loan_plan":     "loan_plan.md",
	"loan_result":   "loan_result.md",
	"loan_schedule": "loan_schedule.md",
}

var funcs = template.FuncMap{
	"currency": currency,
	"percent":  percent,
	"percent1": func(p homecalc.Percent) string { return FormatPercentage(p, 1) },
}

// MortgageMarkdown renders a mortgage plan, its repayment figures and its
// payment schedule.
func MortgageMarkdown(plan homecalc.LoanPlan, r homecalc.MortgageResult) string {
	data := struct {
		Plan   homecalc.LoanPlan
		Result homecalc.MortgageResult
	}{plan, r}
	return renderTemplate("mortgage", "mortgage.md", loanPartials, data)
}

// ComparisonMarkdown renders two mortgage plans side by side and what the
// second one saves.
func ComparisonMarkdown(plan1, plan2 homecalc.LoanPlan, c homecalc.Comparison) string {
	data := struct {
		Plan1, Plan2 homecalc.LoanPlan
		Comparison   homecalc.Comparison
	}{plan1, plan2, c}
	return renderTemplate("comparison", "comparison.md", loanPartials, data)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
