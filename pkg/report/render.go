package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var funcs = template.FuncMap{
	"fmtFloat": func(v float64) string {
		return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
	},
	"fmtPct": func(v *float64) string {
		if v == nil {
			return "n/a"
		}
		return fmt.Sprintf("%.1f%%", *v)
	},
	"title": func(s string) string {
		if s == "" {
			return s
		}
		return strings.ToUpper(s[:1]) + s[1:]
	},
}

var reportTemplate = template.Must(template.New("report").Funcs(funcs).Parse(reportHTML))

// Render writes the HTML report.
func Render(w io.Writer, data ReportData) error {
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}

// WriteFile renders the report to <projectDir>/seo_report.html and returns
// the path.
func WriteFile(projectDir string, data ReportData) (string, error) {
	path := filepath.Join(projectDir, "seo_report.html")

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	if err := Render(file, data); err != nil {
		return "", err
	}
	return path, nil
}
