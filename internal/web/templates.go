// Package web holds the HTML templates rendered by the page handlers.
package web

import (
	"embed"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	dateTimeLayout = "Jan 2, 2006 15:04"
	dateLayout     = "Jan 2, 2006"
)

// FuncMap is available to every template.
var FuncMap = template.FuncMap{
	"datetime": formatWith(dateTimeLayout),
	"date":     formatWith(dateLayout),
	"overdue":  overdue,
}

// Templates parses the embedded templates. Each page is registered under its
// file name, e.g. "task_detail.html".
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap).ParseFS(templateFS, "templates/*.html")
}

func formatWith(layout string) func(v any) string {
	return func(v any) string {
		switch t := v.(type) {
		case time.Time:
			if t.IsZero() {
				return ""
			}
			return t.Format(layout)
		case *time.Time:
			if t == nil || t.IsZero() {
				return ""
			}
			return t.Format(layout)
		default:
			return ""
		}
	}
}

// overdue is a template helper so pages don't need the current time passed in.
func overdue(task interface{ IsOverdue(time.Time) bool }) bool {
	return task.IsOverdue(time.Now())
}
