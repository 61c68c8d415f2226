package report

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"mcpregistry/internal/runner"
)

const pageStyle = `body{font-family:system-ui,sans-serif;margin:2rem;color:#222}
table{border-collapse:collapse;width:100%}
th,td{border:1px solid #ddd;padding:.4rem .6rem;text-align:left;vertical-align:top}
th{background:#f4f4f4}
.pass{color:#1a7f37}
.fail{color:#cf222e}
ul{margin:0;padding-left:1.2rem}`

// Page renders the HTML report for a run.
func Page(results runner.Results) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw("<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>MCP Server Validation</title><style>")
		p.raw(pageStyle)
		p.raw("</style></head><body>\n<h1>MCP Server Validation</h1>\n")
		if p.err != nil {
			return p.err
		}
		if err := summarySection(results).Render(ctx, w); err != nil {
			return err
		}
		if err := outcomesTable(results.Outcomes).Render(ctx, w); err != nil {
			return err
		}
		p.raw("</body></html>\n")
		return p.err
	})
}

func summarySection(results runner.Results) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw("<dl>\n")
		p.entry("Run", results.RunID)
		p.entry("Mode", string(results.Mode))
		p.entry("Target", results.Target)
		if results.Schema != "" {
			p.entry("Schema", results.Schema)
		}
		p.entry("Started", formatTime(results.StartedAt))
		p.entry("Duration", formatDuration(results))
		p.entry("Files", strconv.Itoa(results.Summary.Total))
		p.entry("Passed", strconv.Itoa(results.Summary.Passed))
		p.entry("Failed", strconv.Itoa(results.Summary.Failed))
		p.entry("Pass rate", formatPassRate(results.Summary)+"%")
		p.raw("</dl>\n")
		return p.err
	})
}

func outcomesTable(outcomes []runner.Outcome) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}
		if len(outcomes) == 0 {
			p.raw("<p>No server files were validated.</p>\n")
			return p.err
		}
		p.raw("<table>\n<thead><tr><th>File</th><th>Status</th><th>Issues</th></tr></thead>\n<tbody>\n")
		for _, outcome := range outcomes {
			status := outcome.Status()
			p.raw("<tr><td>")
			p.text(outcome.Name)
			p.raw("</td><td class=\"" + status + "\">" + status + "</td><td>")
			if len(outcome.Issues) > 0 {
				p.raw("<ul>")
				for _, issue := range outcome.Issues {
					p.raw("<li>")
					p.text(issue.Message)
					p.raw("</li>")
				}
				p.raw("</ul>")
			}
			p.raw("</td></tr>\n")
		}
		p.raw("</tbody>\n</table>\n")
		return p.err
	})
}

// printer writes markup and stops at the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) text(s string) {
	p.raw(templ.EscapeString(s))
}

func (p *printer) entry(term, value string) {
	p.raw("<dt>")
	p.text(term)
	p.raw("</dt><dd>")
	p.text(value)
	p.raw("</dd>\n")
}
