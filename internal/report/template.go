// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import "html/template"

// digestTmpl is the HTML digest document. Styles are inlined because mail
// clients strip <style> blocks inconsistently.
var digestTmpl = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>arXiv digest {{.Today}}</title>
</head>
<body style="font-family: -apple-system, 'Segoe UI', Helvetica, Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 16px; color: #1a1a1a;">
<h1 style="font-size: 22px; border-bottom: 2px solid #b31b1b; padding-bottom: 8px;">arXiv digest &middot; {{.Today}}</h1>
<p style="color: #555;">
Window: {{.DateRange}}<br>
Keywords: {{.Keywords}}<br>
Papers: {{.TotalPapers}}
</p>
{{range .Groups}}
<h2 style="font-size: 18px; background: #f6f6f6; padding: 6px 10px;">{{.Term}} ({{len .Papers}})</h2>
{{if .Papers}}
{{range .Papers}}
<div style="margin: 0 0 20px 0; padding: 10px 12px; border-left: 3px solid #b31b1b;">
<p style="margin: 0 0 4px 0;"><a href="{{.SourceURL}}" style="font-weight: bold; color: #b31b1b; text-decoration: none;">{{.Title}}</a></p>
<p style="margin: 0 0 4px 0; font-size: 13px; color: #555;">{{.Authors}}</p>
<p style="margin: 0 0 4px 0; font-size: 12px; color: #888;">{{.Published}} &middot; {{.Categories}}{{if .Comment}} &middot; {{.Comment}}{{end}}</p>
{{if .ContributionSummary}}<p style="margin: 6px 0 4px 0;"><b>Contribution:</b> {{.ContributionSummary}}</p>{{end}}
{{if .TranslatedSummary}}<p style="margin: 4px 0;">{{.TranslatedSummary}}</p>{{end}}
<details><summary style="font-size: 12px; color: #888; cursor: pointer;">Original abstract</summary>
<p style="font-size: 13px; color: #444;">{{.Abstract}}</p></details>
</div>
{{end}}
{{else}}
<p style="color: #888;">No papers in this window.</p>
{{end}}
{{end}}
<p style="font-size: 12px; color: #aaa; border-top: 1px solid #eee; padding-top: 8px;">Generated by arxiv-digest</p>
</body>
</html>
`))
