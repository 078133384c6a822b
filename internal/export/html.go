// Package export renders a deck to a standalone HTML document.
package export

import (
	"bytes"
	"html/template"
	"io"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/deckkeeper/internal/deck"
)

// Info is the header block of an export.
type Info struct {
	Title  string
	Author string
	Date   string
}

var page = template.Must(template.New("deck").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Info.Title}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 40px; color: #333; }
h1 { color: #C5A059; border-bottom: 2px solid #C5A059; padding-bottom: 10px; }
h2 { color: #666; margin-top: 30px; }
.slide { page-break-after: always; padding: 20px; border: 1px solid #ddd; margin-bottom: 20px; }
.metadata { font-size: 12px; color: #999; margin-bottom: 10px; }
blockquote { border-left: 3px solid #C5A059; padding-left: 15px; font-style: italic; }
p { line-height: 1.6; }
</style>
</head>
<body>
<h1>{{.Info.Title}}</h1>
{{- with .Subtitle}}
<p><em>{{.}}</em></p>
{{- end}}
<p><strong>Autor:</strong> {{.Info.Author}}</p>
<p><strong>Data:</strong> {{.Info.Date}}</p>
<p><strong>Total de Slides:</strong> {{len .Slides}}</p>
<hr>
{{- range $i, $s := .Slides}}
<div class="slide">
<div class="metadata">Slide {{inc $i}} - Layout: {{$s.Layout}}</div>
<h2>{{$s.Content.Title}}</h2>
<p><strong>Seção:</strong> {{$s.Content.Chapter}}</p>
{{- range $s.Content.Text}}
<p>{{.}}</p>
{{- end}}
{{- with $s.Content.Highlight}}
<blockquote>{{.}}</blockquote>
{{- end}}
{{- with $s.Content.Timeline}}
<ol class="timeline">
{{- range .}}
<li><strong>{{.Year}}</strong> {{.Label}}: {{.Desc}}</li>
{{- end}}
</ol>
{{- end}}
{{- with $s.Content.Orbit}}
<ul class="orbit">
<li>{{.Center}}</li>
<li>{{.Orbit1}} ({{.Label1}})</li>
<li>{{.Orbit2}} ({{.Label2}})</li>
</ul>
{{- end}}
{{- with $s.Content.Chart}}
<table class="chart">
<caption>{{.Title}}</caption>
<tr><th>{{.LeftLabel}}</th><th>{{.RightLabel}}</th></tr>
<tr><td>{{.Option1}}</td><td>{{.Option2}}</td></tr>
</table>
{{- end}}
</div>
{{- end}}
</body>
</html>
`))

// HTML writes doc to w. All text is escaped.
func HTML(w io.Writer, doc deck.Document, info Info) error {
	return page.Execute(w, struct {
		Info     Info
		Subtitle string
		Slides   []deck.Slide
	}{Info: info, Subtitle: doc.Meta.Subtitle, Slides: doc.Slides})
}

// Render returns the HTML export as bytes.
func Render(doc deck.Document, info Info) ([]byte, error) {
	var buf bytes.Buffer
	if err := HTML(&buf, doc, info); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var spaces = regexp.MustCompile(`\s+`)

// FileName derives the download name from a title.
func FileName(title string) string {
	name := spaces.ReplaceAllString(strings.TrimSpace(title), "_")
	if name == "" {
		name = "apresentacao"
	}
	return name + ".html"
}
