package report

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"MediaMap/internal/curation"
	"MediaMap/internal/domain"
	"MediaMap/internal/graph"
	"MediaMap/internal/view"
)

const page = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="sort-mode">Sorting by {{.ModeLabel}}</p>
{{range .Articles}}
<article class="article" id="article-{{.ID}}" data-score="{{.Score}}">
  <header>
    <a class="headline" href="{{.URL}}"><span class="source">{{.Source}}</span> | <strong class="title">{{.Title}}</strong></a>
    <span class="score">Score: {{.Score}}</span>
  </header>
  <ul class="sentiment">
  {{range .Sentiment}}<li data-label="{{.Label}}">{{.Title}}: {{.Value}}</li>
  {{end}}<li class="direct">Direct: {{.Direct}}</li>
  </ul>
  <p class="entities">{{join .Entities ", "}}</p>
  <p class="concepts">{{join .Concepts " ~ "}}</p>
  {{if .Graph}}
  <table class="graph">
  {{range .Graph.Edges}}<tr class="edge"><td class="from">{{.From}}</td><td class="verb">{{.Label}}</td><td class="to">{{.To}}</td></tr>
  {{end}}</table>
  {{else}}
  <ol class="triples">
  {{range .Triples}}<li class="triple"><span class="subject">{{.Subject}}</span> <span class="verb">{{.Verb}}</span> <span class="object">{{.Object}}</span></li>
  {{end}}</ol>
  {{end}}
</article>
{{end}}
</body>
</html>
`

var pageTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(page))

type sentimentRow struct {
	Label string
	Title string
	Value float64
}

type articleView struct {
	ID        string
	Score     float64
	URL       template.URL
	Source    string
	Title     string
	Sentiment []sentimentRow
	Direct    float64
	Entities  []string
	Concepts  []string
	Triples   []domain.Triple
	Graph     *graph.Graph
}

type pageView struct {
	Title     string
	ModeLabel string
	Articles  []articleView
}

// Renderer writes the curated dataset as a static HTML digest.
type Renderer struct {
	title string
}

// NewRenderer builds a renderer using title as page heading.
func NewRenderer(title string) *Renderer {
	if strings.TrimSpace(title) == "" {
		title = "Media Map"
	}
	return &Renderer{title: title}
}

// Render writes articles in the order given by state. The selected article, if
// any, is shown as an edge table instead of its triple list.
func (r *Renderer) Render(w io.Writer, articles []domain.ProcessedArticle, state view.State) error {
	ordered := curation.Order(articles, state.Mode)

	data := pageView{
		Title:     r.title,
		ModeLabel: state.Mode.Label(),
		Articles:  make([]articleView, 0, len(ordered)),
	}
	for _, a := range ordered {
		av := articleView{
			ID:        a.ID,
			Score:     curation.Round(a.Score, 3),
			URL:       safeURL(a.URL),
			Source:    a.Source,
			Title:     a.Title,
			Sentiment: sentimentRows(a.Sentiment),
			Direct:    curation.Round(a.InsultPenalty, 3),
			Entities:  a.Entities,
			Concepts:  a.DistinctConcepts(),
			Triples:   a.Triples,
		}
		if state.IsSelected(a.ID) {
			g := graph.Project(a.Triples)
			av.Graph = &g
		}
		data.Articles = append(data.Articles, av)
	}

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func sentimentRows(s domain.Sentiment) []sentimentRow {
	rows := make([]sentimentRow, 0, len(s))
	for _, label := range domain.Labels {
		v, ok := s.Get(label)
		if !ok {
			continue
		}
		rows = append(rows, sentimentRow{Label: string(label), Title: label.Title(), Value: curation.Round(v, 3)})
	}
	return rows
}

// safeURL only lets http(s) links through as trusted hrefs.
func safeURL(raw string) template.URL {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return template.URL(raw)
	}
	return template.URL("#")
}
