package server

import "html/template"

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 1.5em auto; max-width: 70em; padding: 0 1em; }
nav { margin-bottom: 1em; }
.subtitle { color: #555; font-style: italic; }
.banner { padding: 0.8em; border-radius: 4px; margin: 1em 0; }
.error { background: #fdecea; color: #b3261e; border: 1px solid #b3261e; }
form { margin: 1em 0; padding: 1em; background: #f5f5f5; border-radius: 4px; }
form label { display: inline-block; margin-right: 1.5em; }
table.metrics { border-collapse: collapse; margin: 1em 0; }
table.metrics th, table.metrics td { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
iframe { width: 100%; height: 640px; border: 1px solid #ddd; margin: 1em 0; }
</style>
</head>
<body>
<nav><a href="/">Home</a>{{range .Nav}} | <a href="{{.Route}}">{{.Title}}</a>{{end}}</nav>
<h1>{{.Title}}</h1>
{{if .Subtitle}}<p class="subtitle">{{.Subtitle}}</p>{{end}}
{{if .Error}}<div class="banner error">{{.Error}}</div>{{end}}
{{if .Controls}}
<form method="get">
{{range .Controls}}<label>{{.Label}}
{{if .Options}}<select name="{{.Name}}">
{{range .Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>
{{end}}</select>
{{else}}<input type="number" name="{{.Name}}" value="{{.Value}}" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}">
{{end}}</label>
{{end}}<button type="submit">Update</button>
</form>
{{end}}
{{if .Metrics}}
<table class="metrics">
{{range .Metrics}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
{{end}}</table>
{{end}}
{{range .Charts}}<iframe src="{{.}}"></iframe>
{{end}}
{{if .Notes}}
<h2>Key concepts</h2>
<ul>
{{range .Notes}}<li>{{.}}</li>
{{end}}</ul>
{{end}}
</body>
</html>
`

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Radiation Physics Interactive Education</title>
<style>
body { font-family: sans-serif; margin: 1.5em auto; max-width: 70em; padding: 0 1em; }
.card { border: 1px solid #ccc; border-radius: 4px; padding: 1em; margin: 1em 0; }
.card h2 { margin-top: 0; }
</style>
</head>
<body>
<h1>Radiation Physics Interactive Education</h1>
<p>Interactive tools for photon-matter interactions. Adjust the parameters on
each page and the derived quantities and charts recompute.</p>
{{range .Nav}}
<div class="card">
<h2><a href="{{.Route}}">{{.Title}}</a></h2>
<p>{{.Description}}</p>
</div>
{{end}}
</body>
</html>
`

var (
	pageTmpl  = template.Must(template.New("page").Parse(pageHTML))
	indexTmpl = template.Must(template.New("index").Parse(indexHTML))
)

type navItem struct {
	Title       string
	Route       string
	Description string
}

type option struct {
	Label    string
	Value    string
	Selected bool
}

type control struct {
	Label   string
	Name    string
	Value   string
	Min     string
	Max     string
	Step    string
	Options []option
}

type metric struct {
	Label string
	Value string
}

type pageData struct {
	Title    string
	Subtitle string
	Error    string
	Nav      []navItem
	Controls []control
	Metrics  []metric
	Charts   []string
	Notes    []string
}
