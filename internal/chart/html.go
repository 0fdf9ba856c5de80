package chart

import (
	"bytes"
	"html"
	"text/template"
)

// pageTemplate is the self-contained vega-embed page wrapping a chart
// document. text/template is used because the embedded JSON carries tooltip
// format strings ("%Y-%m-%d") that printf-style substitution would mangle.
var pageTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <script src="https://cdn.jsdelivr.net/npm/vega@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-lite@5"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-embed@6"></script>
</head>
<body>
  <div id="vis"></div>
  <script type="text/javascript">
    const spec = {{.Spec}};
    vegaEmbed("#vis", spec).catch(console.error);
  </script>
</body>
</html>
`))

// renderHTML wraps the document in a standalone HTML page.
func renderHTML(document *Document) ([]byte, error) {
	spec, err := document.JSON()
	if err != nil {
		return nil, err
	}

	var page bytes.Buffer

	err = pageTemplate.Execute(&page, struct {
		Title string
		Spec  string
	}{
		Title: html.EscapeString(document.Title),
		Spec:  string(spec),
	})
	if err != nil {
		return nil, err
	}

	return page.Bytes(), nil
}
