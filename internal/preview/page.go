package preview

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 48em; margin: 2em auto; line-height: 1.5; }
pre { background: #f5f5f5; padding: 1em; overflow-x: auto; }
blockquote { border-left: 4px solid #ddd; margin-left: 0; padding-left: 1em; color: #555; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// WritePage writes a standalone HTML page around a rendered note.
// The body is trusted as it comes from a renderer escaping user content.
func WritePage(w io.Writer, title string, body string) error {
	return pageTemplate.Execute(w, struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  template.HTML(body),
	})
}
