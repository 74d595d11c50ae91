package core

import (
	"html/template"
	"net/http"
)

type ErrorData struct {
	Status  int
	Title   string
	Message string
	IsDev   bool
}

func NewErrorData(status int, err error, isDev bool) ErrorData {
	data := ErrorData{
		Status: status,
		Title:  http.StatusText(status),
		IsDev:  isDev,
	}
	if err != nil {
		data.Message = err.Error()
	}
	return data
}

var ErrorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; }
    </style>
</head>
<body>
    <h1>{{.Status}} {{.Title}}</h1>
    {{if and .IsDev .Message}}
    <pre>{{.Message}}</pre>
    {{else}}
    <p>An error occurred while processing your request.</p>
    {{end}}
</body>
</html>`))
