package chart

import (
	"context"
	_ "embed"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

//go:embed static/chartpanel.js
var script []byte

// ScriptPath is where ScriptHandler is expected to be mounted.
const ScriptPath = "/static/chartpanel.js"

// ScriptHandler serves the browser glue that mounts panels with Chart.js.
func ScriptHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=3600")
		_, _ = w.Write(script)
	})
}

// Script renders the script tags for Chart.js and the panel glue.
func Script(chartJSURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<script src="`+templ.EscapeString(chartJSURL)+`"></script>`+
				`<script src="`+ScriptPath+`" defer></script>`)
		return err
	})
}
