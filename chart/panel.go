package chart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// DOMID returns the id of the panel's root element.
func (in Inputs) DOMID() string {
	if in.ID == "" {
		return "chart-panel"
	}
	return "chart-panel-" + in.ID
}

// Panel renders the card: title header, chart body sized to the panel height,
// and a footer with the updated label. The canvas carries the engine config in
// data-chart-config; Script mounts it in the browser.
func Panel(in Inputs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		in := in.normalized()

		cfg, err := json.Marshal(BuildConfig(in))
		if err != nil {
			return fmt.Errorf("encode chart config: %w", err)
		}

		if _, err := io.WriteString(w, `<div class="chart-panel" id="`+templ.EscapeString(in.DOMID())+`">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="chart-panel-header"><p>`+templ.EscapeString(in.Title)+`</p></div>`); err != nil {
			return err
		}

		body := `<div class="chart-panel-body" style="height: ` + strconv.Itoa(in.Height) + `px;">` +
			`<canvas data-chart-panel data-chart-config="` + templ.EscapeString(string(cfg)) + `"`
		if in.EventsURL != "" {
			body += ` data-chart-events="` + templ.EscapeString(in.EventsURL) + `"`
		}
		body += `></canvas></div>`
		if _, err := io.WriteString(w, body); err != nil {
			return err
		}

		_, err = io.WriteString(w, `<div class="chart-panel-footer"><h2>`+templ.EscapeString(in.UpdatedLabel)+`</h2></div></div>`)
		return err
	})
}
