package dashboard

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/seaboard/dashkit/chart"
	"github.com/seaboard/dashkit/handler"
	"github.com/seaboard/dashkit/userform"
)

const datastarURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

// htmlWriter stops writing after the first error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(ctx, h.w)
	}
}

// Layout wraps body in the HTML document with the chart and DataStar scripts.
func Layout(title, chartJSURL string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><script type="module" src="` + datastarURL + `"></script>`)
		h.component(ctx, chart.Script(chartJSURL))
		h.raw(`</head><body><div id="toast-container"></div><main>`)
		h.component(ctx, body)
		h.raw(`</main></body></html>`)
		return h.err
	})
}

// PanelList renders every panel followed by a link to the user form.
func PanelList(panels []chart.Inputs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<section class="panels">`)
		for _, in := range panels {
			h.component(ctx, chart.Panel(in))
		}
		if len(panels) == 0 {
			h.raw(`<p class="empty">No panels configured.</p>`)
		}
		h.raw(`</section><nav><a href="/users/new">Add user</a></nav>`)
		return h.err
	})
}

// UserFormParams is the state of the user form view.
type UserFormParams struct {
	Form   userform.Form
	Errors map[string]string
	Saved  *userform.User
}

type formField struct {
	name, label, kind, value string
}

// UserForm renders the form with inline field errors. It posts through
// DataStar when available and as a plain form otherwise.
func UserForm(p UserFormParams) templ.Component {
	fields := []formField{
		{userform.FieldFirstName, "First name", "text", p.Form.FirstName},
		{userform.FieldLastName, "Last name", "text", p.Form.LastName},
		{userform.FieldEmail, "Email", "email", p.Form.Email},
		{userform.FieldCompany, "Company", "text", p.Form.Company},
		{userform.FieldUserRole, "Role", "text", p.Form.UserRole},
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<form id="user-form" method="post" action="/users" data-on-submit="@post('/users', {contentType: 'form'})">`)
		if p.Saved != nil {
			h.raw(`<p class="form-success">Saved `)
			h.text(p.Saved.FirstName + " " + p.Saved.LastName)
			h.raw(`</p>`)
		}
		for _, f := range fields {
			h.raw(`<div class="form-field"><label for="` + f.name + `">`)
			h.text(f.label)
			h.raw(`</label><input id="` + f.name + `" name="` + f.name + `" type="` + f.kind + `" value="`)
			h.text(f.value)
			h.raw(`">`)
			if msg, ok := p.Errors[f.name]; ok {
				h.raw(`<p class="field-error" data-field="` + f.name + `">`)
				h.text(msg)
				h.raw(`</p>`)
			}
			h.raw(`</div>`)
		}
		h.raw(`<button type="submit">Save</button></form>`)
		return h.err
	})
}

// ErrorPage is the full-page error view.
func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>Error</title></head><body>`)
		h.raw(`<h1>` + strconv.Itoa(p.StatusCode) + `</h1><p class="error">`)
		h.text(p.Error)
		h.raw(`</p>`)
		if p.RequestID != "" {
			h.raw(`<p class="request-id">Request ID: `)
			h.text(p.RequestID)
			h.raw(`</p>`)
		}
		h.raw(`</body></html>`)
		return h.err
	})
}

// ErrorToast is prepended to #toast-container for DataStar requests.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div class="toast toast-`)
		h.text(p.Type)
		h.raw(`" role="alert">`)
		h.text(p.Message)
		h.raw(`</div>`)
		return h.err
	})
}
