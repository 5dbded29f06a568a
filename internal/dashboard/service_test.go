package dashboard_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaboard/dashkit/internal/dashboard"
	"github.com/seaboard/dashkit/pkg/logger"
	"github.com/seaboard/dashkit/pkg/requestid"
	"github.com/seaboard/dashkit/userform"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type fixture struct {
	srv  *httptest.Server
	reg  *prometheus.Registry
	logs *syncBuffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logs := &syncBuffer{}
	reg := prometheus.NewRegistry()
	svc, err := dashboard.New(loadCatalog(t),
		dashboard.WithLogger(logger.New(logger.WithOutput(logs))),
		dashboard.WithRegistry(reg),
		dashboard.WithTitle("Fleet"),
	)
	require.NoError(t, err)

	srv := httptest.NewServer(svc.Router())
	t.Cleanup(srv.Close)
	return &fixture{srv: srv, reg: reg, logs: logs}
}

func (f *fixture) do(t *testing.T, method, path, contentType, body string) (*http.Response, string) {
	t.Helper()
	return f.doWithHeaders(t, method, path, body, http.Header{"Content-Type": {contentType}})
}

func (f *fixture) doWithHeaders(t *testing.T, method, path, body string, headers http.Header) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, f.srv.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	for k, v := range headers {
		if len(v) > 0 && v[0] != "" {
			req.Header[k] = v
		}
	}
	resp, err := f.srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(data)
}

func counter(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metrics:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue metrics
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestNew_NilCatalog(t *testing.T) {
	t.Parallel()
	_, err := dashboard.New(nil)
	require.ErrorIs(t, err, dashboard.ErrNilCatalog)
}

func TestIndex(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp, body := f.do(t, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(requestid.Header))
	assert.Contains(t, body, "<title>Fleet</title>")
	assert.Contains(t, body, `id="chart-panel-cii"`)
	assert.Contains(t, body, `id="chart-panel-fuel"`)
	assert.Contains(t, body, `href="/users/new"`)
	assert.Contains(t, body, `/static/chartpanel.js`)
	assert.Equal(t, 1.0, counter(t, f.reg, "dashkit_panel_renders_total", map[string]string{"panel": "cii"}))
}

func TestShowPanel(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp, body := f.do(t, http.MethodGet, "/panels/fuel", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<p>Fuel consumption</p>`)
	assert.Contains(t, body, `style="height: 280px;"`)
	assert.Contains(t, body, `data-chart-events="/panels/fuel/events"`)

	resp, body = f.do(t, http.MethodGet, "/panels/unknown", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "panel_not_found")
}

func TestPanelConfig(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp, body := f.do(t, http.MethodGet, "/panels/cii/config", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Data struct {
			Type string `json:"type"`
			Data struct {
				Datasets []struct {
					Label         string   `json:"label"`
					TooltipLabels []string `json:"tooltipLabels"`
				} `json:"datasets"`
			} `json:"data"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, "line", payload.Data.Type)
	require.Len(t, payload.Data.Data.Datasets, 2)
	assert.Equal(t, []string{
		"CII attained: 4.200 Category: A",
		"CII attained: 3.950 Category: B",
		"CII attained: 3.700 Category: C",
	}, payload.Data.Data.Datasets[0].TooltipLabels)
	assert.Equal(t, "CII required: 5.000", payload.Data.Data.Datasets[1].TooltipLabels[0])

	resp, body = f.do(t, http.MethodGet, "/panels/unknown/config", "", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, `"code":"panel_not_found"`)
}

func TestPanelEvents(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp, _ := f.do(t, http.MethodPost, "/panels/cii/events", "application/json", `{"kind":"click","series":0,"index":2}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp, _ = f.do(t, http.MethodPost, "/panels/cii/events", "application/json", `{"kind":"dblclick","series":1,"index":0}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	assert.Equal(t, 1.0, counter(t, f.reg, "dashkit_chart_events_total", map[string]string{"panel": "cii", "kind": "click"}))
	assert.Equal(t, 1.0, counter(t, f.reg, "dashkit_chart_events_total", map[string]string{"panel": "cii", "kind": "dblclick"}))
	assert.Contains(t, f.logs.String(), `"msg":"chart event"`)

	tests := []struct {
		name string
		path string
		ct   string
		body string
		code int
	}{
		{"out of range", "/panels/cii/events", "application/json", `{"kind":"click","series":5,"index":0}`, http.StatusUnprocessableEntity},
		{"unknown kind", "/panels/cii/events", "application/json", `{"kind":"hover","series":0,"index":0}`, http.StatusUnprocessableEntity},
		{"malformed", "/panels/cii/events", "application/json", `{"kind":`, http.StatusBadRequest},
		{"wrong content type", "/panels/cii/events", "text/plain", `kind=click`, http.StatusBadRequest},
		{"unknown panel", "/panels/nope/events", "application/json", `{"kind":"click","series":0,"index":0}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := f.do(t, http.MethodPost, tt.path, tt.ct, tt.body)
			assert.Equal(t, tt.code, resp.StatusCode)
			assert.Contains(t, body, `"error"`)
		})
	}
}

func TestUserForm(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp, body := f.do(t, http.MethodGet, "/users/new", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="user-form"`)
	assert.NotContains(t, body, "field-error")

	form := url.Values{
		userform.FieldFirstName: {""},
		userform.FieldLastName:  {"Lovelace"},
		userform.FieldEmail:     {"ada@"},
		userform.FieldCompany:   {"abc"},
	}
	resp, body = f.do(t, http.MethodPost, "/users", "application/x-www-form-urlencoded", form.Encode())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, userform.MsgFirstNameRequired)
	assert.Contains(t, body, userform.MsgEmailFormat)
	assert.Contains(t, body, "must be a valid number")
	assert.NotContains(t, body, userform.MsgLastNameRequired)
	assert.Contains(t, body, `value="Lovelace"`)

	form = url.Values{
		userform.FieldFirstName: {"Ada"},
		userform.FieldLastName:  {"Lovelace"},
		userform.FieldEmail:     {"ada@example.com"},
		userform.FieldUserRole:  {"2"},
	}
	resp, body = f.do(t, http.MethodPost, "/users", "application/x-www-form-urlencoded", form.Encode())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Saved Ada Lovelace")
	assert.NotContains(t, body, "field-error")

	assert.Equal(t, 1.0, counter(t, f.reg, "dashkit_user_validations_total", map[string]string{"result": "valid"}))
	assert.Equal(t, 1.0, counter(t, f.reg, "dashkit_user_validations_total", map[string]string{"result": "invalid"}))
}

func TestUserForm_JSON(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	headers := http.Header{
		"Content-Type": {"application/x-www-form-urlencoded"},
		"Accept":       {"application/json"},
	}

	form := url.Values{
		userform.FieldFirstName: {""},
		userform.FieldLastName:  {"Lovelace"},
		userform.FieldEmail:     {"ada@"},
	}
	resp, body := f.doWithHeaders(t, http.MethodPost, "/users", form.Encode(), headers)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")

	var failed struct {
		Error struct {
			Code    string              `json:"code"`
			Details map[string][]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &failed))
	assert.Equal(t, "validation_error", failed.Error.Code)
	assert.Equal(t, []string{userform.MsgFirstNameRequired}, failed.Error.Details[userform.FieldFirstName])
	assert.Equal(t, []string{userform.MsgEmailFormat}, failed.Error.Details[userform.FieldEmail])
	assert.NotContains(t, failed.Error.Details, userform.FieldLastName)

	form = url.Values{
		userform.FieldFirstName: {"Ada"},
		userform.FieldLastName:  {"Lovelace"},
		userform.FieldEmail:     {"ada@example.com"},
	}
	resp, body = f.doWithHeaders(t, http.MethodPost, "/users", form.Encode(), headers)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var saved struct {
		Data userform.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &saved))
	assert.Equal(t, userform.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, saved.Data)
}

func TestHandlerDuration(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.do(t, http.MethodGet, "/panels/cii", "", "")
	f.do(t, http.MethodGet, "/panels/cii", "", "")
	f.do(t, http.MethodGet, "/users/new", "", "")

	families, err := f.reg.Gather()
	require.NoError(t, err)
	counts := map[string]uint64{}
	for _, mf := range families {
		if mf.GetName() != "dashkit_handler_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "route" {
					counts[lp.GetValue()] = m.GetHistogram().GetSampleCount()
				}
			}
		}
	}
	assert.Equal(t, uint64(2), counts["panel"])
	assert.Equal(t, uint64(1), counts["user_new"])
	assert.NotContains(t, counts, "user_create")
}

func TestHealthMetricsAndScript(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	resp, body := f.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "READY", body)

	f.do(t, http.MethodGet, "/panels/cii", "", "")
	resp, body = f.do(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `dashkit_panel_renders_total{panel="cii"} 1`)

	resp, body = f.do(t, http.MethodGet, "/static/chartpanel.js", "", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "javascript")
	assert.Contains(t, body, "data-chart-panel")
}

func TestMetricsUnregistered(t *testing.T) {
	t.Parallel()
	m := dashboard.NewMetrics(nil)
	m.PanelRenders.WithLabelValues("x").Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PanelRenders.WithLabelValues("x")))
}
