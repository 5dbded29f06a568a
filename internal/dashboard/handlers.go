package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/seaboard/dashkit/chart"
	"github.com/seaboard/dashkit/handler"
	"github.com/seaboard/dashkit/pkg/logger"
	"github.com/seaboard/dashkit/pkg/validator"
	"github.com/seaboard/dashkit/userform"
)

type panelRequest struct {
	ID string `path:"id"`
}

type eventRequest struct {
	ID string `path:"id" json:"-"`
	chart.Event
}

// EventsURL is the endpoint panels post click events to.
func EventsURL(id string) string {
	return "/panels/" + id + "/events"
}

// panelInputs resolves a catalog panel into chart inputs wired to this
// service's event handlers.
func (s *Service) panelInputs(id string) (chart.Inputs, bool) {
	def, ok := s.catalog.Get(id)
	if !ok {
		return chart.Inputs{}, false
	}
	return def.Inputs(
		chart.WithEventsURL(EventsURL(id)),
		chart.WithOnClick(s.onChartEvent(id)),
		chart.WithOnDoubleClick(s.onChartEvent(id)),
	), true
}

func (s *Service) onChartEvent(id string) chart.EventHandler {
	return func(ctx context.Context, e chart.Event) {
		s.metrics.chartEvent(id, string(e.Kind))
		s.log.InfoContext(ctx, "chart event",
			logger.Component("dashboard"),
			logger.Event(string(e.Kind)),
			logger.Panel(id),
			slog.Int("series", e.SeriesIndex),
			slog.Int("index", e.PointIndex),
		)
	}
}

func (s *Service) index(ctx handler.Context, _ struct{}) handler.Response {
	panels := make([]chart.Inputs, 0, len(s.catalog.Panels))
	for _, def := range s.catalog.Panels {
		in, _ := s.panelInputs(def.ID)
		panels = append(panels, in)
		s.metrics.panelRendered(def.ID)
	}
	list := PanelList(panels)
	return handler.TemplPartial(list, Layout(s.title, s.chartJSURL, list),
		handler.WithTarget("main"), handler.WithPatchMode(handler.PatchInner))
}

func (s *Service) showPanel(ctx handler.Context, req panelRequest) handler.Response {
	in, ok := s.panelInputs(req.ID)
	if !ok {
		return handler.Error(ErrPanelNotFound)
	}
	s.metrics.panelRendered(req.ID)
	panel := chart.Panel(in)
	return handler.TemplPartial(panel, Layout(in.Title, s.chartJSURL, panel),
		handler.WithTarget("#"+in.DOMID()))
}

func (s *Service) panelConfig(ctx handler.Context, req panelRequest) handler.Response {
	in, ok := s.panelInputs(req.ID)
	if !ok {
		return handler.JSONError(ErrPanelNotFound)
	}
	return handler.JSON(chart.BuildConfig(in))
}

func (s *Service) panelEvent(ctx handler.Context, req eventRequest) handler.Response {
	in, ok := s.panelInputs(req.ID)
	if !ok {
		return handler.JSONError(ErrPanelNotFound)
	}
	if err := in.Dispatch(ctx, req.Event); err != nil {
		s.log.WarnContext(ctx, "chart event rejected",
			logger.Component("dashboard"), logger.Panel(req.ID), logger.Error(err))
		return handler.JSONError(errors.Join(handler.ErrUnprocessableEntity, err))
	}
	return handler.Empty()
}

func (s *Service) newUser(ctx handler.Context, _ struct{}) handler.Response {
	form := UserForm(UserFormParams{})
	return handler.TemplPartial(form, Layout("New user", s.chartJSURL, form),
		handler.WithTarget("#user-form"))
}

func (s *Service) createUser(ctx handler.Context, f userform.Form) handler.Response {
	user, res := userform.Parse(f)
	s.metrics.userValidated(res.OK)

	params := UserFormParams{Form: f, Errors: res.Errors}
	if res.OK {
		s.log.InfoContext(ctx, "user form accepted", logger.Component("dashboard"), logger.Event("user_valid"))
		params = UserFormParams{Saved: &user}
	} else {
		fields := validator.ExtractValidationErrors(res.Err()).Fields()
		s.log.InfoContext(ctx, "user form rejected", logger.Component("dashboard"), logger.Fields(fields...))
	}

	if acceptsJSON(ctx) {
		if !res.OK {
			return handler.JSONError(handler.ValidationErrorFrom(res.Err()))
		}
		return handler.JSON(user)
	}

	form := UserForm(params)
	return handler.TemplPartial(form, Layout("New user", s.chartJSURL, form),
		handler.WithTarget("#user-form"))
}

// acceptsJSON reports whether the client asked for a JSON body instead of HTML.
func acceptsJSON(ctx handler.Context) bool {
	return strings.Contains(ctx.Request().Header.Get("Accept"), "application/json")
}
