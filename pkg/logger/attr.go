package logger

import "log/slog"

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Panel records a chart panel id under "panel".
func Panel(id string) slog.Attr {
	return slog.String("panel", id)
}

// Fields records the names of failed form fields under "fields".
func Fields(names ...string) slog.Attr {
	return slog.Any("fields", names)
}
