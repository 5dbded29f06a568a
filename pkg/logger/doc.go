// Package logger builds slog loggers for the dashboard.
//
// New returns a *slog.Logger configured with Option values: output format
// (JSON or text), level, static attributes, and ContextExtractor callbacks that
// add request-scoped values such as the request id to every record.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "dashkit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "panel rendered", logger.Panel(id))
//
// The attribute helpers in attr.go keep key names consistent across packages.
package logger
