// Package logger builds *slog.Logger values with consistent defaults and
// attribute names for the registration service.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "registro"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "submission finished",
//	    logger.Outcome("saved"),
//	    logger.Duration(time.Since(start)),
//	)
//
// Helper constructors in attr.go keep keys uniform across packages. Error
// returns an empty attribute for a nil error, which slog drops, so callers can
// pass possibly-nil errors without a branch.
package logger
