package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/ogametools-go/internal/application/logging"
	"github.com/andrescamacho/ogametools-go/internal/application/mediator"
)

// PrometheusMiddleware creates a middleware that records query execution metrics
//
// This middleware wraps every mediator request and records:
// - Execution duration (histogram)
// - Success/failure counts (counter)
//
// Query names drop their package prefix, so "*production.GetMineTableQuery"
// is recorded as "GetMineTableQuery".
func PrometheusMiddleware(collector *QueryMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		// Skip metrics if collector is nil (metrics disabled)
		if collector == nil {
			return next(ctx, request)
		}

		queryName := logging.RequestName(request)
		start := time.Now()

		response, err := next(ctx, request)

		collector.RecordQueryExecution(queryName, time.Since(start).Seconds(), err == nil)
		return response, err
	}
}
