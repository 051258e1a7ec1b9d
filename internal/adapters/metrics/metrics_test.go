package metrics

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/ogametools-go/internal/application/mediator"
	"github.com/andrescamacho/ogametools-go/internal/domain/shared"
)

type sampleQuery struct{}

func withRegistry(t *testing.T) {
	t.Helper()
	InitRegistry()
	t.Cleanup(Reset)
}

func TestRegister_NoRegistryIsNoOp(t *testing.T) {
	Reset()

	assert.False(t, IsEnabled())
	assert.NoError(t, NewQueryMetricsCollector().Register())
	assert.NoError(t, NewProductionMetricsCollector().Register())
}

func TestPrometheusMiddleware_RecordsOutcome(t *testing.T) {
	withRegistry(t)
	collector := NewQueryMetricsCollector()
	require.NoError(t, collector.Register())
	middleware := PrometheusMiddleware(collector)

	ok := func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return "done", nil
	}
	fail := func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return nil, errors.New("boom")
	}

	_, err := middleware(context.Background(), &sampleQuery{}, ok)
	require.NoError(t, err)
	_, err = middleware(context.Background(), &sampleQuery{}, ok)
	require.NoError(t, err)
	_, err = middleware(context.Background(), &sampleQuery{}, fail)
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.queriesTotal.WithLabelValues("sampleQuery", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.queriesTotal.WithLabelValues("sampleQuery", "error")))
}

func TestPrometheusMiddleware_NilCollectorPassesThrough(t *testing.T) {
	middleware := PrometheusMiddleware(nil)

	response, err := middleware(context.Background(), &sampleQuery{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, response)
}

func TestProductionMetricsCollector_RecordMineEvaluation(t *testing.T) {
	withRegistry(t)
	collector := NewProductionMetricsCollector()
	require.NoError(t, collector.Register())

	collector.RecordMineEvaluation(shared.Metal, 11)
	collector.RecordMineEvaluation(shared.Metal, 2)
	collector.RecordMineEvaluation(shared.Deuterium, 2)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.evaluationsTotal.WithLabelValues("metal")))
	assert.Equal(t, 13.0, testutil.ToFloat64(collector.levelsEvaluated.WithLabelValues("metal")))
	assert.Equal(t, 2.0, testutil.ToFloat64(collector.levelsEvaluated.WithLabelValues("deuterium")))
}

func TestWriteText(t *testing.T) {
	withRegistry(t)
	collector := NewProductionMetricsCollector()
	require.NoError(t, collector.Register())
	collector.RecordMineEvaluation(shared.Crystal, 5)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf))

	assert.Contains(t, buf.String(), `ogametools_production_mine_levels_evaluated_total{resource="crystal"} 5`)
	assert.Contains(t, buf.String(), "# TYPE ogametools_production_mine_evaluations_total counter")
}

func TestWriteText_DisabledWritesNothing(t *testing.T) {
	Reset()
	var buf bytes.Buffer

	require.False(t, IsEnabled())
	require.NoError(t, WriteText(&buf))
	assert.Empty(t, buf.String())

	InitRegistry()
	t.Cleanup(Reset)
	assert.True(t, IsEnabled())
}
