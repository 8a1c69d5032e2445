package middleware_test

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	mw "github.com/xraph/portal/middleware"
)

func setupTestMeter() (*sdkmetric.ManualReader, *sdkmetric.MeterProvider) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	return reader, mp
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}
	return rm
}

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestMetrics_RecordsDuration(t *testing.T) {
	reader, mp := setupTestMeter()
	m := mw.MetricsWithMeter(mp.Meter("test"))

	_, _ = m(context.Background(), newTestCall(), func(_ context.Context) (any, error) {
		return "ok", nil
	})

	rm := collectMetrics(t, reader)
	metric := findMetric(rm, "portal.dispatch.duration")
	if metric == nil {
		t.Fatal("portal.dispatch.duration metric not found")
	}

	hist, ok := metric.Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatal("expected Histogram[float64] data type")
	}
	if len(hist.DataPoints) != 1 {
		t.Fatalf("expected 1 data point, got %d", len(hist.DataPoints))
	}
	if v, found := hist.DataPoints[0].Attributes.Value(attribute.Key("status")); !found || v.AsString() != "ok" {
		t.Errorf("status attribute = %v, want ok", v)
	}
}

func TestMetrics_CountsCallsWithStatus(t *testing.T) {
	reader, mp := setupTestMeter()
	m := mw.MetricsWithMeter(mp.Meter("test"))

	_, _ = m(context.Background(), newTestCall(), func(_ context.Context) (any, error) {
		return "ok", nil
	})
	_, _ = m(context.Background(), newTestCall(), func(_ context.Context) (any, error) {
		return nil, errors.New("boom")
	})

	rm := collectMetrics(t, reader)
	metric := findMetric(rm, "portal.dispatch.calls")
	if metric == nil {
		t.Fatal("portal.dispatch.calls metric not found")
	}

	sum, ok := metric.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatal("expected Sum[int64] data type")
	}
	if len(sum.DataPoints) != 2 {
		t.Fatalf("expected 2 data points (ok and error), got %d", len(sum.DataPoints))
	}

	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	if total != 2 {
		t.Errorf("total calls = %d, want 2", total)
	}
}

func TestMetrics_ErrorPassesThrough(t *testing.T) {
	_, mp := setupTestMeter()
	m := mw.MetricsWithMeter(mp.Meter("test"))

	wantErr := errors.New("boom")
	_, err := m(context.Background(), newTestCall(), func(_ context.Context) (any, error) {
		return nil, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
