package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/scopekit/di"
	apperrors "github.com/kbukum/scopekit/errors"
)

// ContainerObserver records container activity as OpenTelemetry metrics and
// spans. It implements di.Observer.
type ContainerObserver struct {
	tracer            trace.Tracer
	resolveTotal      metric.Int64Counter
	constructTotal    metric.Int64Counter
	constructDuration metric.Float64Histogram
}

var _ di.Observer = (*ContainerObserver)(nil)

// NewContainerObserver creates the di instruments on meter and emits a span
// per construction on tracer.
func NewContainerObserver(meter metric.Meter, tracer trace.Tracer) (*ContainerObserver, error) {
	resolveTotal, err := meter.Int64Counter("di.resolve.total",
		metric.WithDescription("Top-level resolutions by container, key and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating di.resolve.total counter: %w", err)
	}

	constructTotal, err := meter.Int64Counter("di.construct.total",
		metric.WithDescription("Provider calls by container, key, scope and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating di.construct.total counter: %w", err)
	}

	constructDuration, err := meter.Float64Histogram("di.construct.duration",
		metric.WithDescription("Duration of provider calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating di.construct.duration histogram: %w", err)
	}

	return &ContainerObserver{
		tracer:            tracer,
		resolveTotal:      resolveTotal,
		constructTotal:    constructTotal,
		constructDuration: constructDuration,
	}, nil
}

// OnResolve counts a top-level resolution.
func (o *ContainerObserver) OnResolve(container string, key di.Key, err error) {
	o.resolveTotal.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String(AttrContainer, container),
		attribute.String(AttrKey, key.String()),
		attribute.String(AttrStatus, status(err)),
	))
}

// OnConstruct records a provider call and a span covering it.
func (o *ContainerObserver) OnConstruct(container string, key di.Key, scope di.Scope, elapsed time.Duration, err error) {
	ctx := context.Background()
	attrs := []attribute.KeyValue{
		attribute.String(AttrContainer, container),
		attribute.String(AttrKey, key.String()),
		attribute.String(AttrScope, scope.String()),
	}

	o.constructTotal.Add(ctx, 1, metric.WithAttributes(append(attrs, attribute.String(AttrStatus, status(err)))...))
	o.constructDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attrs...))

	end := time.Now()
	_, span := o.tracer.Start(ctx, SpanConstruct,
		trace.WithTimestamp(end.Add(-elapsed)),
		trace.WithAttributes(attrs...),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if code := apperrors.CodeOf(err); code != "" {
			span.SetAttributes(attribute.String(AttrErrorCode, string(code)))
		}
	}
	span.End(trace.WithTimestamp(end))
}

func status(err error) string {
	if err == nil {
		return "ok"
	}
	if code := apperrors.CodeOf(err); code != "" {
		return string(code)
	}
	return "error"
}
