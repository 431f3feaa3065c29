package encounter

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (s *service) startSpan(ctx context.Context, op, encounterID string) (context.Context, trace.Span) {
	ctx, span := s.tracer.Start(ctx, "encounter."+op)
	if encounterID != "" {
		span.SetAttributes(attribute.String("encounter.id", encounterID))
	}
	return ctx, span
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
