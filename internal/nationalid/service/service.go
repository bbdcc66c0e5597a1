// Package service is the application layer around the pure nationalid
// decoder. It supplies request-scoped time for age derivation and handles
// the effectful concerns the domain stays free of: logging, metrics and
// tracing.
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"egid/internal/nationalid"
	"egid/internal/nationalid/metrics"
	dErrors "egid/pkg/domain-errors"
	"egid/pkg/requestcontext"
)

const tracerName = "egid/internal/nationalid/service"

// Result is a decoded ID together with values derived at decode time.
type Result struct {
	NationalID nationalid.NationalID
	Info       nationalid.ExtractedInfo
	Age        int
	DecodedAt  time.Time
}

// Service decodes national IDs.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service. metrics may be nil.
func New(logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		logger:  logger,
		metrics: m,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Decode validates and decodes raw. Decoding failures are returned as
// CodeValidation errors wrapping the *nationalid.Error, so callers can use
// errors.As to reach the kind and the message meant for the end user.
func (s *Service) Decode(ctx context.Context, raw string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "nationalid.decode")
	defer span.End()

	start := time.Now()
	now := requestcontext.Now(ctx)
	requestID := requestcontext.RequestID(ctx)

	info, id, err := extract(raw)
	s.metrics.ObserveDecodeLatency(time.Since(start))
	if err != nil {
		kind, _ := nationalid.KindOf(err)
		s.metrics.IncrementOutcome(string(kind))
		span.SetAttributes(attribute.String("nationalid.error_kind", string(kind)))
		span.SetStatus(codes.Error, err.Error())

		s.logger.InfoContext(ctx, "national ID rejected",
			"request_id", requestID,
			"national_id", Mask(raw),
			"kind", kind,
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeValidation, "national ID rejected")
	}

	s.metrics.IncrementOutcome(metrics.OutcomeSuccess)
	span.SetAttributes(attribute.String("nationalid.governorate", info.Governorate))

	s.logger.DebugContext(ctx, "national ID decoded",
		"request_id", requestID,
		"national_id", Mask(raw),
		"governorate", info.Governorate,
	)

	return &Result{
		NationalID: id,
		Info:       info,
		Age:        nationalid.AgeAt(info.BirthDate, now),
		DecodedAt:  now,
	}, nil
}

func extract(raw string) (nationalid.ExtractedInfo, nationalid.NationalID, error) {
	id, err := nationalid.ParseNationalID(raw)
	if err != nil {
		return nationalid.ExtractedInfo{}, nationalid.NationalID{}, err
	}
	info, err := nationalid.ExtractFrom(id)
	if err != nil {
		return nationalid.ExtractedInfo{}, nationalid.NationalID{}, err
	}
	return info, id, nil
}

// maxMaskedLen bounds how much of an untrusted input reaches the logs.
const maxMaskedLen = 32

// Mask hides everything but the first and last two characters of an ID
// so logs never hold a complete identifier. Inputs shorter than a full ID
// are fully masked.
func Mask(raw string) string {
	r := []rune(raw)
	if len(r) > maxMaskedLen {
		r = r[:maxMaskedLen]
	}
	if len(r) < nationalid.Length {
		return strings.Repeat("*", len(r))
	}
	return string(r[0]) + strings.Repeat("*", len(r)-3) + string(r[len(r)-2:])
}
