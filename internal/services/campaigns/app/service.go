// Package app implements the campaign command surface over a campaign store.
//
// Every operation loads the records it needs, applies the domain rules in
// domain/campaign and domain/settings, and persists the result. Errors are
// apperrors values so callers can map them onto transport codes.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/pipps42/dm-assistant-sub001/internal/platform/errors"
	"github.com/pipps42/dm-assistant-sub001/internal/platform/id"
	"github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/storage"
)

const tracerName = "github.com/pipps42/dm-assistant-sub001/internal/services/campaigns/app"

var (
	// ErrNotFound indicates a missing campaign. Store misses are reported
	// with its code, so errors.Is matches them.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "campaign not found")
	// ErrEmptyID indicates a blank campaign id.
	ErrEmptyID = apperrors.New(apperrors.CodeCampaignEmptyID, "campaign id is required")
	// ErrNameTaken indicates another campaign already uses the name.
	ErrNameTaken = apperrors.New(apperrors.CodeCampaignNameTaken, "campaign name already in use")
	// ErrDeleteBlocked indicates an active campaign that still has characters.
	ErrDeleteBlocked = apperrors.New(apperrors.CodeCampaignDeleteBlocked, "cannot delete an active campaign with characters, archive it first")
)

// Service exposes campaign operations.
type Service struct {
	store       storage.Store
	clock       func() time.Time
	idGenerator func() (string, error)
	log         zerolog.Logger
	tracer      trace.Tracer
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithIDGenerator overrides campaign id generation.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *Service) {
		if gen != nil {
			s.idGenerator = gen
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithTracer sets the tracer used for operation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// NewService creates a campaign service backed by store.
func NewService(store storage.Store, opts ...Option) *Service {
	s := &Service{
		store:       store,
		clock:       time.Now,
		idGenerator: id.NewID,
		log:         zerolog.Nop(),
		tracer:      otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) now() time.Time {
	return s.clock().UTC()
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "campaigns."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
	}
	span.End()
}

func (s *Service) ready() error {
	if s == nil || s.store == nil {
		return fmt.Errorf("campaign store is not configured")
	}
	return nil
}

func normalizeID(campaignID string) (string, error) {
	campaignID = strings.TrimSpace(campaignID)
	if campaignID == "" {
		return "", ErrEmptyID
	}
	return campaignID, nil
}

// storeErr maps storage sentinels onto coded errors.
func storeErr(err error, campaignID, action string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return &apperrors.Error{
			Code:     ErrNotFound.Code,
			Message:  ErrNotFound.Message + ": " + campaignID,
			Metadata: map[string]string{"ID": campaignID},
			Cause:    err,
		}
	}
	if errors.Is(err, storage.ErrAlreadyExists) {
		return &apperrors.Error{
			Code:     apperrors.CodeCampaignAlreadyExists,
			Message:  "campaign " + campaignID + " already exists",
			Metadata: map[string]string{"ID": campaignID},
			Cause:    err,
		}
	}
	return fmt.Errorf("%s: %w", action, err)
}

func nameTaken(name string) error {
	return apperrors.WithMetadata(
		apperrors.CodeCampaignNameTaken,
		"campaign name "+name+" already in use",
		map[string]string{"Name": name},
	)
}
