// Package converter wraps the pure conversion pipeline behind a
// synchronous request/response service: one zone document in, one
// result out, bounded by a per-call timeout. The pipeline itself is
// stateless; the service owns the registry handle and the context
// policy and snapshots both at the start of every call.
package converter

import (
	"context"
	"fmt"
	"time"

	"github.com/zonekit/zoned/internal/zones/codec"
	"github.com/zonekit/zoned/internal/zones/common/log"
	"github.com/zonekit/zoned/internal/zones/domain"
	"github.com/zonekit/zoned/internal/zones/registry"
)

// DefaultTimeout bounds a single conversion call unless configured
// otherwise.
const DefaultTimeout = 30 * time.Second

// Service converts zone documents into typed record sets.
type Service struct {
	registry DecoderRegistry
	policy   *domain.ContextPolicy
	timeout  time.Duration
	logger   log.Logger
}

// Options configures a converter Service.
type Options struct {
	Registry DecoderRegistry
	Policy   *domain.ContextPolicy
	Timeout  time.Duration
	Logger   log.Logger
}

// New constructs a converter Service. A nil Registry gets its own
// empty registry, a zero Timeout falls back to DefaultTimeout, and a
// nil Logger to the global logger.
func New(opts Options) *Service {
	if opts.Registry == nil {
		opts.Registry = registry.New()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = log.GetLogger()
	}
	return &Service{
		registry: opts.Registry,
		policy:   opts.Policy.Clone(),
		timeout:  opts.Timeout,
		logger:   opts.Logger,
	}
}

// Convert runs the pipeline over one document. The chain and policy
// are snapshotted before the pipeline starts, so registrations or
// policy changes made mid-flight never affect this call. On timeout
// the whole call fails; no partial result is returned.
func (s *Service) Convert(ctx context.Context, doc domain.ZoneDocument) (domain.ConversionResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	chain := s.registry.Decoders()
	policy := s.policy.Clone()

	done := make(chan domain.ConversionResult, 1)
	go func() {
		done <- codec.Convert(doc, policy, chain, s.logger)
	}()

	select {
	case result := <-done:
		s.logger.Info(map[string]any{
			"zone":    result.Name,
			"records": len(result.Records),
			"raw":     len(doc.Records),
		}, "zone converted")
		return result, nil
	case <-ctx.Done():
		return domain.ConversionResult{}, fmt.Errorf("converting zone %s: %w", doc.Name, ctx.Err())
	}
}

// Register appends one custom decoder to the chain.
func (s *Service) Register(d domain.RecordDecoder) {
	s.registry.Register(d)
}

// RegisterAll appends custom decoders in order.
func (s *Service) RegisterAll(ds []domain.RecordDecoder) {
	s.registry.RegisterAll(ds)
}

// Decoders returns the currently registered chain snapshot.
func (s *Service) Decoders() []domain.RecordDecoder {
	return s.registry.Decoders()
}
