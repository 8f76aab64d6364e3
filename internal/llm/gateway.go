// Package llm fronts the model providers with a single call surface. The
// gateway owns provider selection, outbound rate limiting and the fence
// cleanup that turns a raw completion into parseable JSON text.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/qihang-dev/qihang/internal/llm/provider"
	"github.com/qihang-dev/qihang/pkg/observability"
)

// ErrUnsupportedProvider is returned when the requested provider name is not
// registered.
var ErrUnsupportedProvider = errors.New("unsupported model provider")

// Gateway routes generation requests to a registered provider.
type Gateway struct {
	registry *provider.Registry
	limiter  *rate.Limiter
	log      *zap.SugaredLogger
}

// NewGateway creates a gateway over the given registry. limiter may be nil
// to disable outbound rate limiting.
func NewGateway(registry *provider.Registry, limiter *rate.Limiter, log *zap.SugaredLogger) *Gateway {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Gateway{
		registry: registry,
		limiter:  limiter,
		log:      log,
	}
}

// Supports reports whether a provider with the given name is registered.
func (g *Gateway) Supports(name string) bool {
	return g.registry.Has(name)
}

// Generate sends the instruction to the named provider and returns the
// cleaned text payload. The text has markdown fences stripped but is not
// otherwise validated; the caller parses it.
func (g *Gateway) Generate(ctx context.Context, providerName, instruction string) (string, error) {
	p, ok := g.registry.Get(providerName)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedProvider, providerName)
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limit wait: %w", err)
		}
	}

	start := time.Now()
	raw, err := p.Generate(ctx, instruction)
	elapsed := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
	}
	observability.RecordModelCall(providerName, status, elapsed)

	if err != nil {
		g.log.Warnw("model call failed",
			"provider", providerName,
			"duration", elapsed,
			"error", err)
		return "", err
	}

	g.log.Debugw("model call completed",
		"provider", providerName,
		"duration", elapsed,
		"response_bytes", len(raw))

	return stripFence(raw), nil
}

// stripFence removes a surrounding markdown code fence. Models wrap JSON in
// ```json blocks despite being told not to.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}
	return strings.TrimSpace(s)
}
