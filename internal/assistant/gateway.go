package assistant

import (
	"context"
	"log/slog"
)

// Gateway wraps a Provider and guarantees a usable value on every call:
// provider failures are caught here and replaced with the fixed fallbacks,
// never surfaced to callers. No retries; a failed call needs a fresh
// user-initiated attempt.
type Gateway struct {
	provider Provider
	logger   *slog.Logger
}

func NewGateway(provider Provider, logger *slog.Logger) *Gateway {
	return &Gateway{provider: provider, logger: logger}
}

func (g *Gateway) ExtractMetadata(ctx context.Context, imageData string) *Metadata {
	md, err := g.provider.ExtractMetadata(ctx, imageData)
	if err != nil {
		g.logger.Warn("metadata extraction failed, using fallback", "error", err)
		return FallbackMetadata()
	}
	return md
}

// ResolvePlace degrades to echoing the query as the address.
func (g *Gateway) ResolvePlace(ctx context.Context, query string) *Place {
	place, err := g.provider.ResolvePlace(ctx, query)
	if err != nil {
		g.logger.Warn("place lookup failed, echoing query", "error", err)
		return &Place{Address: query, MapLinkURI: ""}
	}
	return place
}

func (g *Gateway) AnswerQuestion(ctx context.Context, message string, turns []Turn, groundingContext string) string {
	answer, err := g.provider.AnswerQuestion(ctx, message, turns, groundingContext)
	if err != nil {
		g.logger.Warn("assistant call failed, using apology", "error", err)
		return FallbackAnswer
	}
	if answer == "" {
		return EmptyAnswer
	}
	return answer
}
