package assistant

import "context"

// Stub is the deterministic offline Provider: it returns the same values
// the Gateway falls back to. It backs the server when no API key is
// configured and doubles as the test implementation.
type Stub struct{}

func (Stub) ExtractMetadata(context.Context, string) (*Metadata, error) {
	return FallbackMetadata(), nil
}

func (Stub) ResolvePlace(_ context.Context, query string) (*Place, error) {
	return &Place{Address: query, MapLinkURI: ""}, nil
}

func (Stub) AnswerQuestion(context.Context, string, []Turn, string) (string, error) {
	return FallbackAnswer, nil
}
