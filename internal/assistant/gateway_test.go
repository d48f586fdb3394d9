package assistant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// failingProvider fails every operation, standing in for a dead network or
// a broken API key.
type failingProvider struct{}

func (failingProvider) ExtractMetadata(context.Context, string) (*Metadata, error) {
	return nil, errors.New("connection refused")
}

func (failingProvider) ResolvePlace(context.Context, string) (*Place, error) {
	return nil, errors.New("connection refused")
}

func (failingProvider) AnswerQuestion(context.Context, string, []Turn, string) (string, error) {
	return "", errors.New("connection refused")
}

// emptyProvider succeeds but returns an empty answer.
type emptyProvider struct{ failingProvider }

func (emptyProvider) AnswerQuestion(context.Context, string, []Turn, string) (string, error) {
	return "", nil
}

func testGateway(p Provider) *Gateway {
	return NewGateway(p, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGatewayMetadataFallback(t *testing.T) {
	g := testGateway(failingProvider{})

	md := g.ExtractMetadata(context.Background(), "data:image/jpeg;base64,abc")

	assert.Equal(t, "Objeto Detectado", md.Name)
	assert.Equal(t, []string{"manual"}, md.Tags)
	assert.Equal(t, FallbackDescription, md.Description)
}

func TestGatewayPlaceEchoesQuery(t *testing.T) {
	g := testGateway(failingProvider{})

	place := g.ResolvePlace(context.Background(), "Calle Mayor 3, Madrid")

	assert.Equal(t, "Calle Mayor 3, Madrid", place.Address)
	assert.Empty(t, place.MapLinkURI)
}

func TestGatewayAnswerFallbacks(t *testing.T) {
	g := testGateway(failingProvider{})
	assert.Equal(t, FallbackAnswer, g.AnswerQuestion(context.Background(), "¿Dónde está el taladro?", nil, ""))

	g = testGateway(emptyProvider{})
	assert.Equal(t, EmptyAnswer, g.AnswerQuestion(context.Background(), "¿Dónde está el taladro?", nil, ""))
}

func TestGatewayPassesThroughSuccess(t *testing.T) {
	g := testGateway(Stub{})

	md := g.ExtractMetadata(context.Background(), "data:image/jpeg;base64,abc")
	assert.Equal(t, FallbackMetadata(), md)

	place := g.ResolvePlace(context.Background(), "Garaje de Ana")
	assert.Equal(t, "Garaje de Ana", place.Address)
}
