// Package assistant is the boundary to the external generative-language
// service: image-to-metadata extraction, place lookup, and conversational
// Q&A grounded in the aggregated inventory text.
package assistant

import "context"

// ImageSystemPrompt frames the metadata-extraction request.
const ImageSystemPrompt = `Eres un asistente experto en organización de hogar e inventarios.
Tu tarea es analizar fotos de objetos domésticos y devolver una descripción estructurada en formato JSON.
El idioma de salida debe ser ESPAÑOL.
Sé conciso y preciso.`

// AnalyzePrompt is the user-turn instruction attached to each photo.
const AnalyzePrompt = `Analiza esta imagen. Identifica el objeto principal. Dame un nombre corto, una descripción de 1 frase y 3-5 etiquetas relevantes para búsqueda.
Responde SOLO con un objeto JSON con las claves "name", "description" y "tags" (lista de strings).`

// ChatSystemPrompt pins the assistant's answers to the supplied inventory
// snapshot. The grounding is a contract on the model, not something the
// core enforces mechanically.
const ChatSystemPrompt = `Eres "Bartulos AI", un asistente inteligente de gestión de inventario personal.
Tu objetivo es ayudar al usuario a encontrar sus pertenencias basándote ÚNICAMENTE en la lista de inventario que se te proporciona.

REGLAS:
1. Responde siempre en ESPAÑOL.
2. Usa un tono útil, amable y conciso.
3. Si te preguntan "¿Dónde está X?", busca en la lista y responde con la jerarquía completa: Lugar > Caja > Objeto.
4. Si el objeto no está en la lista, dilo claramente: "No tengo registro de ese objeto en el inventario actual."
5. Puedes hacer resúmenes (ej: "Tienes 5 cajas en el sótano").
6. NO inventes información. Solo usa los datos provistos en el contexto.`

// Fixed fallback values. AI features are an enhancement, not the source of
// truth, so the gateway substitutes these instead of propagating failures.
const (
	FallbackName        = "Objeto Detectado"
	FallbackDescription = "No se pudo conectar con la IA para analizar la imagen. Por favor completa los detalles manualmente."
	FallbackAnswer      = "Error conectando con el cerebro digital. Verifica tu conexión o intenta más tarde."
	EmptyAnswer         = "Lo siento, no pude procesar la respuesta."
)

// Metadata is the structured description extracted from one item photo.
type Metadata struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Dimensions  string   `json:"dimensions,omitempty"`
	Weight      string   `json:"weight,omitempty"`
}

// FallbackMetadata is the record shown when extraction fails; the UI must
// always have something to display.
func FallbackMetadata() *Metadata {
	return &Metadata{
		Name:        FallbackName,
		Description: FallbackDescription,
		Tags:        []string{"manual"},
	}
}

// Place is the result of a best-effort address lookup.
type Place struct {
	Address    string `json:"address"`
	MapLinkURI string `json:"mapLinkUri"`
}

// Chat roles for prior turns.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one prior chat exchange. Calls are stateless: prior turns and the
// freshly rebuilt grounding context are resent every time.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Provider is the raw generative-language client. Implementations may
// fail; the Gateway converts every failure into the fixed fallbacks above.
type Provider interface {
	ExtractMetadata(ctx context.Context, imageData string) (*Metadata, error)
	ResolvePlace(ctx context.Context, query string) (*Place, error)
	AnswerQuestion(ctx context.Context, message string, turns []Turn, groundingContext string) (string, error)
}
