package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/application/ports"
	"github.com/tu-usuario/talento-pro/internal/domain"
)

// Verificar en tiempo de compilación que GeminiService implementa ScoringService.
var _ ports.ScoringService = (*GeminiService)(nil)

// GeminiService adaptador que implementa ScoringService sobre el SDK oficial
// google.golang.org/genai. Con response_mime_type=application/json Gemini
// devuelve JSON puro, sin bloques de markdown que limpiar.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.0-flash".
func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("scoring: GEMINI_API_KEY no configurado")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("scoring: crear cliente genai: %w", err)
	}

	return &GeminiService{client: client, model: model}, nil
}

// Score envía el lote completo a Gemini y devuelve las entradas crudas.
// Cualquier fallo envuelve domain.ErrUpstream.
func (s *GeminiService) Score(
	ctx context.Context,
	jobs []dto.JobDescriptor,
	candidates []dto.CandidateDescriptor,
) ([]dto.RawMatch, error) {
	userContent, err := buildScoringInput(jobs, candidates)
	if err != nil {
		return nil, err
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: scoringSystemPrompt}},
		},
		ResponseMIMEType: "application/json",
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(userContent), cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: Gemini generateContent: %v", domain.ErrUpstream, err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			builder.WriteString(part.Text)
		}
	}

	rawText := strings.TrimSpace(builder.String())
	if rawText == "" {
		return nil, fmt.Errorf("%w: el modelo devolvió respuesta vacía", domain.ErrUpstream)
	}

	return parseMatches(rawText)
}
