package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tu-usuario/talento-pro/internal/application/dto"
	"github.com/tu-usuario/talento-pro/internal/application/ports"
	"github.com/tu-usuario/talento-pro/internal/domain"
)

// Verificar en tiempo de compilación que AnthropicService implementa ScoringService.
var _ ports.ScoringService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"
)

// AnthropicService adaptador que implementa ScoringService usando la API REST
// de Anthropic (Claude). Usa net/http de la librería estándar; no requiere el
// SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el ranker impone además un context.WithTimeout.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Score envía en una sola llamada todos los pares a puntuar y devuelve las
// entradas crudas del modelo. Cualquier fallo (red, HTTP != 200, cuerpo sin
// JSON) envuelve domain.ErrUpstream: el lote falla entero.
func (s *AnthropicService) Score(
	ctx context.Context,
	jobs []dto.JobDescriptor,
	candidates []dto.CandidateDescriptor,
) ([]dto.RawMatch, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("%w: ANTHROPIC_API_KEY no configurado", domain.ErrUpstream)
	}

	userContent, err := buildScoringInput(jobs, candidates)
	if err != nil {
		return nil, err
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 4096,
		System:    scoringSystemPrompt,
		Messages: []anthropicMessage{
			{Role: "user", Content: userContent},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("scoring: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("scoring: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrUpstream, ctx.Err())
		}
		return nil, fmt.Errorf("%w: llamada HTTP fallida: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrUpstream, err)
	}

	// Manejar errores HTTP de la API de Anthropic
	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("%w: Anthropic (%s): %s", domain.ErrUpstream, errResp.Error.Type, errResp.Error.Message)
		}
		return nil, fmt.Errorf("%w: Anthropic HTTP %d: %s", domain.ErrUpstream, resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return nil, fmt.Errorf("%w: deserializar respuesta Anthropic: %v", domain.ErrUpstream, err)
	}

	if len(anthResp.Content) == 0 {
		return nil, fmt.Errorf("%w: el modelo devolvió respuesta vacía", domain.ErrUpstream)
	}

	return parseMatches(anthResp.Content[0].Text)
}
