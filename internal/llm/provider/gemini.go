package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Gemini calls the generateContent REST API directly and extracts
// candidates[0].content.parts[].text.
type Gemini struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGemini creates a Gemini provider. baseURL overrides the default
// endpoint when non-empty (used in tests).
func NewGemini(apiKey, baseURL, model string) *Gemini {
	base := geminiBaseURL
	if baseURL != "" {
		base = strings.TrimRight(baseURL, "/")
	}
	return &Gemini{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

// Name returns "gemini".
func (g *Gemini) Name() string { return "gemini" }

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends the instruction as a single-part content and returns the
// concatenated text of the first candidate.
func (g *Gemini) Generate(ctx context.Context, instruction string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: instruction}}},
		},
		GenerationConfig: geminiGenerationConfig{
			Temperature:      0.8,
			ResponseMimeType: "application/json",
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", NewError("gemini", ErrorCodeInvalidRequest, "marshal request: "+err.Error(), err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", NewError("gemini", ErrorCodeInvalidRequest, "build request: "+err.Error(), err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", NewError("gemini", ErrorCodeTimeout, err.Error(), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", NewError("gemini", ErrorCodeServerError, "read response: "+err.Error(), err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", g.errorFromResponse(resp.StatusCode, body)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", NewError("gemini", ErrorCodeServerError, "decode response: "+err.Error(), err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", NewError("gemini", ErrorCodeEmptyResponse, "no candidates in response", nil)
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

func (g *Gemini) errorFromResponse(status int, body []byte) error {
	var parsed geminiResponse
	msg := fmt.Sprintf("unexpected status %d", status)
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != nil && parsed.Error.Message != "" {
		msg = parsed.Error.Message
	}
	return &Error{
		Provider:   "gemini",
		Code:       codeForStatus(status),
		Message:    msg,
		StatusCode: status,
	}
}
