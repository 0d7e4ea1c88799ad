package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"quizdesk/config"
	"quizdesk/internal/dto"
)

const extractPrompt = `You are a quiz extraction AI. Analyze this document and extract ALL MCQ (Multiple Choice Questions) from it.

Rules:
- Extract EVERY question found in the document
- Each question must have exactly 4 options (A, B, C, D)
- If correct answers are marked/indicated anywhere in the document, identify them
- If correct answers are NOT found, set correct_option to null
- Read the document carefully including any answer keys, solutions, or marked answers
- Support both typed text and scanned/image-based PDFs

Return a JSON object with this exact structure (no markdown, no code blocks, just pure JSON):
{
  "title": "Quiz title extracted or generated from content",
  "questions": [
    {
      "question_text": "The question text",
      "option_a": "Option A text",
      "option_b": "Option B text",
      "option_c": "Option C text",
      "option_d": "Option D text",
      "correct_option": "A" or "B" or "C" or "D" or null
    }
  ],
  "has_answers": true or false
}`

// ExtractService pulls MCQ question sets out of uploaded PDF/TXT documents
// using Gemini.
type ExtractService interface {
	ExtractQuiz(ctx context.Context, req dto.ExtractRequestDTO) (*dto.ExtractResultDTO, error)
}

type extractService struct {
	model *genai.GenerativeModel
	cfg   *config.Config
}

func NewExtractService(cfg *config.Config) (ExtractService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Quiz extraction will be non-functional.")
		return &extractService{cfg: cfg, model: nil}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel("gemini-2.5-flash")
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"
	return &extractService{model: model, cfg: cfg}, nil
}

func (s *extractService) ExtractQuiz(ctx context.Context, req dto.ExtractRequestDTO) (*dto.ExtractResultDTO, error) {
	if s.model == nil {
		return nil, fmt.Errorf("extraction service unavailable: Gemini client not initialized")
	}
	if req.PDFBase64 == "" {
		return nil, fmt.Errorf("%w: no document data provided", ErrInvalidInput)
	}

	document, err := base64.StdEncoding.DecodeString(req.PDFBase64)
	if err != nil {
		return nil, fmt.Errorf("%w: document is not valid base64", ErrInvalidInput)
	}

	mimeType := "application/pdf"
	if strings.HasSuffix(strings.ToLower(req.FileName), ".txt") {
		mimeType = "text/plain"
	}

	resp, err := s.model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: document},
		genai.Text(extractPrompt),
	)
	if err != nil {
		log.Error().Err(err).Str("file_name", req.FileName).Msg("ExtractQuiz: Gemini call failed")
		return nil, wrapGenerateError(err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("gemini returned no content")
	}

	result, err := parseExtractResponse(text)
	if err != nil {
		log.Error().Err(err).Msg("ExtractQuiz: failed to parse Gemini response")
		return nil, err
	}

	log.Info().Int("questions", len(result.Questions)).Bool("has_answers", result.HasAnswers).Msg("Quiz extracted from document")
	return result, nil
}

// wrapGenerateError classifies upstream failures. Quota exhaustion is
// surfaced as ErrRateLimited so the caller can pass the 429 through instead
// of reporting a server error.
func wrapGenerateError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return fmt.Errorf("%w: gemini quota exhausted, retry later", ErrRateLimited)
	}
	return fmt.Errorf("gemini extraction failed: %w", err)
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}

// parseExtractResponse decodes the model's JSON, tolerating markdown code
// fences the model sometimes wraps its output in.
func parseExtractResponse(raw string) (*dto.ExtractResultDTO, error) {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```json")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	var result dto.ExtractResultDTO
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("gemini response is not valid JSON: %w", err)
	}
	if len(result.Questions) == 0 {
		return nil, fmt.Errorf("no questions found in the document")
	}
	return &result, nil
}
