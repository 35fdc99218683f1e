package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"app/analytics"
	"app/models"
)

// HandleQuery answers a free-text question against the posted context.
// Keyword routing decides first; when no keyword group matches and a
// Gemini key is configured, the question falls through to the AI
// assistant. AI failures degrade to the canned answer, never to an
// error.
func (h *AnalyticsHandler) HandleQuery(c *fiber.Ctx) error {
	var req models.QueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	answer := analytics.AnswerQuery(req.Query, req.Context.Orders, req.Context.Products)

	if !answer.Matched && h.cfg.GeminiAPIKey != "" {
		if aiAnswer, err := h.generateAIAnswer(context.Background(), req.Query); err == nil {
			answer.Answer = aiAnswer
			answer.Confidence = 60
		} else {
			log.Printf("[QUERY] AI fallback failed: %v", err)
		}
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"answer":     answer.Answer,
		"confidence": answer.Confidence,
	})
}

// generateAIAnswer asks Gemini for a short answer when keyword routing
// could not place the question.
func (h *AnalyticsHandler) generateAIAnswer(ctx context.Context, query string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(h.cfg.GeminiAPIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create AI client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-flash")
	prompt := fmt.Sprintf(
		`You are a helpful assistant for a retail business. Answer the following question in one short sentence, in the same language as the question. If you cannot answer, say so. Question: "%s"`,
		query,
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate answer: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content received from AI")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return "", fmt.Errorf("no text content received from AI")
	}
	return text, nil
}
