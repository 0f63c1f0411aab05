package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// DefaultSlugModel is used when no model is configured
const DefaultSlugModel = string(anthropic.ModelClaude_3_Haiku_20240307)

// LLMService turns menu names into slugs
type LLMService interface {
	GenerateSlug(ctx context.Context, name string) (string, error)
}

// anthropicService implements LLM service using Anthropic's SDK
type anthropicService struct {
	client *anthropic.Client
	model  string
}

// NewLLMService creates a slug generator. Without an API key slugs are
// derived locally from the name.
func NewLLMService(apiKey, model string) LLMService {
	if apiKey == "" {
		return localSlugService{}
	}
	if model == "" {
		model = DefaultSlugModel
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &anthropicService{
		client: &client,
		model:  model,
	}
}

// GenerateSlug asks the model for a short slug when the name is longer than
// three words; shorter names are sanitized directly
func (s *anthropicService) GenerateSlug(ctx context.Context, name string) (string, error) {
	words := strings.Fields(name)
	if len(words) <= 3 {
		return SanitizeSlug(name), nil
	}

	if s.client == nil {
		return "", fmt.Errorf("anthropic client is nil - service not properly initialized")
	}

	prompt := fmt.Sprintf(`Given this navigation menu name: "%s"

Generate a concise slug that is at most 3 words, uses only lowercase letters, numbers, and hyphens. The slug should capture the purpose of the menu while being brief and URL-friendly.

Return only the slug, nothing else.`, name)

	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(s.model),
		MaxTokens: 50,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call Anthropic API: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("empty response from API")
	}

	contentBlock := message.Content[0]
	if contentBlock.Type != "text" {
		return "", fmt.Errorf("expected text content block, got: %s", contentBlock.Type)
	}

	return SanitizeSlug(contentBlock.AsText().Text), nil
}

// localSlugService sanitizes names without calling out to a model
type localSlugService struct{}

func (localSlugService) GenerateSlug(_ context.Context, name string) (string, error) {
	return SanitizeSlug(name), nil
}

// SanitizeSlug lowercases name and collapses everything that is not a letter
// or digit into single hyphens
func SanitizeSlug(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	var result strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result.WriteRune(r)
		} else {
			result.WriteRune('-')
		}
	}
	slug = result.String()

	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")

	if slug == "" {
		slug = "untitled"
	}
	return slug
}
