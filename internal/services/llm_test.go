package services

import (
	"context"
	"testing"
)

func TestLLMService_GenerateSlug_ShortName(t *testing.T) {
	// Names of 3 words or less never reach the API
	llmService := NewLLMService("fake-api-key", "")

	testCases := []struct {
		name     string
		expected string
	}{
		{"Main Menu", "main-menu"},
		{"Footer", "footer"},
		{"One Two Three", "one-two-three"},
		{"Social@Links#Here", "social-links-here"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := llmService.GenerateSlug(context.Background(), tc.name)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}

			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}

func TestLLMService_WithoutAPIKeyIsLocal(t *testing.T) {
	llmService := NewLLMService("", "")

	if _, ok := llmService.(localSlugService); !ok {
		t.Fatalf("Expected local slug service, got %T", llmService)
	}

	result, err := llmService.GenerateSlug(context.Background(), "The Very Long Primary Navigation Menu")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result != "the-very-long-primary-navigation-menu" {
		t.Errorf("Unexpected slug %q", result)
	}
}

func TestSanitizeSlug(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"test@example.com", "test-example-com"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"--leading-and-trailing--", "leading-and-trailing"},
		{"", "untitled"},
		{"123Numbers", "123numbers"},
		{"mixedCASE", "mixedcase"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := SanitizeSlug(tc.input)
			if result != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, result)
			}
		})
	}
}
