package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const promptTemplate = `Generate a single creative name and a short description for a restaurant dish based on this idea: %q.
The response format must be EXACTLY:
DISH NAME: [name of the dish]
DESCRIPTION: [description of the dish]`

// Suggestion is a parsed dish idea from the model
type Suggestion struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Suggester generates recipe ideas through an LLM. It touches no shared
// store and holds no lock: callers feed the result into AddRecipe (or
// not) on their own time, and abandoning the call leaves nothing behind.
type Suggester struct {
	model llms.Model
}

// New initializes the OpenAI-backed suggester
func New(apiKey, modelName string) (*Suggester, error) {
	llm, err := openai.New(
		openai.WithModel(modelName),
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize suggestion model: %w", err)
	}
	return &Suggester{model: llm}, nil
}

// NewWithModel wraps an existing model, mainly for tests
func NewWithModel(model llms.Model) *Suggester {
	return &Suggester{model: model}
}

// Suggest asks the model for one dish idea based on a free-text prompt
func (s *Suggester) Suggest(ctx context.Context, idea string) (Suggestion, error) {
	if strings.TrimSpace(idea) == "" {
		return Suggestion{}, fmt.Errorf("suggestion prompt is empty")
	}
	response, err := llms.GenerateFromSinglePrompt(ctx, s.model, fmt.Sprintf(promptTemplate, idea))
	if err != nil {
		return Suggestion{}, fmt.Errorf("generate suggestion: %w", err)
	}
	suggestion, err := Parse(response)
	if err != nil {
		return Suggestion{}, err
	}
	return suggestion, nil
}

// Parse extracts the two-line template from the model's response. The
// model occasionally pads the answer; only the tagged lines count.
func Parse(response string) (Suggestion, error) {
	var s Suggestion
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "DISH NAME:"):
			s.Name = strings.TrimSpace(line[len("DISH NAME:"):])
		case strings.HasPrefix(upper, "DESCRIPTION:"):
			s.Description = strings.TrimSpace(line[len("DESCRIPTION:"):])
		}
	}
	if s.Name == "" || s.Description == "" {
		return Suggestion{}, fmt.Errorf("response did not follow the expected template: %q", response)
	}
	return s, nil
}
