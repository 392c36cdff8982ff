package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	response string
	err      error
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.response}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return f.response, f.err
}

func TestParse(t *testing.T) {
	s, err := Parse("DISH NAME: Smoked Lager Burger\nDESCRIPTION: A burger with a beer-infused glaze.")
	require.NoError(t, err)
	assert.Equal(t, "Smoked Lager Burger", s.Name)
	assert.Equal(t, "A burger with a beer-infused glaze.", s.Description)
}

func TestParseIgnoresPadding(t *testing.T) {
	response := "Sure! Here is an idea:\n\nDISH NAME: Citrus Glow\nDESCRIPTION: Fresh orange over crushed ice.\n\nEnjoy!"
	s, err := Parse(response)
	require.NoError(t, err)
	assert.Equal(t, "Citrus Glow", s.Name)
	assert.Equal(t, "Fresh orange over crushed ice.", s.Description)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("I cannot help with that.")
	assert.Error(t, err)

	_, err = Parse("DISH NAME: Lonely Name")
	assert.Error(t, err)
}

func TestSuggest(t *testing.T) {
	model := &fakeModel{response: "DISH NAME: Bacon Tower\nDESCRIPTION: Stacked and shameless."}
	s := NewWithModel(model)

	suggestion, err := s.Suggest(context.Background(), "something with bacon")
	require.NoError(t, err)
	assert.Equal(t, "Bacon Tower", suggestion.Name)
	assert.Equal(t, "Stacked and shameless.", suggestion.Description)
}

func TestSuggestEmptyIdea(t *testing.T) {
	s := NewWithModel(&fakeModel{})
	_, err := s.Suggest(context.Background(), "   ")
	assert.Error(t, err)
}

func TestSuggestModelError(t *testing.T) {
	s := NewWithModel(&fakeModel{err: errors.New("rate limited")})
	_, err := s.Suggest(context.Background(), "anything")
	assert.Error(t, err)
}
