package assistant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeModels struct {
	model    string
	prompt   string
	deadline bool
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	_, f.deadline = ctx.Deadline()
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText(text, genai.RoleModel)}},
	}
}

func TestGemini_Generate(t *testing.T) {
	fake := &fakeModels{resp: textResponse("  - wrap it\n")}
	g := &Gemini{models: fake, model: "gemini-test", timeout: time.Second}

	text, err := g.Generate(context.Background(), "pack a vase")
	require.NoError(t, err)

	assert.Equal(t, "- wrap it", text)
	assert.Equal(t, "gemini-test", fake.model)
	assert.Equal(t, "pack a vase", fake.prompt)
	assert.True(t, fake.deadline, "call must be bounded by the timeout")
}

func TestGemini_Errors(t *testing.T) {
	apiErr := errors.New("quota exceeded")

	testCases := []struct {
		name    string
		models  contentGenerator
		wantErr error
	}{
		{name: "not configured", models: nil, wantErr: ErrNotConfigured},
		{name: "api error", models: &fakeModels{err: apiErr}, wantErr: apiErr},
		{name: "empty response", models: &fakeModels{resp: textResponse("   ")}, wantErr: ErrEmptyResponse},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := &Gemini{models: tc.models, model: "gemini-test"}
			_, err := g.Generate(context.Background(), "prompt")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
