package gemini

import (
	"context"

	"github.com/mwalkowski/laradoc"
	"google.golang.org/genai"
)

// Ensure Generator implements laradoc.Generator at compile time.
var _ laradoc.Generator = (*Generator)(nil)

// Generator implements laradoc.Generator using the Gemini API.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// Generate runs one model call. Conversation history is sent as prior
// user and model turns ahead of the prompt.
func (g *Generator) Generate(ctx context.Context, req laradoc.GenerateRequest) (string, error) {
	if req.Model == "" {
		return "", laradoc.Errorf(laradoc.EINVALID, "model required")
	}
	if req.Prompt == "" {
		return "", laradoc.Errorf(laradoc.EINVALID, "prompt required")
	}

	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, turn := range req.History {
		role := genai.Role(genai.RoleUser)
		if turn.Role == laradoc.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(req.Prompt, genai.RoleUser))

	config := &genai.GenerateContentConfig{}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}
	if req.Temperature > 0 {
		temp := req.Temperature
		config.Temperature = &temp
	}

	result, err := g.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", laradoc.Errorf(laradoc.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}
