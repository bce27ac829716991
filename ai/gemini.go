package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"taskbazaar/models"
)

const defaultModel = "gemini-2.5-flash"

// Gemini implements Assistant on Google's Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates the production assistant. model falls back to
// gemini-2.5-flash when empty.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

var ideaSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "A short, catchy title for the task. Maximum 10 words.",
			},
			"description": {
				Type:        genai.TypeString,
				Description: "A brief, clear description of what the user needs to do. Maximum 40 words.",
			},
			"type": {
				Type:        genai.TypeString,
				Enum:        taskTypeNames(),
				Description: "The most fitting category for this task.",
			},
			"proof_type": {
				Type:        genai.TypeString,
				Enum:        proofTypeNames(),
				Description: "The type of proof required from the user.",
			},
			"proof_question": {
				Type:        genai.TypeString,
				Description: "A clear question or instruction for the user on what proof to submit.",
			},
		},
		Required: []string{"title", "description", "type", "proof_type", "proof_question"},
	},
}

func taskTypeNames() []string {
	out := make([]string, len(models.TaskTypes))
	for i, t := range models.TaskTypes {
		out[i] = string(t)
	}
	return out
}

func proofTypeNames() []string {
	out := make([]string, len(models.ProofTypes))
	for i, p := range models.ProofTypes {
		out[i] = string(p)
	}
	return out
}

// GenerateTaskIdeas asks the model for exactly three diverse task ideas
// constrained by the response schema, then drops anything that fails
// enum validation.
func (g *Gemini) GenerateTaskIdeas(ctx context.Context, goal string) ([]models.TaskIdea, error) {
	prompt := fmt.Sprintf(`Based on the following project goal, generate exactly 3 diverse micro-task ideas that a project owner could post on a task marketplace.
The ideas should be simple, clear, and actionable for users.
Ensure the 'type' and 'proof_type' for each task are one of the allowed enum values.
The 'proof_question' must be a direct instruction to the user.

Project Goal: %q`, goal)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   ideaSchema,
			Temperature:      genai.Ptr[float32](0.8),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("idea generation failed: %w", err)
	}

	return parseIdeas([]byte(resp.Text()))
}

// parseIdeas decodes the model's JSON and silently drops invalid items.
func parseIdeas(raw []byte) ([]models.TaskIdea, error) {
	var ideas []models.TaskIdea
	if err := json.Unmarshal(raw, &ideas); err != nil {
		return nil, fmt.Errorf("invalid idea response: %w", err)
	}
	out := make([]models.TaskIdea, 0, len(ideas))
	for _, idea := range ideas {
		if idea.Valid() {
			out = append(out, idea)
		}
	}
	return out, nil
}

var hashtagRe = regexp.MustCompile(`#\w+`)

// VerifySubmission asks the model for a single APPROVE/REJECT verdict on a
// link share. The task description must also carry a hashtag for the share
// to be checkable at all.
func (g *Gemini) VerifySubmission(ctx context.Context, task models.Task, proof models.Proof) (bool, error) {
	if !Verifiable(task, proof) {
		return false, nil
	}

	prompt := fmt.Sprintf(`Analyze the following micro-task and the user's submission.
The goal is to determine if the submission likely meets the task requirements.
Respond with only a single word: "APPROVE" or "REJECT".

Task Description: %q
User Submitted Link: %q

Analysis Criteria:
1. Does the link appear to be a valid URL for a social media platform (like twitter.com, facebook.com, etc.)?
2. Based on the task description, does the URL plausibly fulfill the request?

Your response must be "APPROVE" or "REJECT".`, task.Description, proof.Link)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.1),
			// Low latency needed; the verdict is a single word.
			ThinkingConfig: &genai.ThinkingConfig{ThinkingBudget: genai.Ptr[int32](0)},
		},
	)
	if err != nil {
		return false, fmt.Errorf("verification failed: %w", err)
	}

	decision := strings.ToUpper(strings.TrimSpace(resp.Text()))
	return decision == "APPROVE" && hashtagRe.MatchString(task.Description), nil
}
