package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/kashyap-d/Solo-Suite-sub000/internal/dtos"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the Gemini client. Returns nil when no API key
// is configured; AI task generation is then unavailable and everything else
// keeps working.
func NewLLMService(model string) *LLMService {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  GEMINI_API_KEY not set, AI task generation disabled")
		return nil
	}

	ctx := context.Background()
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		log.Printf("⚠️  Failed to create Gemini client, AI task generation disabled: %v", err)
		return nil
	}

	return &LLMService{Client: llm}
}

const taskGenerationPrompt = `
You are a project planning assistant for student freelancers. Break the goal
below into %d concrete, actionable tasks.

### INSTRUCTIONS:
1. Each task must be something a single person can start immediately.
2. Order tasks so earlier ones unblock later ones.
3. **Format** the output as a valid JSON array only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA (one object per task):
{
    "title": "Short imperative task name",
    "description": "One or two sentences of concrete detail",
    "priority": "low | medium | high"
}

### CONSTRAINT:
Emit exactly %d tasks. Do not invent requirements that are not implied by the goal.

### GOAL:
%s
`

// GenerateTasks asks the model for a task breakdown of the goal and parses
// the strict-JSON reply.
func (s *LLMService) GenerateTasks(ctx context.Context, goal string, count int) ([]dtos.GeneratedTask, error) {
	prompt := fmt.Sprintf(taskGenerationPrompt, count, count, goal)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return nil, err
	}
	return ParseGeneratedTasks(resp)
}

// ParseGeneratedTasks decodes the model reply. Models occasionally wrap JSON
// in markdown fences despite instructions, so everything outside the
// outermost brackets is discarded first.
func ParseGeneratedTasks(raw string) ([]dtos.GeneratedTask, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return nil, fmt.Errorf("model reply contains no JSON array")
	}

	var tasks []dtos.GeneratedTask
	if err := json.Unmarshal([]byte(raw[start:end+1]), &tasks); err != nil {
		return nil, fmt.Errorf("decode generated tasks: %w", err)
	}

	out := tasks[:0]
	for _, t := range tasks {
		if strings.TrimSpace(t.Title) == "" {
			continue
		}
		switch t.Priority {
		case "low", "medium", "high":
		default:
			t.Priority = "medium"
		}
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model reply contained no usable tasks")
	}
	return out, nil
}
