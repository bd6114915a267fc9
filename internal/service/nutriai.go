package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/calorix/calorix/internal/models"
)

const systemInstruction = `Você é uma inteligência artificial especialista em Nutrição Esportiva e Clínica e Educadora Física.
Responda sempre em português do Brasil, com tom profissional, motivador e empático.
Mantenha respostas concisas para leitura em celular, mas completas em conteúdo.`

// FoodAnalysis is the structured guess returned for a food photo.
type FoodAnalysis struct {
	Name           string                 `json:"name"`
	Calories       int                    `json:"calories"`
	Protein        float64                `json:"protein"`
	Carbs          float64                `json:"carbs"`
	Fat            float64                `json:"fat"`
	Micronutrients *models.Micronutrients `json:"micronutrients,omitempty"`
}

// WorkoutAnalysis is the structured guess for a workout photo or a generated
// home workout.
type WorkoutAnalysis struct {
	Exercises []models.Exercise `json:"exercises"`
}

// NutriAI calls the inference API over HTTP. Request/response shapes follow
// the chat-completions convention.
type NutriAI struct {
	apiKey     string
	apiURL     string
	model      string
	httpClient *http.Client
}

var _ NutriAIInterface = (*NutriAI)(nil)

// NewNutriAI builds the client from the environment. The API key may come
// from NUTRIAI_API_KEY directly or from the file named by
// NUTRIAI_API_KEY_FILE.
func NewNutriAI() (*NutriAI, error) {
	apiKey := os.Getenv("NUTRIAI_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("NUTRIAI_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("NUTRIAI_API_KEY or NUTRIAI_API_KEY_FILE must be set")
		}
		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}
		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("NUTRIAI_API_URL")
	if apiURL == "" {
		apiURL = "https://api.deepseek.com/v1/chat/completions"
	}
	model := os.Getenv("NUTRIAI_MODEL")
	if model == "" {
		model = "deepseek-chat"
	}

	return &NutriAI{
		apiKey:     apiKey,
		apiURL:     apiURL,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Message is one chat-completions message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the chat-completions request body.
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
	Temperature    float64           `json:"temperature"`
}

func (s *NutriAI) complete(ctx context.Context, messages []Message, jsonResponse bool) (string, error) {
	reqBody := Request{
		Model:       s.model,
		Messages:    messages,
		Temperature: 0.7,
	}
	if jsonResponse {
		reqBody.ResponseFormat = map[string]string{"type": "json_object"}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("inference API returned status %d", resp.StatusCode)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}
	return result.Choices[0].Message.Content, nil
}

// Chat sends a user message with prior history and returns the reply text.
func (s *NutriAI) Chat(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	messages := []Message{{Role: "system", Content: systemInstruction}}
	for _, h := range history {
		role := "user"
		if h.Role == models.ChatRoleModel {
			role = "assistant"
		}
		messages = append(messages, Message{Role: role, Content: h.Text})
	}
	messages = append(messages, Message{Role: "user", Content: message})

	return s.complete(ctx, messages, false)
}

// AnalyzeFoodPhoto asks the model to identify the food in a JPEG image and
// estimate its nutrition. Returns nil when the image cannot be identified.
func (s *NutriAI) AnalyzeFoodPhoto(ctx context.Context, image []byte) (*FoodAnalysis, error) {
	prompt := fmt.Sprintf(`Identifique o alimento nesta foto (JPEG em base64 abaixo). Retorne APENAS um JSON com:
name (nome em pt-BR), calories (estimativa kcal), protein, carbs, fat (em gramas) e
micronutrients: { "vitaminC": mg, "iron": mg, "calcium": mg, "potassium": mg, "magnesium": mg }.
Se não for comida, retorne {"name": ""}.

%s`, base64.StdEncoding.EncodeToString(image))

	content, err := s.complete(ctx, []Message{{Role: "user", Content: prompt}}, true)
	if err != nil {
		return nil, err
	}

	var analysis FoodAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode food analysis: %w", err)
	}
	if analysis.Name == "" {
		return nil, nil
	}
	return &analysis, nil
}

// AnalyzeWorkoutPhoto extracts an exercise list from a workout photo.
// Returns nil when nothing recognizable is found.
func (s *NutriAI) AnalyzeWorkoutPhoto(ctx context.Context, image []byte) (*WorkoutAnalysis, error) {
	prompt := fmt.Sprintf(`Identifique os exercícios nesta foto de treino (JPEG em base64 abaixo). Retorne APENAS um JSON:
{"exercises": [{"name": "...", "sets": 3, "reps": "12"}]}.
Se não reconhecer um treino, retorne {"exercises": []}.

%s`, base64.StdEncoding.EncodeToString(image))

	content, err := s.complete(ctx, []Message{{Role: "user", Content: prompt}}, true)
	if err != nil {
		return nil, err
	}

	var analysis WorkoutAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode workout analysis: %w", err)
	}
	if len(analysis.Exercises) == 0 {
		return nil, nil
	}
	return &analysis, nil
}

// GenerateHomeWorkout builds a home workout for the given level, duration
// and available equipment.
func (s *NutriAI) GenerateHomeWorkout(ctx context.Context, level string, durationMinutes int, equipment string) (*WorkoutAnalysis, error) {
	prompt := fmt.Sprintf(`Monte um treino em casa para nível %q, duração de %d minutos, equipamento disponível: %q.
Retorne APENAS um JSON: {"exercises": [{"name": "...", "sets": 3, "reps": "12"}]}.`,
		level, durationMinutes, equipment)

	content, err := s.complete(ctx, []Message{{Role: "user", Content: prompt}}, true)
	if err != nil {
		return nil, err
	}

	var analysis WorkoutAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode workout plan: %w", err)
	}
	return &analysis, nil
}
