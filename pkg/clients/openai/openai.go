package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/orionbeers/planting-backend/internal/domain/models"
)

const (
	apiURL            = "https://api.openai.com/v1/chat/completions"
	baselineMaxTokens = 500
	forecastMaxTokens = 3000
)

// Client defines the LLM operations the prediction flow delegates to.
type Client interface {
	BestConditions(ctx context.Context, cropKey string) (*CropConditions, error)
	MonthForecast(ctx context.Context, req ForecastRequest) ([]models.ForecastDay, error)
}

// CropConditions is the model-synthesized optimal establishment-phase
// environment for a crop.
type CropConditions struct {
	CropName          string  `json:"crop_name"`
	Temperature       float64 `json:"temperature"`
	Humidity          float64 `json:"humidity"`
	RootSoilMoisture  float64 `json:"root_soil_moisture"`
	TopSoilMoisture   float64 `json:"top_soil_moisture"`
	SoilTemperature   float64 `json:"soil_temperature"`
	RainPrecipitation float64 `json:"rain_precipitation"`
	SnowPrecipitation float64 `json:"snow_precipitation"`
}

// ForecastRequest carries everything the forecast prompt embeds.
type ForecastRequest struct {
	Baseline    models.CropBaseline
	DatasetJSON json.RawMessage // month-filtered NASA POWER dataset
	MonthNumber string          // "01".."12"
	Year        int             // forecast is produced for Year+1
}

type apiClient struct {
	httpClient *resty.Client
	model      string
}

// NewClient creates a configured OpenAI chat-completions client.
func NewClient(apiKey, model string) Client {
	client := resty.New().
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second)

	return &apiClient{httpClient: client, model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// BestConditions asks the model to synthesize a crop baseline. A nil result
// never comes back without an error; the caller aborts on failure, no retry.
func (c *apiClient) BestConditions(ctx context.Context, cropKey string) (*CropConditions, error) {
	content, err := c.complete(ctx, baselineSystemPrompt, buildBaselinePrompt(cropKey), baselineMaxTokens)
	if err != nil {
		return nil, err
	}

	var conditions CropConditions
	if err := json.Unmarshal([]byte(content), &conditions); err != nil {
		return nil, fmt.Errorf("unmarshal crop conditions: %w (response was: %s)", err, content)
	}

	return &conditions, nil
}

// MonthForecast asks the model for a climatological daily forecast plus a 0-1
// suitability status per day. An empty array is a valid result when the
// requested month is absent from the dataset.
func (c *apiClient) MonthForecast(ctx context.Context, req ForecastRequest) ([]models.ForecastDay, error) {
	content, err := c.complete(ctx, forecastSystemPrompt, buildForecastPrompt(req), forecastMaxTokens)
	if err != nil {
		return nil, err
	}

	var forecast []models.ForecastDay
	if err := json.Unmarshal([]byte(content), &forecast); err != nil {
		return nil, fmt.Errorf("unmarshal forecast array: %w (response was: %s)", err, content)
	}

	return forecast, nil
}

func (c *apiClient) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	reqBody := chatRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	var respBody chatResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(apiURL)
	if err != nil {
		return "", fmt.Errorf("openai api call: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("openai api error: %s", resp.String())
	}
	if len(respBody.Choices) == 0 {
		return "", fmt.Errorf("empty response from model")
	}

	return stripCodeFences(respBody.Choices[0].Message.Content), nil
}

// stripCodeFences removes markdown code blocks the model occasionally wraps
// JSON output in.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
