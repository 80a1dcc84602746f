package services

import (
	"encoding/json"

	"github.com/go-resty/resty/v2"
)

const predictPath = "/api/career/predict"

// Features is the input vector sent to the career inference service.
type Features struct {
	Gender   string  `json:"gender"`
	Interest string  `json:"interest"`
	Skills   string  `json:"skills"`
	Grades   float64 `json:"grades"`
}

// TopPrediction is one ranked alternative from the model.
type TopPrediction struct {
	Course      string  `json:"course"`
	Probability float64 `json:"probability"`
}

// PredictionResult is the decoded inference response.
type PredictionResult struct {
	PredictedCourse string          `json:"predicted_course"`
	Confidence      float64         `json:"confidence"`
	TopPredictions  []TopPrediction `json:"top_predictions"`
}

// MLClient calls the external career inference service.
type MLClient interface {
	Predict(features Features) (*PredictionResult, error)
}

// CareerMLClient is the HTTP implementation of MLClient. It performs one
// synchronous call per Predict with no retries; callers that need bounded
// latency wrap it with their own timeout.
type CareerMLClient struct {
	BaseURL string
	client  *resty.Client
}

func NewCareerMLClient(baseURL string) *CareerMLClient {
	return &CareerMLClient{
		BaseURL: baseURL,
		client:  resty.New(),
	}
}

func (c *CareerMLClient) Predict(features Features) (*PredictionResult, error) {
	resp, err := c.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(features).
		Post(c.BaseURL + predictPath)
	if err != nil {
		return nil, &UpstreamError{Body: err.Error()}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var result PredictionResult
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, &DecodeError{Cause: err}
	}

	return &result, nil
}
