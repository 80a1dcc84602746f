package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictSuccess(t *testing.T) {
	var received Features
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/career/predict", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"predicted_course": "B.Tech",
			"confidence": 0.91,
			"top_predictions": [
				{"course": "B.Tech", "probability": 0.91},
				{"course": "BCA", "probability": 0.05}
			]
		}`))
	}))
	defer server.Close()

	client := NewCareerMLClient(server.URL)
	result, err := client.Predict(Features{Gender: "Male", Interest: "Technology", Skills: "Programming", Grades: 80})
	require.NoError(t, err)

	assert.Equal(t, "B.Tech", result.PredictedCourse)
	assert.Equal(t, 0.91, result.Confidence)
	require.Len(t, result.TopPredictions, 2)
	assert.Equal(t, "BCA", result.TopPredictions[1].Course)

	assert.Equal(t, "Technology", received.Interest)
	assert.Equal(t, 80.0, received.Grades)
}

func TestPredictUpstreamErrorCarriesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail": "model not loaded"}`))
	}))
	defer server.Close()

	client := NewCareerMLClient(server.URL)
	_, err := client.Predict(Features{})

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusInternalServerError, upstreamErr.StatusCode)
	assert.Equal(t, `{"detail": "model not loaded"}`, upstreamErr.Body)
}

func TestPredictMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	client := NewCareerMLClient(server.URL)
	_, err := client.Predict(Features{})

	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestPredictConnectionRefused(t *testing.T) {
	client := NewCareerMLClient("http://127.0.0.1:1")
	_, err := client.Predict(Features{})

	var upstreamErr *UpstreamError
	assert.ErrorAs(t, err, &upstreamErr)
}
