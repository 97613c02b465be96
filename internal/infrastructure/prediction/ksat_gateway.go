package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/usecase/interfaces"
)

const (
	defaultPredictTimeout = 30 * time.Second
	predictPath           = "/predict-ksat"
)

// fallbackPrediction is the fixed conservative default returned whenever the
// ML service cannot supply a prediction. It lets the pipeline complete in
// degraded mode instead of failing the job.
var fallbackPrediction = entities.Prediction{
	Value:      50,
	Confidence: 0.5,
	Source:     entities.PredictionSourceFallback,
}

// KsatGateway calls the Drop2Smart ML service for a soil infiltration
// prediction. A single attempt is made per job; every failure mode
// (timeout, transport error, non-2xx, malformed body) is logged and absorbed
// into the fallback prediction.
type KsatGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IPredictionGateway = (*KsatGateway)(nil)

func NewKsatGateway(baseURL string, timeout time.Duration) *KsatGateway {
	if timeout <= 0 {
		timeout = defaultPredictTimeout
	}
	if isPredictionGatewayMockEnabled() {
		log.Printf("[prediction][gateway] mock mode enabled")
		return &KsatGateway{mockMode: true}
	}

	log.Printf("[prediction][gateway] ML service client initialized base_url=%s timeout=%s", baseURL, timeout)
	return &KsatGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type predictResponse struct {
	Ksat           float64            `json:"ksat"`
	Confidence     float64            `json:"confidence"`
	SoilProperties map[string]float64 `json:"soil_properties"`
	ModelInfo      struct {
		ModelType string `json:"model_type"`
		Version   string `json:"version"`
	} `json:"model_info"`
}

func (g *KsatGateway) PredictKsat(ctx context.Context, latitude, longitude float64) entities.Prediction {
	if g.mockMode {
		return entities.Prediction{
			Value:      85,
			Confidence: 0.8,
			Source:     "mock",
			SoilProperties: map[string]float64{
				"clay": 20, "silt": 35, "sand": 45,
			},
		}
	}

	body, err := json.Marshal(predictRequest{Latitude: latitude, Longitude: longitude})
	if err != nil {
		log.Printf("[prediction][gateway] request marshal failed err=%v", err)
		return fallbackPrediction
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+predictPath, bytes.NewReader(body))
	if err != nil {
		log.Printf("[prediction][gateway] request build failed err=%v", err)
		return fallbackPrediction
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Printf("[prediction][gateway] ML service unavailable lat=%.4f lon=%.4f err=%v; using fallback", latitude, longitude, err)
		return fallbackPrediction
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[prediction][gateway] ML service non-success status=%d lat=%.4f lon=%.4f; using fallback", resp.StatusCode, latitude, longitude)
		return fallbackPrediction
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("[prediction][gateway] response decode failed err=%v; using fallback", err)
		return fallbackPrediction
	}
	if out.Ksat <= 0 {
		log.Printf("[prediction][gateway] response missing ksat value; using fallback")
		return fallbackPrediction
	}

	source := out.ModelInfo.ModelType
	if source == "" {
		source = "ml-service"
	} else if out.ModelInfo.Version != "" {
		source = fmt.Sprintf("%s v%s", source, out.ModelInfo.Version)
	}

	log.Printf("[prediction][gateway] prediction ok ksat=%.2f confidence=%.2f source=%s", out.Ksat, out.Confidence, source)
	return entities.Prediction{
		Value:          out.Ksat,
		Confidence:     out.Confidence,
		Source:         source,
		SoilProperties: out.SoilProperties,
	}
}

func isPredictionGatewayMockEnabled() bool {
	for _, key := range []string{"PREDICTION_GATEWAY_MOCK", "ML_SERVICE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
