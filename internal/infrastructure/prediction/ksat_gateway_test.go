package prediction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bhavyaa-1001/Drop2Smart-sub001/internal/domain/entities"
)

func TestKsatGateway_PredictKsat(t *testing.T) {
	t.Run("successful prediction", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/predict-ksat" {
				t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			var in predictRequest
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if in.Latitude != 19.07 || in.Longitude != 72.87 {
				t.Fatalf("unexpected coordinates %+v", in)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"ksat": 123.4,
				"confidence": 0.91,
				"soil_properties": {"clay": 18.5, "silt": 30.0, "sand": 51.5},
				"model_info": {"model_type": "XGBoost", "version": "1.0"}
			}`))
		}))
		defer srv.Close()

		g := NewKsatGateway(srv.URL, 5*time.Second)
		p := g.PredictKsat(context.Background(), 19.07, 72.87)

		if p.Value != 123.4 || p.Confidence != 0.91 {
			t.Fatalf("unexpected prediction %+v", p)
		}
		if p.Source != "XGBoost v1.0" {
			t.Fatalf("unexpected source %q", p.Source)
		}
		if p.SoilProperties["clay"] != 18.5 {
			t.Fatalf("soil properties not carried through: %+v", p.SoilProperties)
		}
	})

	t.Run("source without version", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"ksat": 42, "confidence": 0.6, "model_info": {"model_type": "XGBoost"}}`))
		}))
		defer srv.Close()

		p := NewKsatGateway(srv.URL, 5*time.Second).PredictKsat(context.Background(), 1, 1)
		if p.Source != "XGBoost" {
			t.Fatalf("unexpected source %q", p.Source)
		}
	})

	t.Run("non-success status falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "model not loaded", http.StatusInternalServerError)
		}))
		defer srv.Close()

		p := NewKsatGateway(srv.URL, 5*time.Second).PredictKsat(context.Background(), 1, 1)
		if !isFallback(p) {
			t.Fatalf("expected fallback, got %+v", p)
		}
	})

	t.Run("malformed body falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer srv.Close()

		p := NewKsatGateway(srv.URL, 5*time.Second).PredictKsat(context.Background(), 1, 1)
		if !isFallback(p) {
			t.Fatalf("expected fallback, got %+v", p)
		}
	})

	t.Run("missing ksat falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"confidence": 0.9}`))
		}))
		defer srv.Close()

		p := NewKsatGateway(srv.URL, 5*time.Second).PredictKsat(context.Background(), 1, 1)
		if !isFallback(p) {
			t.Fatalf("expected fallback, got %+v", p)
		}
	})

	t.Run("unreachable service falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		srv.Close()

		p := NewKsatGateway(srv.URL, time.Second).PredictKsat(context.Background(), 1, 1)
		if !isFallback(p) {
			t.Fatalf("expected fallback, got %+v", p)
		}
	})

	t.Run("mock mode skips the service", func(t *testing.T) {
		t.Setenv("PREDICTION_GATEWAY_MOCK", "true")

		p := NewKsatGateway("http://unused", time.Second).PredictKsat(context.Background(), 1, 1)
		if p.Source != "mock" || p.Value != 85 {
			t.Fatalf("expected mock prediction, got %+v", p)
		}
	})
}

func isFallback(p entities.Prediction) bool {
	return p.Source == entities.PredictionSourceFallback && p.Value == fallbackPrediction.Value && p.Confidence == fallbackPrediction.Confidence
}

func TestFallbackPrediction(t *testing.T) {
	if fallbackPrediction.Value != 50 || fallbackPrediction.Confidence != 0.5 {
		t.Fatalf("unexpected fallback values %+v", fallbackPrediction)
	}
	if fallbackPrediction.Source != entities.PredictionSourceFallback {
		t.Fatalf("unexpected fallback source %q", fallbackPrediction.Source)
	}
}
