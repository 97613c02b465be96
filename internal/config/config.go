package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the service configuration, loaded from the environment. AWS and
// DynamoDB settings are handled separately by the database package since the
// AWS SDK has its own env conventions.
type Config struct {
	Port                int           `env:"PORT" envDefault:"8080"`
	MLServiceURL        string        `env:"ML_SERVICE_URL" envDefault:"http://localhost:8000"`
	PredictTimeout      time.Duration `env:"PREDICT_TIMEOUT" envDefault:"30s"`
	WorkerCount         int           `env:"WORKER_COUNT" envDefault:"4"`
	WorkerQueueCapacity int           `env:"WORKER_QUEUE_CAPACITY" envDefault:"64"`
}

func Load() (Config, error) {
	return env.ParseAs[Config]()
}
