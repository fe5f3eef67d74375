package storage

import (
	"time"

	"shtest/internal/config"
	"shtest/internal/domain"
)

// Storage persists and loads the last run's results (for the failures viewer).
type Storage interface {
	Save(script string, results []domain.CaseResult, stats domain.Stats, duration time.Duration) error
	Load() (*domain.RunOutput, error)
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
