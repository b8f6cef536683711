package model

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/afraz-rupak/weather-forecast/internal/config"
)

// Registry holds the two model handles for the lifetime of the process. A nil
// handle means the artifact was not available at startup; the corresponding
// endpoint reports itself unavailable instead of the whole service failing.
type Registry struct {
	Rain          *Model
	Precipitation *Model
}

// LoadRegistry loads both artifacts from the configured models directory.
// Missing or corrupt artifacts are logged and left unloaded; they never fail
// startup.
func LoadRegistry(cfg *config.Config, logger *slog.Logger) *Registry {
	logger = logger.With("component", "model-registry")

	reg := &Registry{}
	reg.Rain = loadOne(filepath.Join(cfg.App.ModelsDir, cfg.App.RainModelFile), "rain", logger)
	reg.Precipitation = loadOne(filepath.Join(cfg.App.ModelsDir, cfg.App.PrecipitationModelFile), "precipitation", logger)
	return reg
}

func loadOne(path, kind string, logger *slog.Logger) *Model {
	m, err := Load(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Warn("model artifact not found, endpoint will be unavailable",
				"model", kind,
				"path", path,
			)
		} else {
			logger.Error("failed to load model artifact, endpoint will be unavailable",
				"model", kind,
				"path", path,
				"error", err,
			)
		}
		return nil
	}

	logger.Info("model loaded",
		"model", kind,
		"name", m.Name,
		"family", m.Family,
		"features", m.Features,
	)
	return m
}
