package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}
	return path
}

const classifierArtifact = `{
	"name": "test_classifier",
	"family": "logistic_regression",
	"features": 2,
	"intercept": 0,
	"coefficients": [1, -1],
	"threshold": 0.5
}`

const regressorArtifact = `{
	"name": "test_regressor",
	"family": "gradient_boosting",
	"features": 1,
	"base_score": 1.0,
	"learning_rate": 0.5,
	"trees": [
		{
			"nodes": [
				{"feature": 0, "threshold": 1, "left": 1, "right": 2},
				{"feature": -1, "value": 2.0},
				{"feature": -1, "value": 5.0}
			]
		}
	]
}`

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	// Missing artifacts must be distinguishable from corrupt ones.
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadInvalidArtifacts(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "not json",
			content: "definitely not json",
		},
		{
			name:    "unknown family",
			content: `{"name": "x", "family": "random_forest", "features": 2}`,
		},
		{
			name:    "zero features",
			content: `{"name": "x", "family": "logistic_regression", "features": 0, "coefficients": []}`,
		},
		{
			name:    "coefficient count mismatch",
			content: `{"name": "x", "family": "logistic_regression", "features": 3, "coefficients": [1, 2]}`,
		},
		{
			name:    "ensemble without trees",
			content: `{"name": "x", "family": "gradient_boosting", "features": 2, "trees": []}`,
		},
		{
			name:    "tree routes on unknown feature",
			content: `{"name": "x", "family": "gradient_boosting", "features": 1, "trees": [{"nodes": [{"feature": 5, "threshold": 1, "left": 1, "right": 2}, {"feature": -1, "value": 1}, {"feature": -1, "value": 2}]}]}`,
		},
		{
			name:    "tree child out of range",
			content: `{"name": "x", "family": "gradient_boosting", "features": 1, "trees": [{"nodes": [{"feature": 0, "threshold": 1, "left": 1, "right": 9}, {"feature": -1, "value": 1}]}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeArtifact(t, t.TempDir(), "model.json", tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestClassifierPredict(t *testing.T) {
	path := writeArtifact(t, t.TempDir(), "classifier.json", classifierArtifact)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		vector   []float64
		expected float64
	}{
		{
			name:     "positive score",
			vector:   []float64{2, 1},
			expected: 1,
		},
		{
			name:     "negative score",
			vector:   []float64{1, 2},
			expected: 0,
		},
		{
			name:     "zero score sits on the threshold",
			vector:   []float64{1, 1},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Predict(tt.vector)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Predict(%v) = %v, want %v", tt.vector, got, tt.expected)
			}
		})
	}
}

func TestRegressorPredict(t *testing.T) {
	path := writeArtifact(t, t.TempDir(), "regressor.json", regressorArtifact)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		vector   []float64
		expected float64
	}{
		{
			name:     "left leaf",
			vector:   []float64{0.5},
			expected: 1.0 + 0.5*2.0,
		},
		{
			name:     "boundary goes left",
			vector:   []float64{1.0},
			expected: 1.0 + 0.5*2.0,
		},
		{
			name:     "right leaf",
			vector:   []float64{2.0},
			expected: 1.0 + 0.5*5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Predict(tt.vector)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Predict(%v) = %v, want %v", tt.vector, got, tt.expected)
			}
		})
	}
}

func TestPredictDimensionMismatch(t *testing.T) {
	path := writeArtifact(t, t.TempDir(), "classifier.json", classifierArtifact)
	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.Predict([]float64{1, 2, 3}); err == nil {
		t.Error("expected error for wrong vector length")
	}
	if _, err := m.Predict(nil); err == nil {
		t.Error("expected error for nil vector")
	}
}
