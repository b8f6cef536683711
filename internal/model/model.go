// Package model loads and evaluates the serialized inference artifacts. An
// artifact is a JSON file holding the fitted parameters of either a logistic
// regression (the rain classifier) or a gradient boosting ensemble (the
// precipitation regressor). Models are immutable after load and safe for
// concurrent use.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Supported artifact families.
const (
	FamilyLogisticRegression = "logistic_regression"
	FamilyGradientBoosting   = "gradient_boosting"
)

var ErrNotFound = errors.New("model artifact not found")

// TreeNode is one node of a flat-array regression tree. Interior nodes route
// on Feature/Threshold; leaves have Feature == -1 and carry Value.
type TreeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Value     float64 `json:"value"`
}

// Tree is a regression tree stored as a flat node array rooted at index 0.
type Tree struct {
	Nodes []TreeNode `json:"nodes"`
}

// Model is a loaded inference artifact.
type Model struct {
	Name     string `json:"name"`
	Family   string `json:"family"`
	Features int    `json:"features"`

	// logistic_regression parameters
	Intercept    float64   `json:"intercept,omitempty"`
	Coefficients []float64 `json:"coefficients,omitempty"`
	Threshold    float64   `json:"threshold,omitempty"`

	// gradient_boosting parameters
	BaseScore    float64 `json:"base_score,omitempty"`
	LearningRate float64 `json:"learning_rate,omitempty"`
	Trees        []Tree  `json:"trees,omitempty"`
}

// Load reads and validates a model artifact from path. A missing file is
// reported as ErrNotFound so callers can treat it as a degraded state rather
// than a failure.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact %s: %w", filepath.Base(path), err)
	}

	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", filepath.Base(path), err)
	}

	return &m, nil
}

func (m *Model) validate() error {
	if m.Features <= 0 {
		return fmt.Errorf("feature count must be positive, got %d", m.Features)
	}

	switch m.Family {
	case FamilyLogisticRegression:
		if len(m.Coefficients) != m.Features {
			return fmt.Errorf("expected %d coefficients, got %d", m.Features, len(m.Coefficients))
		}
	case FamilyGradientBoosting:
		if len(m.Trees) == 0 {
			return errors.New("ensemble has no trees")
		}
		for i, tree := range m.Trees {
			if len(tree.Nodes) == 0 {
				return fmt.Errorf("tree %d has no nodes", i)
			}
			for j, node := range tree.Nodes {
				if node.Feature >= m.Features {
					return fmt.Errorf("tree %d node %d routes on feature %d, model has %d", i, j, node.Feature, m.Features)
				}
				if node.Feature >= 0 && (node.Left < 0 || node.Left >= len(tree.Nodes) || node.Right < 0 || node.Right >= len(tree.Nodes)) {
					return fmt.Errorf("tree %d node %d has out-of-range children", i, j)
				}
			}
		}
	default:
		return fmt.Errorf("unknown model family %q", m.Family)
	}

	return nil
}

// Predict evaluates the model on a feature vector. Classifiers return 0 or 1;
// regressors return a continuous value.
func (m *Model) Predict(vector []float64) (float64, error) {
	if len(vector) != m.Features {
		return 0, fmt.Errorf("expected %d features, got %d", m.Features, len(vector))
	}

	switch m.Family {
	case FamilyLogisticRegression:
		score := m.Intercept
		for i, c := range m.Coefficients {
			score += c * vector[i]
		}
		threshold := m.Threshold
		if threshold == 0 {
			threshold = 0.5
		}
		if sigmoid(score) >= threshold {
			return 1, nil
		}
		return 0, nil

	case FamilyGradientBoosting:
		score := m.BaseScore
		rate := m.LearningRate
		if rate == 0 {
			rate = 1
		}
		for _, tree := range m.Trees {
			score += rate * tree.evaluate(vector)
		}
		return score, nil
	}

	return 0, fmt.Errorf("unknown model family %q", m.Family)
}

func (t *Tree) evaluate(vector []float64) float64 {
	i := 0
	for {
		node := t.Nodes[i]
		if node.Feature < 0 {
			return node.Value
		}
		if vector[node.Feature] <= node.Threshold {
			i = node.Left
		} else {
			i = node.Right
		}
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
