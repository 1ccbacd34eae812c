package moderation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

// DefaultModelInputSize is the feature dimension of the exported model
const DefaultModelInputSize = 150

// NeuralModel is a dense feed-forward network over tf-idf features of word uni- and bi-grams.
// The model is exported by the offline trainer as json and is immutable after loading.
type NeuralModel struct {
	vocabulary map[string]int
	idf        []float64
	ngramMax   int
	layers     []denseLayer
}

type denseLayer struct {
	weights    [][]float64 // [outputs][inputs]
	bias       []float64
	activation string
}

// neuralModelFile is the exported model layout
type neuralModelFile struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	NgramMax   int            `json:"ngram_max"`
	Layers     []struct {
		Weights    [][]float64 `json:"weights"`
		Bias       []float64   `json:"bias"`
		Activation string      `json:"activation"`
	} `json:"layers"`
}

// LoadNeuralModel reads an exported model and validates its dimensions.
// If inputSize is positive the feature dimension must match it.
func LoadNeuralModel(r io.Reader, inputSize int) (*NeuralModel, error) {
	var mf neuralModelFile
	if err := json.NewDecoder(r).Decode(&mf); err != nil {
		return nil, fmt.Errorf("can't decode model: %w", err)
	}

	dim := len(mf.IDF)
	if dim == 0 {
		return nil, fmt.Errorf("empty idf vector")
	}
	if inputSize > 0 && dim != inputSize {
		return nil, fmt.Errorf("%w: model has %d features, expected %d", ErrDimensionMismatch, dim, inputSize)
	}
	for tok, idx := range mf.Vocabulary {
		if idx < 0 || idx >= dim {
			return nil, fmt.Errorf("%w: vocabulary index %d of %q out of range %d", ErrDimensionMismatch, idx, tok, dim)
		}
	}
	if len(mf.Layers) == 0 {
		return nil, fmt.Errorf("no layers")
	}

	res := &NeuralModel{vocabulary: mf.Vocabulary, idf: mf.IDF, ngramMax: mf.NgramMax}
	if res.ngramMax < 1 {
		res.ngramMax = 2
	}
	inputs := dim
	for i, l := range mf.Layers {
		if len(l.Weights) == 0 || len(l.Bias) != len(l.Weights) {
			return nil, fmt.Errorf("%w: layer %d has %d rows and %d biases", ErrDimensionMismatch, i, len(l.Weights), len(l.Bias))
		}
		for _, row := range l.Weights {
			if len(row) != inputs {
				return nil, fmt.Errorf("%w: layer %d expects %d inputs, got %d", ErrDimensionMismatch, i, inputs, len(row))
			}
		}
		switch l.Activation {
		case "relu", "sigmoid", "linear", "":
		default:
			return nil, fmt.Errorf("layer %d: unsupported activation %q", i, l.Activation)
		}
		res.layers = append(res.layers, denseLayer{weights: l.Weights, bias: l.Bias, activation: l.Activation})
		inputs = len(l.Weights)
	}
	if inputs != 1 {
		return nil, fmt.Errorf("%w: output layer has %d units, expected 1", ErrDimensionMismatch, inputs)
	}
	return res, nil
}

// Dim returns the feature dimension
func (m *NeuralModel) Dim() int { return len(m.idf) }

// Score returns the spam probability for normalized text
func (m *NeuralModel) Score(ctx context.Context, text string) (float64, error) {
	x := m.vectorize(text)
	for i, l := range m.layers {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		out, err := l.forward(x)
		if err != nil {
			return 0, fmt.Errorf("layer %d: %w", i, err)
		}
		x = out
	}
	if len(x) != 1 {
		return 0, fmt.Errorf("%w: %d outputs", ErrDimensionMismatch, len(x))
	}
	if m.layers[len(m.layers)-1].activation != "sigmoid" {
		return sigmoid(x[0]), nil
	}
	return x[0], nil
}

// vectorize builds an l2-normalized tf-idf vector of the text n-grams
func (m *NeuralModel) vectorize(text string) []float64 {
	vec := make([]float64, len(m.idf))
	words := []string{}
	for _, w := range strings.Fields(text) {
		if utf8.RuneCountInString(w) >= 2 {
			words = append(words, w)
		}
	}
	for n := 1; n <= m.ngramMax; n++ {
		for i := 0; i+n <= len(words); i++ {
			if idx, ok := m.vocabulary[strings.Join(words[i:i+n], " ")]; ok {
				vec[idx]++
			}
		}
	}
	norm := 0.0
	for i := range vec {
		vec[i] *= m.idf[i]
		norm += vec[i] * vec[i]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func (l denseLayer) forward(x []float64) ([]float64, error) {
	out := make([]float64, len(l.weights))
	for j, row := range l.weights {
		if len(row) != len(x) {
			return nil, fmt.Errorf("%w: %d weights for %d inputs", ErrDimensionMismatch, len(row), len(x))
		}
		sum := l.bias[j]
		for i, w := range row {
			sum += w * x[i]
		}
		switch l.activation {
		case "relu":
			sum = math.Max(0, sum)
		case "sigmoid":
			sum = sigmoid(sum)
		}
		out[j] = sum
	}
	return out, nil
}

func sigmoid(v float64) float64 { return 1 / (1 + math.Exp(-v)) }
