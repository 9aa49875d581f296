package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"dineWise/pkg/logger"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

type Config struct {
	BaseURL        string
	APIKey         string
	Model          string
	Dimension      int
	TimeoutSeconds int
	// Path of the precomputed restaurant embedding matrix, aligned with the
	// dataset by row index.
	MatrixPath string
}

// Provider encodes free text through an OpenAI-compatible embeddings
// endpoint and serves precomputed restaurant vectors from a side file.
// A missing side file or unset endpoint disables the corresponding feature
// without erroring.
type Provider struct {
	cfg    Config
	client *http.Client

	matrix *mat.Dense
}

func NewProvider(cfg Config) *Provider {
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}

	p := &Provider{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}

	p.loadMatrix()
	return p
}

func (p *Provider) loadMatrix() {
	if p.cfg.MatrixPath == "" {
		return
	}

	f, err := os.Open(p.cfg.MatrixPath)
	if err != nil {
		logger.Warn("restaurant embeddings unavailable, semantic blending disabled", "path", p.cfg.MatrixPath)
		return
	}
	defer f.Close()

	var m mat.Dense
	if err := npyio.Read(f, &m); err != nil {
		logger.Error("failed to read embedding matrix", err)
		return
	}

	rows, cols := m.Dims()
	p.matrix = &m
	logger.Info("loaded restaurant embeddings", "rows", rows, "dim", cols)
}

// Available reports whether precomputed restaurant vectors were loaded.
func (p *Provider) Available() bool {
	return p.matrix != nil
}

// RestaurantVector returns the precomputed vector for a dataset row index,
// or nil when out of range or unavailable.
func (p *Provider) RestaurantVector(rowIndex int) []float64 {
	if p.matrix == nil {
		return nil
	}
	rows, _ := p.matrix.Dims()
	if rowIndex < 0 || rowIndex >= rows {
		return nil
	}
	return mat.Row(nil, rowIndex, p.matrix)
}

type embeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// Encode maps a single text to a fixed-dimension vector.
func (p *Provider) Encode(ctx context.Context, text string) ([]float64, error) {
	vectors, err := p.EncodeBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EncodeBatch maps texts to vectors in one round trip.
func (p *Provider) EncodeBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if p.cfg.BaseURL == "" {
		return nil, fmt.Errorf("embedding endpoint not configured")
	}

	payload, err := json.Marshal(embeddingRequest{
		Model: p.cfg.Model,
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+"/embeddings", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")
	if p.cfg.APIKey != "" {
		req.Header.Add("Authorization", "Bearer "+p.cfg.APIKey)
	}

	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("embedding service returned %d: %s", res.StatusCode, string(body))
	}

	var parsed embeddingResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response: %w", err)
	}

	if len(parsed.Data) != len(texts) {
		return nil, fmt.Errorf("embedding service returned %d vectors for %d inputs", len(parsed.Data), len(texts))
	}

	out := make([][]float64, len(parsed.Data))
	for i, d := range parsed.Data {
		out[i] = d.Embedding
	}
	return out, nil
}
