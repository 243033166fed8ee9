package sentiment

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// HTTPClassifier calls a model inference server over HTTP. The server is
// expected to load its model once at startup; each request here is a single
// synchronous inference call, so latency is bounded only by the caller's
// context deadline.
type HTTPClassifier struct {
	endpoint string
	client   *http.Client
	log      *zap.Logger
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func NewHTTPClassifier(endpoint string, timeout time.Duration, log *zap.Logger) *HTTPClassifier {
	return &HTTPClassifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		log:      log.With(zap.String("classifier", "http")),
	}
}

func (c *HTTPClassifier) Classify(ctx context.Context, text string) (*Prediction, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	body, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("encode classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Classifier call failed",
			zap.Error(err),
			zap.String("endpoint", c.endpoint),
		)
		return nil, fmt.Errorf("classifier unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("Classifier returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.String("endpoint", c.endpoint),
		)
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var out classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode classify response: %w", err)
	}

	if out.Score < 0 || out.Score > 1 {
		return nil, fmt.Errorf("classifier score %f out of range", out.Score)
	}

	c.log.Debug("Text classified",
		zap.String("label", out.Label),
		zap.Float64("score", out.Score),
		zap.Duration("duration", time.Since(start)),
	)

	return &Prediction{Label: out.Label, Score: out.Score}, nil
}
