package orders

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/netyark/storefront-backend/pkg/config"
	"github.com/netyark/storefront-backend/pkg/enums"
	"github.com/netyark/storefront-backend/pkg/logger"
)

const trackingCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Result is the two-path submission outcome. Confirmed orders carry the
// upstream record; local-only orders were synthesized after a failed
// submission and are not guaranteed to exist server-side.
type Result struct {
	Outcome enums.OrderOutcome
	Order   OrderRecord
}

// Gateway submits composed orders to the upstream order API.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	logg       *logger.Logger
	now        func() time.Time
}

// NewGateway builds the submission gateway with an explicit timeout so
// a hung upstream degrades to the local path instead of blocking.
func NewGateway(cfg config.UpstreamConfig, logg *logger.Logger) (*Gateway, error) {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		return nil, fmt.Errorf("upstream base url required")
	}
	return &Gateway{
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.OrderTimeout},
		logg:       logg,
		now:        time.Now,
	}, nil
}

// Submit posts the order upstream. Any failure, transport or HTTP,
// degrades to a locally synthesized order so the storefront can still
// confirm to the user. The outcome makes the degradation visible; the
// two paths are never merged.
func (g *Gateway) Submit(ctx context.Context, req SubmitOrderRequest, bearerToken string) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if bearerToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		if g.logg != nil {
			g.logg.Error(ctx, "order submission failed, falling back to local order", err)
		}
		return g.localResult(req), nil
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if g.logg != nil {
			g.logg.Error(ctx, "order submission rejected, falling back to local order",
				fmt.Errorf("unexpected status %d", resp.StatusCode))
		}
		return g.localResult(req), nil
	}

	var remote upstreamOrder
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		if g.logg != nil {
			g.logg.Error(ctx, "order response unreadable, falling back to local order", err)
		}
		return g.localResult(req), nil
	}

	createdAt := remote.CreatedAt
	if createdAt.IsZero() {
		createdAt = g.now().UTC()
	}
	return &Result{
		Outcome: enums.OrderOutcomeConfirmed,
		Order: OrderRecord{
			ID:        remote.ID,
			Status:    remote.Status,
			Total:     remote.Total,
			CreatedAt: createdAt,
		},
	}, nil
}

func (g *Gateway) localResult(req SubmitOrderRequest) *Result {
	now := g.now().UTC()
	return &Result{
		Outcome: enums.OrderOutcomeLocalOnly,
		Order: OrderRecord{
			ID:             fmt.Sprintf("order_%d", now.UnixMilli()),
			Status:         string(enums.OrderStatusProcessing),
			Total:          req.Total,
			TrackingNumber: newTrackingNumber(),
			CreatedAt:      now,
		},
	}
}

func newTrackingNumber() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return "TRK000000000"
	}
	for i, b := range buf {
		buf[i] = trackingCharset[int(b)%len(trackingCharset)]
	}
	return "TRK" + string(buf)
}
