package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"go.uber.org/zap"
)

const maxErrorBody = 4 << 10

// ResendConfig configures the Resend email API client.
type ResendConfig struct {
	APIKey  string
	BaseURL string
	From    string
	Timeout time.Duration
}

// Resend sends email through the Resend HTTP API.
type Resend struct {
	log    *zap.SugaredLogger
	client *http.Client
	cfg    ResendConfig
}

// NewResend constructs a Resend client on a pooled clean transport.
func NewResend(log *zap.SugaredLogger, cfg ResendConfig) *Resend {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = cfg.Timeout
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Resend{
		log:    log.Named("notifier.resend"),
		client: client,
		cfg:    cfg,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// Send implements Notifier.
func (r *Resend) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(sendRequest{
		From:    r.cfg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("encode email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("send email: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode email response: %w", err)
	}
	r.log.Debugw("email sent", "to", msg.To, "email_id", out.ID)
	return nil
}

// Close releases idle connections held by the client.
func (r *Resend) Close() {
	r.client.CloseIdleConnections()
}
