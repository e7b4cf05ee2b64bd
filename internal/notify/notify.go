package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wajeht/bang/internal/logger"
	"github.com/wajeht/bang/internal/utils"
)

// Notifier delivers operator alerts to a webhook. A nil or unconfigured
// Notifier is safe to use and drops everything.
type Notifier struct {
	url    string
	client *http.Client
	log    logger.Logger
}

func New(url string, timeout time.Duration, log logger.Logger) *Notifier {
	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

type payload struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Send posts a message to the webhook, best effort. Delivery failures are
// logged and never returned: notifications must not cascade.
func (n *Notifier) Send(ctx context.Context, message, details string) {
	if n == nil || n.url == "" {
		return
	}

	body, err := json.Marshal(payload{Message: message, Details: details})
	if err != nil {
		n.log.Warn("notification payload marshal failed", logger.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		n.log.Warn("notification request build failed", logger.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.log.Warn("notification delivery failed", logger.Error(err))
		return
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode >= 300 {
		n.log.Warn("notification rejected",
			logger.String("status", fmt.Sprintf("%d", resp.StatusCode)))
	}
}
