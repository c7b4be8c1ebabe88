// Package messenger is the outbound messaging collaborator: it delivers
// formatted text to a recipient through the bot gateway's HTTP API.
package messenger

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Client posts messages to the bot gateway. With no base URL configured it
// degrades to a logged no-op so the rest of the pipeline keeps working in
// local development.
type Client struct {
	http    *resty.Client
	baseURL string
	token   string
	logger  *zap.Logger
}

func NewClient(baseURL, token string, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(0) // delivery retries belong to the queue, not the HTTP client

	return &Client{
		http:    httpClient,
		baseURL: baseURL,
		token:   token,
		logger:  logger,
	}
}

// Send delivers text to the destination chat. The gateway responds with
// {"ok": true} on success; anything else is a delivery failure the caller
// may retry.
func (c *Client) Send(ctx context.Context, destination, text string) error {
	if c.baseURL == "" {
		c.logger.Info("messenger not configured, dropping message",
			zap.String("destination", destination))
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(c.token).
		SetBody(map[string]string{
			"chatId": destination,
			"text":   text,
		}).
		Post(c.baseURL + "/sendMessage")
	if err != nil {
		return fmt.Errorf("messenger request failed: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("messenger returned status %d", resp.StatusCode())
	}

	if !gjson.GetBytes(resp.Body(), "ok").Bool() {
		desc := gjson.GetBytes(resp.Body(), "description").String()
		return fmt.Errorf("messenger rejected message: %s", desc)
	}

	return nil
}
