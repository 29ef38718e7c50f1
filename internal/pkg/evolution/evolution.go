// Package evolution is a minimal client for the Evolution API, the gateway
// used to receive and send WhatsApp messages.
// https://doc.evolution-api.com/v2/pt/get-started/introduction
package evolution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL  string
	apiKey   string
	instance string
	client   *http.Client
}

func New(baseURL, apiKey, instance string) *Client {
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		instance: instance,
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// UseDefaultClient switches to http.DefaultClient so tests can intercept
// requests with a mock transport.
func (c *Client) UseDefaultClient() {
	c.client = http.DefaultClient
}

// GetBase64FromMediaMessage fetches the base64 payload of a media message
// by its message id.
func (c *Client) GetBase64FromMediaMessage(ctx context.Context, messageID string) (string, error) {
	payload := map[string]interface{}{
		"message": map[string]interface{}{
			"key": map[string]interface{}{"id": messageID},
		},
		"convertToMp4": false,
	}

	resp, err := c.post(ctx, "/chat/getBase64FromMediaMessage", payload)
	if err != nil {
		return "", err
	}

	b64, _ := resp["base64"].(string)
	return b64, nil
}

// SendText sends a plain text message to the given number.
func (c *Client) SendText(ctx context.Context, number, text string) error {
	payload := map[string]interface{}{
		"number": number,
		"text":   text,
		"delay":  1000,
	}

	_, err := c.post(ctx, "/message/sendText", payload)
	return err
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (map[string]interface{}, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s%s/%s", c.baseURL, path, c.instance)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("evolution request %s: %w", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("evolution error %d for %s: %s", resp.StatusCode, path, string(respBody))
	}

	var out map[string]interface{}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("decode evolution response for %s: %w", path, err)
	}

	return out, nil
}
