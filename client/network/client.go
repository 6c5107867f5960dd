package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kmansel/greenwords/pkg/messages"
)

const (
	DefaultServerURL      = "http://localhost:8080"
	defaultRequestTimeout = 10 * time.Second
)

// Client is the HTTP transport to the game server. It owns timeouts and wire
// encoding; it holds no game state and performs no retries of its own — a
// failed poll is simply retried on the next tick by the caller.
type Client struct {
	serverURL  string
	httpClient *http.Client
}

// NewClient creates a transport client for the given server URL.
func NewClient(serverURL string) *Client {
	return &Client{
		serverURL: serverURL,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}
}

// NewGame asks the server for the game with the given id, creating it if it
// does not exist, and returns the initial snapshot.
func (c *Client) NewGame(ctx context.Context, gameID string) (*messages.GameData, error) {
	body, err := c.post(ctx, "/api/new-game", &messages.NewGameRequest{GameID: gameID})
	if err != nil {
		return nil, err
	}
	data, err := messages.DeserializeGameData(body)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Guess submits a word tap and returns the server's incremental update.
func (c *Client) Guess(ctx context.Context, req *messages.GuessRequest) (*messages.Update, error) {
	body, err := c.post(ctx, "/api/guess", req)
	if err != nil {
		return nil, err
	}
	update, err := messages.DeserializeUpdate(body)
	if err != nil {
		return nil, err
	}
	return update, nil
}

// Events polls for events newer than the client's watermark.
func (c *Client) Events(ctx context.Context, req *messages.EventsRequest) (*messages.Update, error) {
	body, err := c.post(ctx, "/api/events", req)
	if err != nil {
		return nil, err
	}
	update, err := messages.DeserializeUpdate(body)
	if err != nil {
		return nil, err
	}
	return update, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, body)
	}
	return body, nil
}
