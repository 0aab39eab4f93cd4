package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/fwewterm/internal/dictionary/fwew"
	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
)

//go:generate mockgen -source=client.go -destination=../mocks/dictionary/mock_client.go -package=mock_dictionary

// Fetcher performs a GET against a fully built endpoint URL.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) ([]fwew.Word, error)
}

// APIError is an HTTP error response that carried a structured error body.
type APIError struct {
	StatusCode int
	Payload    fwew.ErrorPayload
}

func (e *APIError) Error() string {
	return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Payload.String())
}

type Config struct {
	BaseURL string
	// Timeout of 0 leaves requests without a deadline.
	Timeout       time.Duration
	RetryAttempts uint
}

type Client struct {
	config     Config
	httpClient *resty.Client
}

var _ Fetcher = (*Client)(nil)

func NewClient(config Config) *Client {
	client := resty.New()
	client.SetHeader("Accept", "application/json")
	if config.Timeout > 0 {
		client.SetTimeout(config.Timeout)
	}

	return &Client{
		config:     config,
		httpClient: client,
	}
}

func (c *Client) Close() error {
	c.httpClient.GetClient().CloseIdleConnections()
	return nil
}

func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// Fetch returns *APIError when the service answered with a structured error body.
// Every other failure, including error statuses with an unstructured body, is a plain error.
func (c *Client) Fetch(ctx context.Context, endpoint string) ([]fwew.Word, error) {
	var words []fwew.Word
	var apiErr *APIError
	err := retry.Do(
		func() error {
			result, err := c.fetch(ctx, endpoint)
			if err != nil {
				if errors.As(err, &apiErr) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			words = result
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.config.RetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if apiErr != nil {
		return nil, apiErr
	}
	if err != nil {
		return nil, fmt.Errorf("fetch(%s) > %w", endpoint, err)
	}
	return words, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]fwew.Word, error) {
	slog.Default().DebugContext(ctx, "dictionary request", slog.String("endpoint", endpoint))

	res, err := c.httpClient.R().
		SetContext(ctx).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("client.R.Get > %w", err)
	}
	if res.IsError() {
		payload, ok := fwew.ParseErrorPayload(res.Body())
		if !ok {
			return nil, fmt.Errorf("status code: %d, body: %s", res.StatusCode(), res.String())
		}
		return nil, &APIError{StatusCode: res.StatusCode(), Payload: payload}
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode())
	}

	var words []fwew.Word
	if err := json.Unmarshal(res.Body(), &words); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	slog.Default().DebugContext(ctx, "dictionary response",
		slog.String("endpoint", endpoint),
		slog.Int("status", res.StatusCode()),
		slog.Int("words", len(words)),
	)
	return words, nil
}

// List fetches the unfiltered word listing.
func (c *Client) List(ctx context.Context) ([]fwew.Word, error) {
	return c.Fetch(ctx, Endpoint(c.config.BaseURL, "", false, ""))
}

func (c *Client) Lookup(ctx context.Context, text string, direction Direction, languageCode string) ([]fwew.Word, error) {
	return c.Fetch(ctx, Endpoint(c.config.BaseURL, text, direction.IsReverse(), languageCode))
}
