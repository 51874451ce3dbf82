package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-sitebuilder/internal/logging"
	"github.com/goliatone/go-sitebuilder/pkg/interfaces"
)

// Mode selects the kind of suggestion requested.
type Mode string

const (
	ModePricing Mode = "pricing"
	ModeContent Mode = "content"
)

var (
	ErrEndpointRequired         = errors.New("assistant: endpoint is required")
	ErrTextRequired             = errors.New("assistant: text is required")
	ErrAssistantUnavailable     = errors.New("assistant: endpoint unavailable")
	ErrAssistantResponseInvalid = errors.New("assistant: response does not match schema")
)

const (
	textCodeUnavailable     = "ASSISTANT_UNAVAILABLE"
	textCodeResponseInvalid = "ASSISTANT_RESPONSE_INVALID"

	defaultTimeout  = 20 * time.Second
	maxResponseSize = 1 << 20
)

type request struct {
	Text string `json:"text"`
	Mode Mode   `json:"mode"`
}

// Ingredient is one costed line of a recipe.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Cost     float64 `json:"cost"`
}

// PricingSuggestion is the costing of a recipe with a suggested sale price.
type PricingSuggestion struct {
	Ingredients    []Ingredient `json:"ingredients"`
	TotalCost      float64      `json:"total_cost"`
	SuggestedPrice float64      `json:"suggested_price"`
	Currency       string       `json:"currency"`
	Notes          string       `json:"notes,omitempty"`
}

// ContentSuggestion proposes overview copy.
type ContentSuggestion struct {
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
}

// Client calls the generative text endpoint. Failures are returned as
// external errors and never touch editor state.
type Client struct {
	endpoint string
	http     *http.Client
	logger   interfaces.Logger
	schemas  map[Mode]*jsonschema.Schema
}

// Option configures a Client.
type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a client for endpoint and compiles the response schemas.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, ErrEndpointRequired
	}
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: defaultTimeout},
		logger:   logging.NoOp(),
		schemas:  make(map[Mode]*jsonschema.Schema, 2),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	for _, mode := range []Mode{ModePricing, ModeContent} {
		schema, err := compileSchema(mode)
		if err != nil {
			return nil, fmt.Errorf("assistant: compile %s schema: %w", mode, err)
		}
		c.schemas[mode] = schema
	}
	return c, nil
}

// Pricing asks for the costing of a recipe description.
func (c *Client) Pricing(ctx context.Context, recipe string) (*PricingSuggestion, error) {
	var out PricingSuggestion
	if err := c.call(ctx, ModePricing, recipe, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Content asks for a tagline and description for text.
func (c *Client) Content(ctx context.Context, text string) (*ContentSuggestion, error) {
	var out ContentSuggestion
	if err := c.call(ctx, ModeContent, text, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) call(ctx context.Context, mode Mode, text string, out any) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return goerrors.Wrap(ErrTextRequired, goerrors.CategoryValidation, "assistant request invalid")
	}

	payload, err := json.Marshal(request{Text: text, Mode: mode})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("assistant.request_failed", "mode", mode, "error", err)
		return unavailable(fmt.Errorf("%w: %v", ErrAssistantUnavailable, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return unavailable(fmt.Errorf("%w: read body: %v", ErrAssistantUnavailable, err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("assistant.request_rejected", "mode", mode, "status", resp.StatusCode)
		return unavailable(fmt.Errorf("%w: status %d", ErrAssistantUnavailable, resp.StatusCode))
	}

	if err := validatePayload(c.schemas[mode], body); err != nil {
		c.logger.Warn("assistant.response_invalid", "mode", mode, "error", err)
		return goerrors.Wrap(err, goerrors.CategoryExternal, "assistant response invalid").
			WithTextCode(textCodeResponseInvalid)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return goerrors.Wrap(fmt.Errorf("%w: %v", ErrAssistantResponseInvalid, err), goerrors.CategoryExternal, "assistant response invalid").
			WithTextCode(textCodeResponseInvalid)
	}
	c.logger.Debug("assistant.suggestion_received", "mode", mode)
	return nil
}

func unavailable(err error) error {
	return goerrors.Wrap(err, goerrors.CategoryExternal, "assistant unavailable").
		WithTextCode(textCodeUnavailable)
}
