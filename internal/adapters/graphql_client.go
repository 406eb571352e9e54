package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"schoolmenu/internal/shared"
	"schoolmenu/internal/types"
)

const DefaultGraphQLEndpoint = "https://api.isitesoftware.com/graphql"
const defaultGraphQLTimeout = 30 * time.Second
const maxErrorBodyBytes = 4096

type GraphQLClient struct {
	Endpoint   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

func NewGraphQLClient(endpoint string, timeoutSec int) GraphQLClient {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultGraphQLEndpoint
	}
	return GraphQLClient{
		Endpoint: endpoint,
		Timeout:  normalizeGraphQLTimeout(timeoutSec),
	}
}

// Execute posts a single query and returns the members of its data object.
// Each call is independent: no retries and no caching.
func (c GraphQLClient) Execute(ctx context.Context, query string) (map[string]json.RawMessage, error) {
	if strings.TrimSpace(c.Endpoint) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("graphql endpoint is empty")
	}
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode graphql request").
			WithCause(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, types.NewTransportError("failed to create graphql request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client().Do(req)
	if err != nil {
		return nil, types.NewTransportError("graphql request failed", err)
	}
	defer resp.Body.Close()
	log.Ctx(ctx).Debug().
		Str("endpoint", c.Endpoint).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("graphql request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		body := strings.TrimSpace(string(snippet))
		if body == "" {
			return nil, types.NewTransportError("graphql request failed", shared.HTTPStatusError(resp.StatusCode, c.Endpoint))
		}
		return nil, types.NewTransportError(
			"graphql request failed",
			shared.HTTPStatusErrorWithBody(resp.StatusCode, c.Endpoint, body),
		)
	}

	var payload map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, types.NewTransportError("malformed graphql response", err)
	}
	if raw, ok := payload["errors"]; ok {
		return nil, types.NewAPIError(string(raw))
	}
	data := map[string]json.RawMessage{}
	raw, ok := payload["data"]
	if !ok || isJSONNull(raw) {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, types.NewTransportError("malformed graphql data", err)
	}
	return data, nil
}

func (c GraphQLClient) client() *http.Client {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultGraphQLTimeout
	}
	if c.HTTPClient == nil {
		return &http.Client{Timeout: timeout}
	}
	client := *c.HTTPClient
	client.Timeout = timeout
	return &client
}

func normalizeGraphQLTimeout(timeoutSec int) time.Duration {
	if timeoutSec <= 0 {
		return defaultGraphQLTimeout
	}
	return time.Duration(timeoutSec) * time.Second
}

func isJSONNull(raw json.RawMessage) bool {
	return len(raw) == 0 || strings.TrimSpace(string(raw)) == "null"
}
