package catfact

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/legitimatebusiness/todo/internal/domain"
)

// DefaultURL asks the public cat-fact API for one random cat fact.
const DefaultURL = "https://cat-fact.herokuapp.com/facts/random?animal_type=cat&amount=1"

// maxBodyBytes bounds how much of the upstream body is read.
const maxBodyBytes = 1 << 20

// Client fetches random facts from the upstream API.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient returns a Client for url. A nil httpClient is replaced by a
// pooled go-cleanhttp client. An empty url means DefaultURL.
func NewClient(url string, httpClient *http.Client) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
	}
	return &Client{
		httpClient: httpClient,
		url:        url,
	}
}

// factPayload is the subset of the upstream body that is read.
// Unknown fields are dropped by encoding/json.
type factPayload struct {
	Text string `json:"text"`
}

// Fetch performs one GET against the upstream API.
func (c *Client) Fetch(ctx context.Context) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return failure(FailureRequest, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return failure(FailureTransport, 0, err)
	}
	defer func() {
		// Drain so the pooled connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failure(FailureStatus, resp.StatusCode, nil)
	}

	var payload factPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return failure(FailureDecode, 0, err)
	}

	fact, err := domain.NewCatFact(payload.Text)
	if err != nil {
		return failure(FailureEmptyText, 0, err)
	}
	return success(fact)
}
