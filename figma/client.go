package figma

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Recorder receives raw API payloads for debug reports.
type Recorder interface {
	StoreData(name string, data []byte)
}

// Client talks to the Figma REST API. The conversion engine itself never
// performs I/O - all network access happens here, before conversion starts.
type Client struct {
	baseURL string
	token   string
	hc      *http.Client
	rec     Recorder
	log     *zap.Logger
}

// NewClient returns a client for the given API root. rec may be nil.
func NewClient(baseURL, token string, timeout time.Duration, rec Recorder, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		hc:      &http.Client{Timeout: timeout},
		rec:     rec,
		log:     log,
	}
}

func (c *Client) get(ctx context.Context, endpoint string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("X-Figma-Token", c.token)

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

// GetFile fetches and parses the complete document tree.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.log.Info("Fetching file data", zap.String("key", fileKey))

	status, body, err := c.get(ctx, "/files/"+url.PathEscape(fileKey))
	if err != nil {
		return nil, fmt.Errorf("unable to fetch file %q: %w", fileKey, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch file %q: %d - %s", fileKey, status, string(body))
	}
	if c.rec != nil {
		c.rec.StoreData(fmt.Sprintf("api/files-%s.json", fileKey), body)
	}
	return ParseFile(body, c.log)
}

type imageFillsResponse struct {
	Images map[string]string `json:"images"`
}

// GetImageFills resolves image URLs for nodes with image fills. Lookup
// failures degrade to an empty result - unresolved fills render as a
// placeholder paint downstream.
func (c *Client) GetImageFills(ctx context.Context, fileKey string, nodeIDs []string) (map[string]string, error) {
	if len(nodeIDs) == 0 {
		return map[string]string{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	endpoint := "/images/" + url.PathEscape(fileKey) + "?ids=" + url.QueryEscape(strings.Join(nodeIDs, ","))
	status, body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch image fills for %q: %w", fileKey, err)
	}
	if status != http.StatusOK {
		c.log.Warn("Image fill lookup failed, rendering placeholders", zap.Int("status", status))
		return map[string]string{}, nil
	}
	if c.rec != nil {
		c.rec.StoreData(fmt.Sprintf("api/images-%s.json", fileKey), body)
	}

	var parsed imageFillsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.log.Warn("Malformed image fill response, rendering placeholders", zap.Error(err))
		return map[string]string{}, nil
	}
	if parsed.Images == nil {
		return map[string]string{}, nil
	}
	return parsed.Images, nil
}
