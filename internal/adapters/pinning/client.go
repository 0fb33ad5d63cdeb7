package pinning

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/memedao/memedao-cli/internal/domain"
	"github.com/memedao/memedao-cli/internal/domain/config"
	"github.com/memedao/memedao-cli/internal/usecase"
)

const (
	DefaultAPIURL     = "https://api.pinata.cloud"
	DefaultGatewayURL = "https://gateway.pinata.cloud"

	// maxBody caps how much of a gateway or API response is read
	maxBody = 1 << 20
)

type pinRequest struct {
	Content  *domain.ProposalMetadata `json:"pinataContent"`
	Metadata pinMetadata              `json:"pinataMetadata"`
}

type pinMetadata struct {
	Name string `json:"name"`
}

type pinResponse struct {
	IpfsHash  string `json:"IpfsHash"`
	PinSize   int64  `json:"PinSize"`
	Timestamp string `json:"Timestamp"`
}

// Client pins proposal metadata to Pinata and reads it back through an IPFS
// gateway. Pinned content is immutable, so successful fetches are cached.
type Client struct {
	cfg        config.PinningConfig
	httpClient *http.Client
	cache      *lru.Cache
	log        *slog.Logger
}

// NewClient creates a pinning client from the runtime config
func NewClient(cfg *config.RuntimeConfig, log *slog.Logger) (*Client, error) {
	size := cfg.MetadataCacheSize
	if size <= 0 {
		size = 256
	}
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata cache: %w", err)
	}

	pinning := cfg.Pinning
	if pinning.APIURL == "" {
		pinning.APIURL = DefaultAPIURL
	}
	if pinning.GatewayURL == "" {
		pinning.GatewayURL = DefaultGatewayURL
	}
	pinning.APIURL = strings.TrimRight(pinning.APIURL, "/")
	pinning.GatewayURL = strings.TrimRight(pinning.GatewayURL, "/")

	return &Client{
		cfg:        pinning,
		httpClient: &http.Client{Timeout: cfg.CallTimeout},
		cache:      cache,
		log:        log,
	}, nil
}

// Publish pins metadata as JSON and returns its content id.
func (c *Client) Publish(ctx context.Context, metadata *domain.ProposalMetadata) (string, error) {
	if !c.cfg.HasCredentials() {
		return "", fmt.Errorf("%w: no pinning credentials configured", domain.ErrMetadataPublish)
	}

	body, err := json.Marshal(pinRequest{
		Content:  metadata,
		Metadata: pinMetadata{Name: metadata.Title},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMetadataPublish, err)
	}

	url := c.cfg.APIURL + "/pinning/pinJSONToIPFS"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMetadataPublish, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	c.log.Debug("pinning proposal metadata", "url", url, "title", metadata.Title)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMetadataPublish, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response body: %v", domain.ErrMetadataPublish, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: API error (status %d): %s", domain.ErrMetadataPublish, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var result pinResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", domain.ErrMetadataPublish, err)
	}
	if result.IpfsHash == "" {
		return "", fmt.Errorf("%w: response carried no content id", domain.ErrMetadataPublish)
	}

	c.cache.Add(result.IpfsHash, copyMetadata(metadata))
	c.log.Debug("pinned proposal metadata", "cid", result.IpfsHash, "size", result.PinSize)
	return result.IpfsHash, nil
}

// authorize prefers a JWT over the legacy key pair
func (c *Client) authorize(req *http.Request) {
	if c.cfg.JWT != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.JWT)
		return
	}
	req.Header.Set("pinata_api_key", c.cfg.APIKey)
	req.Header.Set("pinata_secret_api_key", c.cfg.SecretKey)
}

// Fetch reads the metadata document for contentID from the gateway.
func (c *Client) Fetch(ctx context.Context, contentID string) (*domain.ProposalMetadata, error) {
	contentID = strings.TrimSpace(contentID)
	if contentID == "" {
		return nil, fmt.Errorf("%w: empty content id", domain.ErrMetadataUnavailable)
	}

	if cached, ok := c.cache.Get(contentID); ok {
		return copyMetadata(cached.(*domain.ProposalMetadata)), nil
	}

	url := c.cfg.GatewayURL + "/ipfs/" + contentID
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMetadataUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMetadataUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrMetadataUnavailable, domain.ErrNotFound, contentID)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gateway error (status %d)", domain.ErrMetadataUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", domain.ErrMetadataUnavailable, err)
	}

	var metadata domain.ProposalMetadata
	if err := json.Unmarshal(body, &metadata); err != nil {
		return nil, fmt.Errorf("%w: failed to decode metadata: %v", domain.ErrMetadataUnavailable, err)
	}

	c.cache.Add(contentID, copyMetadata(&metadata))
	return &metadata, nil
}

func copyMetadata(m *domain.ProposalMetadata) *domain.ProposalMetadata {
	out := *m
	return &out
}

var _ usecase.MetadataStore = (*Client)(nil)
