// Package graph is a client for the ad platform's Graph-style API. It
// covers the lookups creative resolution needs: single and batched ad
// fetches, image-by-hash, video metadata and the originating post.
//
// Errors returned by the platform are *domain.UpstreamError and carry the
// platform's machine-readable code. Any other error is a transport failure.
package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"adpulse/internal/adapter/metrics"
	"adpulse/internal/config/configs"
	"adpulse/internal/core/domain"
)

const (
	// maxResponseBytes bounds how much of a response body is read.
	maxResponseBytes = 16 << 20

	adFields = "id,name,account_id,creative{id,name,title,body,image_url,image_hash,thumbnail_url," +
		"video_id,object_type,call_to_action_type,link_url,object_story_id,effective_object_story_id," +
		"object_story_spec,asset_feed_spec}"
	imageFields = "hash,url,permalink_url,width,height"
	videoFields = "id,source,picture,length,thumbnails{uri,width,height,is_preferred}"
	postFields  = "id,full_picture,picture,message,attachments{type,title,description,url,media,subattachments}"
)

// Metric outcomes.
const (
	outcomeOK        = "ok"
	outcomeUpstream  = "upstream_error"
	outcomeTransport = "transport_error"
)

// Client calls the ad platform API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *metrics.Pipeline
}

// NewClient creates a client for cfg. The access token is passed per call.
func NewClient(cfg configs.Graph, logger *slog.Logger, m *metrics.Pipeline) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/") + "/" + strings.Trim(cfg.Version, "/"),
		logger:     logger,
		metrics:    m,
	}
}

// errorEnvelope is the error body the platform returns.
type errorEnvelope struct {
	Error *domain.UpstreamError `json:"error"`
}

type imagesResponse struct {
	Data []domain.ImageAsset `json:"data"`
}

// GetAd fetches one ad with its creative expanded.
func (c *Client) GetAd(ctx context.Context, cred domain.Credential, adID string) (*domain.Ad, error) {
	var ad domain.Ad
	if err := c.get(ctx, "ad", cred, "/"+url.PathEscape(adID), url.Values{"fields": {adFields}}, &ad); err != nil {
		return nil, fmt.Errorf("get ad %s: %w", adID, err)
	}
	return &ad, nil
}

// ImagesByHash resolves image hashes of an ad account.
func (c *Client) ImagesByHash(ctx context.Context, cred domain.Credential, accountID string, hashes []string) (map[string]domain.ImageAsset, error) {
	encoded, err := json.Marshal(hashes)
	if err != nil {
		return nil, fmt.Errorf("encode hashes: %w", err)
	}
	params := url.Values{
		"hashes": {string(encoded)},
		"fields": {imageFields},
	}
	var resp imagesResponse
	if err := c.get(ctx, "adimages", cred, "/"+accountPath(accountID)+"/adimages", params, &resp); err != nil {
		return nil, fmt.Errorf("images by hash: %w", err)
	}
	out := make(map[string]domain.ImageAsset, len(resp.Data))
	for _, img := range resp.Data {
		out[img.Hash] = img
	}
	return out, nil
}

// GetVideo fetches a video's thumbnails, poster, playable source and length.
func (c *Client) GetVideo(ctx context.Context, cred domain.Credential, videoID string) (*domain.VideoMeta, error) {
	var v domain.VideoMeta
	if err := c.get(ctx, "video", cred, "/"+url.PathEscape(videoID), url.Values{"fields": {videoFields}}, &v); err != nil {
		return nil, fmt.Errorf("get video %s: %w", videoID, err)
	}
	return &v, nil
}

// GetPost fetches the social post an ad was created from.
func (c *Client) GetPost(ctx context.Context, cred domain.Credential, postID string) (*domain.Post, error) {
	var p domain.Post
	if err := c.get(ctx, "post", cred, "/"+url.PathEscape(postID), url.Values{"fields": {postFields}}, &p); err != nil {
		return nil, fmt.Errorf("get post %s: %w", postID, err)
	}
	return &p, nil
}

// get issues a GET request and decodes a successful body into out.
func (c *Client) get(ctx context.Context, op string, cred domain.Credential, path string, params url.Values, out any) error {
	params.Set("access_token", cred.AccessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	body, status, err := c.do(req, op, path)
	if err != nil {
		return err
	}
	if upErr := parseError(status, body); upErr != nil {
		c.metrics.UpstreamCall(op, outcomeUpstream)
		return upErr
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.metrics.UpstreamCall(op, outcomeTransport)
		return fmt.Errorf("parse response: %w (body: %s)", err, truncate(string(body), 200))
	}
	c.metrics.UpstreamCall(op, outcomeOK)
	return nil
}

// do sends req and returns the body and status. Only transport failures are
// returned as errors.
func (c *Client) do(req *http.Request, op, path string) ([]byte, int, error) {
	start := time.Now()
	c.logger.Debug("upstream request", slog.String("method", req.Method), slog.String("op", op), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.metrics.UpstreamCall(op, outcomeTransport)
		c.logger.Debug("upstream response", slog.String("op", op), slog.Duration("duration", duration), slog.Any("error", err))
		return nil, 0, fmt.Errorf("request failed: %w", redactToken(err))
	}
	defer resp.Body.Close()

	c.logger.Debug("upstream response", slog.String("op", op), slog.Int("status", resp.StatusCode), slog.Duration("duration", duration))
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.metrics.UpstreamCall(op, outcomeTransport)
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	return body, resp.StatusCode, nil
}

// parseError returns the platform error carried by body, if any. Non-2xx
// statuses without a parsable error body still produce an error.
func parseError(status int, body []byte) *domain.UpstreamError {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error != nil {
		env.Error.Status = status
		return env.Error
	}
	if status >= 200 && status < 300 {
		return nil
	}
	return &domain.UpstreamError{
		Status:  status,
		Message: truncate(strings.TrimSpace(string(body)), 200),
		Type:    http.StatusText(status),
	}
}

// accountPath returns the account node name with the act_ prefix.
func accountPath(accountID string) string {
	if strings.HasPrefix(accountID, "act_") {
		return accountID
	}
	return "act_" + accountID
}

// redactToken strips the request URL, which carries the access token, from
// transport errors.
func redactToken(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

// truncate cuts s to at most n bytes without splitting a rune, appending
// "..." if truncated.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
