package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"adpulse/internal/core/domain"
	"adpulse/internal/core/port"
)

type batchRequest struct {
	Method      string `json:"method"`
	RelativeURL string `json:"relative_url"`
}

// batchItem is one entry of a batched response. Body is a JSON document
// encoded as a string. A null item means the platform gave up on it.
type batchItem struct {
	Code int    `json:"code"`
	Body string `json:"body"`
}

// BatchGetAds fetches up to port.MaxBatchSize ads in one request. The
// result is aligned with adIDs; item failures are reported per item.
func (c *Client) BatchGetAds(ctx context.Context, cred domain.Credential, adIDs []string) ([]domain.AdResult, error) {
	if len(adIDs) == 0 {
		return nil, nil
	}
	if len(adIDs) > port.MaxBatchSize {
		return nil, fmt.Errorf("batch supports at most %d requests, got %d", port.MaxBatchSize, len(adIDs))
	}

	reqs := make([]batchRequest, len(adIDs))
	for i, id := range adIDs {
		reqs[i] = batchRequest{
			Method:      http.MethodGet,
			RelativeURL: url.PathEscape(id) + "?fields=" + url.QueryEscape(adFields),
		}
	}
	encoded, err := json.Marshal(reqs)
	if err != nil {
		return nil, fmt.Errorf("encode batch: %w", err)
	}

	form := url.Values{
		"access_token":    {cred.AccessToken},
		"batch":           {string(encoded)},
		"include_headers": {"false"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, status, err := c.do(req, "batch", "/")
	if err != nil {
		return nil, fmt.Errorf("batch ads: %w", err)
	}
	if upErr := parseError(status, body); upErr != nil {
		c.metrics.UpstreamCall("batch", outcomeUpstream)
		return nil, fmt.Errorf("batch ads: %w", upErr)
	}

	var items []*batchItem
	if err := json.Unmarshal(body, &items); err != nil {
		c.metrics.UpstreamCall("batch", outcomeTransport)
		return nil, fmt.Errorf("parse batch response: %w (body: %s)", err, truncate(string(body), 200))
	}
	c.metrics.UpstreamCall("batch", outcomeOK)

	results := make([]domain.AdResult, len(adIDs))
	for i, id := range adIDs {
		var item *batchItem
		if i < len(items) {
			item = items[i]
		}
		results[i] = decodeItem(id, item)
	}
	return results, nil
}

func decodeItem(adID string, item *batchItem) domain.AdResult {
	res := domain.AdResult{AdID: adID}
	if item == nil {
		res.Status = http.StatusGatewayTimeout
		res.Err = &domain.UpstreamError{
			Status:  http.StatusGatewayTimeout,
			Message: "no response for batch item",
			Type:    "BatchItemTimeout",
		}
		return res
	}
	res.Status = item.Code
	if upErr := parseError(item.Code, []byte(item.Body)); upErr != nil {
		res.Err = upErr
		return res
	}
	var ad domain.Ad
	if err := json.Unmarshal([]byte(item.Body), &ad); err != nil {
		res.Err = &domain.UpstreamError{
			Status:  item.Code,
			Message: fmt.Sprintf("invalid item body: %v", err),
			Type:    "BatchItemDecode",
		}
		return res
	}
	res.Ad = &ad
	return res
}
