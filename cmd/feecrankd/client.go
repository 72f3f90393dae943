// TECHNOLOGY_TYPE: FEE_DISTRIBUTION
// feecrankd - Chain Client
//
// Talks to the host chain's gRPC-gateway REST surface (go.mod's
// grpc-ecosystem/grpc-gateway dependency): one read endpoint for a vault's
// current Progress, one write endpoint to submit a signed MsgDistribute.
// Signing and broadcast plumbing is the host chain's concern; this client
// only shapes the HTTP request/response the poller needs.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ProgressView mirrors the fields of x/feepos/types.Progress the poller
// needs to decide whether and how to crank next.
type ProgressView struct {
	WindowStartTS            int64  `json:"window_start_ts"`
	DayComplete              bool   `json:"day_complete"`
	Cursor                   uint64 `json:"cursor"`
	CohortSize               uint64 `json:"cohort_size"`
	ClaimedThisWindow        uint64 `json:"claimed_this_window"`
	InvestorBudgetThisWindow uint64 `json:"investor_budget_this_window"`
	DistributedToInvestors   uint64 `json:"distributed_to_investors"`
	CarryOver                uint64 `json:"carry_over"`
}

// DistributeRequest is the wire shape submitted for one MsgDistribute
// call. There is no timestamp field: the chain stamps window_start_ts and
// gates the cooldown from its own ctx.BlockTime(), never from a value the
// crank submits.
type DistributeRequest struct {
	Crank          string           `json:"crank"`
	Vault          string           `json:"vault"`
	ExpectedCursor uint64           `json:"expected_cursor"`
	CohortRefs     []string         `json:"cohort_refs,omitempty"`
	Pairs          []DistributePair `json:"pairs"`
}

// DistributePair is one (stream, recipient) entry of a page.
type DistributePair struct {
	StreamRef string `json:"stream_ref"`
	Recipient string `json:"recipient"`
}

// DistributeResponse mirrors types.MsgDistributeResponse.
type DistributeResponse struct {
	WindowOpened  bool   `json:"window_opened"`
	InvestorsPaid uint64 `json:"investors_paid"`
	PageTotal     uint64 `json:"page_total"`
	DayClosed     bool   `json:"day_closed"`
	CreatorAmount uint64 `json:"creator_amount"`
	NextCursor    uint64 `json:"next_cursor"`
}

// Client is the subset of chain access the poller depends on, so tests can
// substitute an in-memory fake.
type Client interface {
	GetProgress(ctx context.Context, vault string) (ProgressView, error)
	Distribute(ctx context.Context, req DistributeRequest) (DistributeResponse, error)
}

// httpClient is the production Client backed by the gRPC-gateway REST
// surface.
type httpClient struct {
	baseURL string
	http    *http.Client
}

func newHTTPClient(baseURL string, timeout time.Duration) *httpClient {
	return &httpClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) GetProgress(ctx context.Context, vault string) (ProgressView, error) {
	var out ProgressView

	url := fmt.Sprintf("%s/feepos/v1/progress/%s", c.baseURL, vault)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return out, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return out, fmt.Errorf("querying progress for vault %s: %w", vault, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("querying progress for vault %s: unexpected status %d", vault, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decoding progress for vault %s: %w", vault, err)
	}
	return out, nil
}

func (c *httpClient) Distribute(ctx context.Context, distReq DistributeRequest) (DistributeResponse, error) {
	var out DistributeResponse

	body, err := json.Marshal(distReq)
	if err != nil {
		return out, err
	}

	url := fmt.Sprintf("%s/feepos/v1/tx/distribute", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return out, fmt.Errorf("submitting distribute for vault %s: %w", distReq.Vault, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return out, fmt.Errorf("submitting distribute for vault %s: unexpected status %d", distReq.Vault, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decoding distribute response for vault %s: %w", distReq.Vault, err)
	}
	return out, nil
}
