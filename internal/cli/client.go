package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) ListMarkets(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/markets", nil, &out)
	return out, err
}

func (c *Client) MarketAccounts(ctx context.Context, marketID string) ([]map[string]any, error) {
	var out []map[string]any
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/markets/"+url.PathEscape(marketID)+"/accounts", nil, &out)
	return out, err
}

func (c *Client) NewGame(ctx context.Context, marketID, playerName string, age, startYear int, jobID string) (map[string]any, error) {
	body := map[string]any{
		"market_id":   marketID,
		"player_name": playerName,
		"age":         age,
		"start_year":  startYear,
	}
	if jobID != "" {
		body["job_id"] = jobID
	}
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodPost, "/v1/games", body, &out)
	return out, err
}

func (c *Client) ListGames(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	err := c.jsonRequest(ctx, http.MethodGet, "/v1/games", nil, &out)
	return out, err
}

func (c *Client) Game(ctx context.Context, saveID string) (map[string]any, error) {
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodGet, c.gamePath(saveID, ""), nil, &out)
	return out, err
}

func (c *Client) DeleteGame(ctx context.Context, saveID string) error {
	return c.jsonRequest(ctx, http.MethodDelete, c.gamePath(saveID, ""), nil, nil)
}

func (c *Client) AdvancePhase(ctx context.Context, saveID string) (map[string]any, error) {
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(saveID, "/phase"), nil, &out)
	return out, err
}

func (c *Client) AdvanceDay(ctx context.Context, saveID string) (map[string]any, error) {
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(saveID, "/day"), nil, &out)
	return out, err
}

func (c *Client) JobOffers(ctx context.Context, saveID string) ([]map[string]any, error) {
	var out []map[string]any
	err := c.jsonRequest(ctx, http.MethodGet, c.gamePath(saveID, "/offers/jobs"), nil, &out)
	return out, err
}

func (c *Client) HousingOffers(ctx context.Context, saveID string) ([]map[string]any, error) {
	var out []map[string]any
	err := c.jsonRequest(ctx, http.MethodGet, c.gamePath(saveID, "/offers/housing"), nil, &out)
	return out, err
}

func (c *Client) AcceptJob(ctx context.Context, saveID, jobID string) (map[string]any, error) {
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(saveID, "/jobs/accept"), map[string]any{
		"job_id": jobID,
	}, &out)
	return out, err
}

func (c *Client) QuitJob(ctx context.Context, saveID string) (map[string]any, error) {
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(saveID, "/jobs/quit"), nil, &out)
	return out, err
}

func (c *Client) ChangeHousing(ctx context.Context, saveID, housingID string) (map[string]any, error) {
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(saveID, "/housing"), map[string]any{
		"housing_id": housingID,
	}, &out)
	return out, err
}

func (c *Client) OpenAccount(ctx context.Context, saveID, name, kind, planID, goal string) (map[string]any, error) {
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(saveID, "/accounts"), map[string]any{
		"name":    name,
		"kind":    kind,
		"plan_id": planID,
		"goal":    goal,
	}, &out)
	return out, err
}

func (c *Client) Deposit(ctx context.Context, saveID, accountID, amount string) (map[string]any, error) {
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(saveID, "/accounts/"+url.PathEscape(accountID)+"/deposit"), map[string]any{
		"amount": amount,
	}, &out)
	return out, err
}

func (c *Client) Withdraw(ctx context.Context, saveID, accountID, amount string) (map[string]any, error) {
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(saveID, "/accounts/"+url.PathEscape(accountID)+"/withdraw"), map[string]any{
		"amount": amount,
	}, &out)
	return out, err
}

func (c *Client) SetBudget(ctx context.Context, saveID string, allocations map[string]string) (map[string]any, error) {
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(saveID, "/budget"), map[string]any{
		"allocations": allocations,
	}, &out)
	return out, err
}

func (c *Client) SpendBudget(ctx context.Context, saveID, category, amount string) (map[string]any, error) {
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(saveID, "/budget/spend"), map[string]any{
		"category": category,
		"amount":   amount,
	}, &out)
	return out, err
}

func (c *Client) InvestEducation(ctx context.Context, saveID, amount string) (map[string]any, error) {
	var out map[string]any
	err := c.jsonRequest(ctx, http.MethodPost, c.gamePath(saveID, "/education"), map[string]any{
		"amount": amount,
	}, &out)
	return out, err
}

func (c *Client) gamePath(saveID, suffix string) string {
	return "/v1/games/" + url.PathEscape(saveID) + suffix
}

func (c *Client) jsonRequest(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("api status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
