package erpapi

import (
	"bytes"
	"context"
	"construtora_erp/internal/domain/entities"
	"construtora_erp/internal/usecase/interfaces"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

var ErrMissingBaseURL = errors.New("missing ERP_API_BASE_URL")

const defaultTimeout = 15 * time.Second

// envelope is the response shape of every ERP backend route.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to the construction ERP REST backend on behalf of the caller
// whose bearer token travels in the request context (see WithToken).
type Client struct {
	baseURL string
	http    *http.Client
}

var _ interfaces.IQuotationGateway = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log.Printf("[erpapi][client] initialized base_url=%s timeout=%s", baseURL, timeout)
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}, nil
}

func (c *Client) ListQuotations(ctx context.Context) ([]entities.Quotation, error) {
	var out []entities.Quotation
	if err := c.do(ctx, http.MethodGet, "/cotacoes/listar", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetQuotation(ctx context.Context, id int64) (entities.Quotation, error) {
	var out entities.Quotation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cotacoes/%d", id), &out); err != nil {
		return entities.Quotation{}, err
	}
	return out, nil
}

func (c *Client) ListProposals(ctx context.Context, quotationID int64) ([]entities.Proposal, error) {
	var out []entities.Proposal
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/cotacoes/%d/propostas", quotationID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RegenerateProposals(ctx context.Context, quotationID int64) ([]entities.Proposal, error) {
	var out []entities.Proposal
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/cotacoes/%d/regerar-propostas", quotationID), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []entities.Proposal{}
	}
	return out, nil
}

func (c *Client) ConfirmProposal(ctx context.Context, proposalID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/cotacoes/propostas/%d/confirmar", proposalID), nil)
}

func (c *Client) DeleteQuotation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cotacoes/deletar/%d", id), nil)
}

// do issues one request and unwraps the envelope into out (when non-nil).
// Any non-2xx status or success=false becomes a *GatewayError carrying the
// backend message as-is; everything else is ErrGatewayUnavailable.
func (c *Client) do(ctx context.Context, method, path string, out any) error {
	var body io.Reader
	if method == http.MethodPost {
		body = bytes.NewReader([]byte("{}"))
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := TokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Printf("[erpapi][client] %s %s aborted err=%v", method, path, ctxErr)
			return ctxErr
		}
		log.Printf("[erpapi][client] %s %s transport failed err=%v", method, path, err)
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[erpapi][client] %s %s body read failed status=%d err=%v", method, path, resp.StatusCode, err)
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[erpapi][client] %s %s rejected status=%d message=%q", method, path, resp.StatusCode, env.Message)
		return &interfaces.GatewayError{Status: resp.StatusCode, Message: env.Message}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if decodeErr != nil {
		log.Printf("[erpapi][client] %s %s invalid envelope status=%d err=%v", method, path, resp.StatusCode, decodeErr)
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, decodeErr)
	}
	if !env.Success {
		log.Printf("[erpapi][client] %s %s unsuccessful status=%d message=%q", method, path, resp.StatusCode, env.Message)
		return &interfaces.GatewayError{Status: resp.StatusCode, Message: env.Message}
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		log.Printf("[erpapi][client] %s %s data decode failed err=%v", method, path, err)
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}
	return nil
}
