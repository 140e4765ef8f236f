package amocrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/samandr77/microservices/amocrm/internal/entity"
	"github.com/samandr77/microservices/amocrm/pkg/config"
	"github.com/samandr77/microservices/amocrm/pkg/transport"
)

// Kind selects one of the supported endpoints.
type Kind int

const (
	KindLeads Kind = iota
	KindLeadsByDay
	KindLeadNotes
)

func (k Kind) String() string {
	switch k {
	case KindLeads:
		return "leads"
	case KindLeadsByDay:
		return "leads by day"
	case KindLeadNotes:
		return "lead notes"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Query describes a single GET request. LeadID is used by KindLeadNotes,
// Day by KindLeadsByDay.
type Query struct {
	Kind   Kind
	LeadID int64
	Day    time.Time
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.AmoCRM) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.URL(), "/"),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport.NewBearerRoundTripper(http.DefaultTransport, cfg.Token),
		},
	}
}

// URL builds the request URL for q.
func (c *Client) URL(q Query) (string, error) {
	switch q.Kind {
	case KindLeads:
		return c.baseURL + "/api/v4/leads", nil

	case KindLeadsByDay:
		from, to := entity.CreatedAtRange(q.Day)

		v := url.Values{}
		v.Set("filter[created_at][from]", strconv.FormatInt(from, 10))
		v.Set("filter[created_at][to]", strconv.FormatInt(to, 10))

		return c.baseURL + "/api/v4/leads?" + v.Encode(), nil

	case KindLeadNotes:
		return fmt.Sprintf("%s/api/v4/leads/%d/notes", c.baseURL, q.LeadID), nil

	default:
		return "", fmt.Errorf("unknown endpoint %s", q.Kind)
	}
}

// Fetch performs the GET for q and returns the body of a 200 response.
// 401, 402 and any other status are returned as classified errors.
func (c *Client) Fetch(ctx context.Context, q Query) ([]byte, error) {
	reqURL, err := c.URL(q)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, mapHTTPStatusToError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return body, nil
}

func (c *Client) Leads(ctx context.Context) (entity.LeadsPage, error) {
	return fetchPage[entity.LeadsPage](ctx, c, Query{Kind: KindLeads}, func(p *entity.LeadsPage, raw []byte) {
		p.Raw = raw
	})
}

func (c *Client) LeadsCreatedOn(ctx context.Context, day time.Time) (entity.LeadsPage, error) {
	return fetchPage[entity.LeadsPage](ctx, c, Query{Kind: KindLeadsByDay, Day: day}, func(p *entity.LeadsPage, raw []byte) {
		p.Raw = raw
	})
}

func (c *Client) LeadNotes(ctx context.Context, leadID int64) (entity.NotesPage, error) {
	return fetchPage[entity.NotesPage](ctx, c, Query{Kind: KindLeadNotes, LeadID: leadID}, func(p *entity.NotesPage, raw []byte) {
		p.Raw = raw
	})
}

func fetchPage[T any](ctx context.Context, c *Client, q Query, setRaw func(*T, []byte)) (T, error) {
	var page T

	body, err := c.Fetch(ctx, q)
	if err != nil {
		return page, err
	}

	err = json.Unmarshal(body, &page)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("decode response: %w", err)
	}

	setRaw(&page, body)

	return page, nil
}

func mapHTTPStatusToError(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return entity.ErrUnauthorized
	case http.StatusPaymentRequired:
		return entity.ErrPaymentRequired
	default:
		return &entity.UnexpectedStatusError{Code: statusCode}
	}
}
