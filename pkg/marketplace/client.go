package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	pathServiceCards       = "/GetTarjetasServicios"
	pathTerms              = "/ObtenerTyCProductos"
	pathCategoryPermission = "/ORubroItemActivo"
	pathCreateOrder        = "/AltaSolicitud"
)

// ErrOpaqueResponse is returned when the proxy was unreachable and the
// direct-to-origin fallback succeeded at the transport level but its body
// cannot be trusted.
var ErrOpaqueResponse = errors.New("marketplace: opaque upstream response")

// OpaquePolicy decides what an unreadable permission verdict means. The
// backend cannot serve readable cross-origin responses today, so the
// default assumes the permission was granted; swap to OpaqueDeny once the
// backend supports proper responses.
type OpaquePolicy int

const (
	OpaqueAssumeGranted OpaquePolicy = iota
	OpaqueDeny
)

// StatusError is a non-2xx response from the backend.
type StatusError struct {
	Status int
	Path   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("marketplace: %s returned status %d", e.Path, e.Status)
}

// Client defines the operations of the remote marketplace backend.
type Client interface {
	GetServiceCards(ctx context.Context) ([]ServiceCard, error)
	GetTerms(ctx context.Context) (string, error)
	CheckCategoryPermission(ctx context.Context, query PermissionQuery) (bool, error)
	CreateOrder(ctx context.Context, payload *OrderPayload) (*OrderResult, error)
}

type httpClient struct {
	proxyBaseURL  string
	originBaseURL string
	policy        OpaquePolicy
	hc            *http.Client
}

func NewClient(proxyBaseURL, originBaseURL string, timeout time.Duration, policy OpaquePolicy) Client {
	return &httpClient{
		proxyBaseURL:  strings.TrimRight(proxyBaseURL, "/"),
		originBaseURL: strings.TrimRight(originBaseURL, "/"),
		policy:        policy,
		hc: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// GetServiceCards fetches the catalog. The backend double-encodes this
// payload: the body is a JSON string that itself contains the card list.
func (c *httpClient) GetServiceCards(ctx context.Context) ([]ServiceCard, error) {
	data, err := c.do(ctx, http.MethodGet, pathServiceCards, nil, nil)
	if err != nil {
		return nil, err
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("marketplace: decoding catalog envelope: %w", err)
	}

	var cards []ServiceCard
	if err := json.Unmarshal([]byte(raw), &cards); err != nil {
		return nil, fmt.Errorf("marketplace: decoding catalog body: %w", err)
	}

	return cards, nil
}

// GetTerms fetches the terms-and-conditions text. The endpoint ships
// literal escape sequences instead of real characters, which are resolved
// here before the text is handed to the caller.
func (c *httpClient) GetTerms(ctx context.Context) (string, error) {
	query := url.Values{"Textosid": {"1"}}

	data, err := c.do(ctx, http.MethodGet, pathTerms, query, nil)
	if err != nil {
		return "", err
	}

	text := string(data)

	var quoted string
	if err := json.Unmarshal(data, &quoted); err == nil {
		text = quoted
	}

	return DecodeEscapes(text), nil
}

// CheckCategoryPermission asks whether a category is active for the
// commerce. An opaque fallback response is resolved by the configured
// policy instead of being treated as an error.
func (c *httpClient) CheckCategoryPermission(ctx context.Context, q PermissionQuery) (bool, error) {
	query := url.Values{
		"Comercioid": {q.CommerceID},
		"Nivel0":     {q.Level0},
		"Nivel1":     {q.Level1},
		"Nivel2":     {q.Level2},
		"Nivel3":     {q.Level3},
	}

	data, err := c.do(ctx, http.MethodGet, pathCategoryPermission, query, nil)
	if errors.Is(err, ErrOpaqueResponse) {
		return c.policy == OpaqueAssumeGranted, nil
	}

	if err != nil {
		return false, err
	}

	var out struct {
		Permiso bool `json:"Permiso"`
	}

	if err := json.Unmarshal(data, &out); err != nil {
		return false, fmt.Errorf("marketplace: decoding permission response: %w", err)
	}

	return out.Permiso, nil
}

func (c *httpClient) CreateOrder(ctx context.Context, payload *OrderPayload) (*OrderResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marketplace: encoding order payload: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, pathCreateOrder, nil, body)
	if errors.Is(err, ErrOpaqueResponse) {
		// The order reached the origin but the confirmation is unreadable;
		// assume it was accepted.
		return &OrderResult{Degraded: true}, nil
	}

	if err != nil {
		return nil, err
	}

	var result OrderResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("marketplace: decoding order response: %w", err)
	}

	return &result, nil
}

// do issues the request through the proxy, falling back to a degraded
// direct-to-origin attempt on transport failures. HTTP status errors never
// trigger the fallback.
func (c *httpClient) do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	data, err := c.request(ctx, method, c.proxyBaseURL+path, query, body)
	if err == nil {
		return data, nil
	}

	var statusErr *StatusError
	if c.originBaseURL == "" || ctx.Err() != nil || errors.As(err, &statusErr) {
		return nil, err
	}

	if _, originErr := c.request(ctx, method, c.originBaseURL+path, query, body); originErr != nil {
		return nil, err
	}

	return nil, ErrOpaqueResponse
}

func (c *httpClient) request(ctx context.Context, method, rawURL string, query url.Values, body []byte) ([]byte, error) {
	if len(query) > 0 {
		rawURL = rawURL + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("marketplace: building request: %w", err)
	}

	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("marketplace: request failed: %w", err)
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("marketplace: reading response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Status: resp.StatusCode, Path: req.URL.Path}
	}

	return data, nil
}

// The terms endpoint sends these as literal backslash sequences even after
// JSON decoding. Pattern order matters: the longer escapes win over `\\`.
var escapeDecoder = strings.NewReplacer(`\u000a`, "\n", `\"`, `"`, `\\`, `\`)

// DecodeEscapes resolves the literal escape sequences the terms endpoint
// ships instead of real characters.
func DecodeEscapes(s string) string {
	return escapeDecoder.Replace(s)
}
