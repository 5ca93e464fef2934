// Package upstream is the typed client for the Kacum REST backend. Each
// resource (vehiculos, piezas, fotos, clientes, pedidos, documentos,
// incidencias) gets a thin fetcher with get-all/get-by-id/create/update/delete
// plus pagination parameters; the package is pure transport — cache
// write-through and enrichment happen in the service layer.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/apierror"
	"github.com/psanchezeu/kacum-desguaces-v03-sub000/internal/infra"
)

// RequestTimeout is the fixed per-request budget. There is no retry policy:
// a timed-out or failed request is surfaced once and the caller decides
// whether to fall back to the mirror cache.
const RequestTimeout = 10 * time.Second

// Error carries the upstream HTTP status plus the detail from its error
// envelope, so services can distinguish not-found from business rejections.
type Error struct {
	Status  int
	Detalle string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream: %d: %s", e.Status, e.Detalle)
}

// EsNoEncontrado reports whether err is an upstream 404.
func EsNoEncontrado(err error) bool {
	var ue *Error
	return errors.As(err, &ue) && ue.Status == http.StatusNotFound
}

// EsRechazo reports whether err is a business-rule rejection (409/422),
// e.g. deleting a vehiculo that still has piezas referencing it.
func EsRechazo(err error) bool {
	var ue *Error
	if !errors.As(err, &ue) {
		return false
	}
	return ue.Status == http.StatusConflict || ue.Status == http.StatusUnprocessableEntity
}

type tokenKey struct{}

// ConToken returns a context carrying the caller's bearer token; the client
// forwards it verbatim on every request (auth is owned by the upstream).
func ConToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// Client talks to the upstream REST API. All requests share one http.Client
// with the fixed timeout and, when configured, go through the circuit
// breaker so a dead backend fast-fails instead of stacking timeouts.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cb         *infra.CircuitBreaker
}

func NewClient(baseURL string, cb *infra.CircuitBreaker) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: RequestTimeout},
		cb:         cb,
	}
}

// do executes one JSON request. body may be nil; out may be nil for 204s.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	call := func() error { return c.doOnce(ctx, method, path, query, body, out) }
	if c.cb == nil {
		return call()
	}
	return c.cb.Execute(call)
}

func (c *Client) doOnce(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("upstream: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.prepare(ctx, req, query)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

// subir executes a multipart upload (fotos, documentos).
func (c *Client) subir(ctx context.Context, path string, campos map[string]string, campoArchivo, nombre string, archivo io.Reader, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range campos {
		if err := w.WriteField(k, v); err != nil {
			return fmt.Errorf("upstream: multipart field %s: %w", k, err)
		}
	}
	fw, err := w.CreateFormFile(campoArchivo, nombre)
	if err != nil {
		return fmt.Errorf("upstream: multipart file: %w", err)
	}
	if _, err := io.Copy(fw, archivo); err != nil {
		return fmt.Errorf("upstream: multipart copy: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("upstream: multipart close: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("upstream: create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	c.prepare(ctx, req, nil)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream: POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	return decodeResponse(resp, out)
}

func (c *Client) prepare(ctx context.Context, req *http.Request, query url.Values) {
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	if token, ok := ctx.Value(tokenKey{}).(string); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
}

func decodeResponse(resp *http.Response, out any) error {
	if resp.StatusCode >= 400 {
		detalle := "respuesta de error sin detalle"
		var apiErr apierror.APIError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Detail != "" {
			detalle = apiErr.Detail
		}
		return &Error{Status: resp.StatusCode, Detalle: detalle}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("upstream: decode response: %w", err)
	}
	return nil
}
