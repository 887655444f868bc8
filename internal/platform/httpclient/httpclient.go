package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultTimeout = 10 * time.Second

	// tope de body que se conserva en HTTPError
	maxErrorBody = 4 << 10
)

// Client envuelve *resty.Client con helpers comunes para adapters.
// Sin reintentos: la política de retry es de quien llama.
type Client struct {
	R       *resty.Client
	BaseURL string // opcional; si se define, DoJSON puede recibir paths relativos
}

// New crea un Client con timeout razonable.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		R: resty.New().
			SetTimeout(timeout).
			SetRetryCount(0).
			SetHeader("Accept", "application/json"),
	}
}

// NewWithBaseURL crea un Client con BaseURL + timeout.
func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	return NewWithTransport(baseURL, timeout, nil)
}

// NewWithTransport es NewWithBaseURL con un Transport propio (nil => el de resty).
func NewWithTransport(baseURL string, timeout time.Duration, tr http.RoundTripper) (*Client, error) {
	c := New(timeout)
	if tr != nil {
		c.R.SetTransport(tr)
	}
	if strings.TrimSpace(baseURL) == "" {
		return c, nil
	}
	_, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c.BaseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return c, nil
}

// ErrEmptyBody: respuesta 2xx sin body cuando se esperaba JSON.
var ErrEmptyBody = errors.New("empty response body")

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// DoJSON hace un request JSON.
// - pathOrURL: URL absoluta o path relativo si BaseURL está seteado
// - in: body a enviar (nil => sin body)
// - out: destino del JSON (nil => ignora body; si no es nil, un body vacío es error)
// Retorna *HTTPError si status no es 2xx.
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	in any,
	out any,
) error {
	if c == nil || c.R == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return err
	}

	req := c.R.R().SetContext(ctx)
	if in != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(in)
	}
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.SetHeader(k, v)
	}

	resp, err := req.Execute(method, fullURL)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}

	raw := resp.Body()
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		body := strings.TrimSpace(string(raw))
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return &HTTPError{StatusCode: resp.StatusCode(), Body: body}
	}

	if out == nil {
		return nil
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return fmt.Errorf("httpclient: unmarshal json: %w", ErrEmptyBody)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if strings.TrimSpace(c.BaseURL) == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}
