// Package syncsvc mirrors the local product store to the remote inventory
// API. Writes go through the local intermediary endpoint first and fall back
// to the remote endpoint directly; local durability is authoritative, so a
// failed sync is reported but never undoes a committed local write.
package syncsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hemolabs/labelstock/internal/config"
	"github.com/hemolabs/labelstock/internal/models"
)

// ErrNotConfigured is returned when a required remote endpoint URL is
// missing. No network call is attempted in that case.
var ErrNotConfigured = errors.New("remote endpoint not configured")

const defaultTimeout = 30 * time.Second

// Client talks to the remote inventory API.
type Client struct {
	saveURL      string
	listURL      string
	proxySaveURL string
	proxyListURL string
	httpClient   *http.Client
}

// NewClient builds a sync client. The direct save and list URLs are
// required; the proxy URLs are optional and tried first when present.
func NewClient(cfg config.SyncConfig) (*Client, error) {
	if cfg.SaveURL == "" || cfg.ListURL == "" {
		return nil, ErrNotConfigured
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		saveURL:      cfg.SaveURL,
		listURL:      cfg.ListURL,
		proxySaveURL: cfg.ProxySaveURL,
		proxyListURL: cfg.ProxyListURL,
		httpClient:   &http.Client{Timeout: timeout},
	}, nil
}

// Result describes one push attempt: which endpoint ended up handling it,
// how many flat records were sent, and how it went. Err is nil unless every
// attempt failed.
type Result struct {
	Endpoint string
	Records  int
	Outcome  string
	Err      error
}

// Entry converts a result into a sync-log entry.
func (r Result) Entry() models.SyncEntry {
	e := models.SyncEntry{
		Endpoint: r.Endpoint,
		Records:  r.Records,
		Outcome:  r.Outcome,
	}
	if r.Err != nil {
		e.Error = r.Err.Error()
	}
	return e
}

// Push flattens products (one record per lot, at least one per product) and
// sends them to the remote save endpoint.
func (c *Client) Push(ctx context.Context, products []models.Product) Result {
	return c.PushFlat(ctx, models.FlattenAll(products))
}

// PushFlat sends flat records to the local proxy endpoint first, then to
// the direct remote endpoint. The whole batch goes as one JSON array.
func (c *Client) PushFlat(ctx context.Context, flats []models.ProductFlat) Result {
	if flats == nil {
		flats = []models.ProductFlat{}
	}
	res := Result{Records: len(flats)}

	payload, err := json.Marshal(flats)
	if err != nil {
		res.Outcome = models.SyncOutcomeFailed
		res.Err = fmt.Errorf("could not encode payload: %w", err)
		return res
	}

	var proxyErr error
	if c.proxySaveURL != "" {
		if proxyErr = c.postJSON(ctx, c.proxySaveURL, payload); proxyErr == nil {
			res.Endpoint = c.proxySaveURL
			res.Outcome = models.SyncOutcomeOK
			return res
		}
	}

	// The direct endpoint may sit behind CORS-style constraints that make
	// its response opaque; a completed round trip counts as success.
	directErr := c.postOpaque(ctx, c.saveURL, payload)
	if directErr == nil {
		res.Endpoint = c.saveURL
		if proxyErr != nil {
			res.Outcome = models.SyncOutcomeFallback
		} else {
			res.Outcome = models.SyncOutcomeOK
		}
		return res
	}

	res.Endpoint = c.saveURL
	res.Err = errors.Join(proxyErr, directErr)
	if isTimeout(proxyErr) || isTimeout(directErr) {
		res.Outcome = models.SyncOutcomeTimeout
	} else {
		res.Outcome = models.SyncOutcomeFailed
	}
	return res
}

// FetchList retrieves the remote catalog, proxy first then direct. The
// response is either a bare JSON array or an object whose first array-valued
// property (in document order) holds the records.
func (c *Client) FetchList(ctx context.Context) ([]models.ProductFlat, error) {
	var proxyErr error
	if c.proxyListURL != "" {
		items, err := c.getList(ctx, c.proxyListURL)
		if err == nil {
			return items, nil
		}
		proxyErr = err
	}

	items, directErr := c.getList(ctx, c.listURL)
	if directErr == nil {
		return items, nil
	}
	return nil, errors.Join(proxyErr, directErr)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("save via %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	// Error bodies carry human-readable detail; success bodies may be JSON
	// or plain text and are accepted either way.
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("save via %s: status %d: %s", endpoint, resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}

func (c *Client) postOpaque(ctx context.Context, endpoint string, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("save via %s: %w", endpoint, err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

func (c *Client) getList(ctx context.Context, endpoint string) ([]models.ProductFlat, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list via %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("list via %s: status %d: %s", endpoint, resp.StatusCode, bytes.TrimSpace(body))
	}

	return decodeList(resp.Body)
}

// decodeList accepts either a bare array or an object wrapping one. The
// object form is walked token by token so "first array-valued property"
// respects the document's key order.
func decodeList(r io.Reader) ([]models.ProductFlat, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("unexpected list response: %w", err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return []models.ProductFlat{}, nil
	}

	switch delim {
	case '[':
		var items []models.ProductFlat
		for dec.More() {
			var item models.ProductFlat
			if err := dec.Decode(&item); err != nil {
				return nil, fmt.Errorf("unexpected list response: %w", err)
			}
			items = append(items, item)
		}
		if items == nil {
			items = []models.ProductFlat{}
		}
		return items, nil
	case '{':
		for dec.More() {
			if _, err := dec.Token(); err != nil { // property name
				return nil, fmt.Errorf("unexpected list response: %w", err)
			}
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, fmt.Errorf("unexpected list response: %w", err)
			}
			trimmed := bytes.TrimSpace(raw)
			if len(trimmed) > 0 && trimmed[0] == '[' {
				var items []models.ProductFlat
				if err := json.Unmarshal(trimmed, &items); err != nil {
					return nil, fmt.Errorf("unexpected list response: %w", err)
				}
				return items, nil
			}
		}
		return []models.ProductFlat{}, nil
	default:
		return []models.ProductFlat{}, nil
	}
}

// isTimeout tells deadline failures apart from other network errors so the
// sync log can distinguish a slow remote from a broken one.
func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	return errors.As(err, &ue) && ue.Timeout()
}
