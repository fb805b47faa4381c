// Package translate calls an external machine-translation service to render
// notification text in a customer's language. Translation is best-effort:
// a primary endpoint is tried first, then a fallback endpoint, and if both
// fail the original text is returned unchanged. Callers never see an error.
package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"
)

// Options configures a Client.
type Options struct {
	PrimaryURL  string
	FallbackURL string
	Timeout     time.Duration
	CacheSize   int
	CacheTTL    time.Duration
}

// Client is a translation client with a bounded in-memory result cache.
type Client struct {
	primaryURL  string
	fallbackURL string
	httpClient  *http.Client
	cache       *cache
}

// NewClient creates a Client from opts, applying sane defaults for any zero
// values.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	size := opts.CacheSize
	if size <= 0 {
		size = 2048
	}
	return &Client{
		primaryURL:  opts.PrimaryURL,
		fallbackURL: opts.FallbackURL,
		httpClient:  &http.Client{Timeout: timeout},
		cache:       newCache(size, opts.CacheTTL),
	}
}

// Translate translates text from sourceLang to targetLang. Identical languages
// short-circuit without any network call. On any failure of both endpoints the
// original text is returned.
func (c *Client) Translate(ctx context.Context, text, sourceLang, targetLang string) string {
	if sourceLang == targetLang || text == "" {
		return text
	}

	cacheKey := sourceLang + ":" + targetLang + ":" + text
	if cached, ok := c.cache.get(cacheKey); ok {
		return cached
	}

	translated, err := c.translatePrimary(ctx, text, sourceLang, targetLang)
	if err != nil {
		slog.Warn("primary translation failed", "error", err, "target", targetLang)
		translated, err = c.translateFallback(ctx, text, sourceLang, targetLang)
		if err != nil {
			slog.Warn("fallback translation failed", "error", err, "target", targetLang)
			return text
		}
	}

	c.cache.set(cacheKey, translated)
	return translated
}

// TranslateBatch translates each text in order.
func (c *Client) TranslateBatch(ctx context.Context, texts []string, sourceLang, targetLang string) []string {
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = c.Translate(ctx, text, sourceLang, targetLang)
	}
	return out
}

// TranslateObject translates the string values of obj; non-string values are
// kept as is.
func (c *Client) TranslateObject(ctx context.Context, obj map[string]interface{}, sourceLang, targetLang string) map[string]interface{} {
	out := make(map[string]interface{}, len(obj))
	for key, value := range obj {
		if s, ok := value.(string); ok {
			out[key] = c.Translate(ctx, s, sourceLang, targetLang)
		} else {
			out[key] = value
		}
	}
	return out
}

// translatePrimary posts to a LibreTranslate-compatible endpoint.
func (c *Client) translatePrimary(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"q":      text,
		"source": sourceLang,
		"target": targetLang,
		"format": "text",
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.primaryURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("primary endpoint returned status %d: %s", resp.StatusCode, raw)
	}

	var result struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}
	if result.TranslatedText == "" {
		return "", fmt.Errorf("primary endpoint returned no translation")
	}
	return result.TranslatedText, nil
}

// translateFallback calls a Google-translate-compatible endpoint. The response
// is a nested array; the translated text sits at [0][0][0].
func (c *Client) translateFallback(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.fallbackURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fallback endpoint returned status %d: %s", resp.StatusCode, raw)
	}

	var payload []interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", err
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("fallback endpoint returned empty payload")
	}
	segments, ok := payload[0].([]interface{})
	if !ok || len(segments) == 0 {
		return "", fmt.Errorf("fallback endpoint returned unexpected payload shape")
	}
	first, ok := segments[0].([]interface{})
	if !ok || len(first) == 0 {
		return "", fmt.Errorf("fallback endpoint returned unexpected segment shape")
	}
	translated, ok := first[0].(string)
	if !ok || translated == "" {
		return "", fmt.Errorf("fallback endpoint returned no translation")
	}
	return translated, nil
}
