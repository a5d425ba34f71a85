package dashboard

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"time"
)

// maxBody bounds remote documents and series.
const maxBody = 8 << 20

// httpClient is a shared client with sensible timeouts for remote dashboards.
var httpClient = &http.Client{
	Timeout: 15 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:    5,
		IdleConnTimeout: 30 * time.Second,
	},
}

// fetch GETs u and returns its body and response headers.
func fetch(ctx context.Context, u string) ([]byte, http.Header, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/toml, application/yaml, application/json;q=0.9, */*;q=0.1")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("fetch %s: HTTP %d", u, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", u, err)
	}
	return body, resp.Header, nil
}

func fetchDocument(ctx context.Context, u string) (*Document, error) {
	body, header, err := fetch(ctx, u)
	if err != nil {
		return nil, err
	}
	kind, err := remoteKind(u, header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	doc, err := Decode(bytes.NewReader(body), kind)
	if err != nil {
		return nil, fmt.Errorf("decode dashboard %s: %w", u, err)
	}
	if lm := header.Get("Last-Modified"); lm != "" {
		if t, err := http.ParseTime(lm); err == nil {
			doc.ModTime = t
		}
	}
	return doc, nil
}

// remoteKind prefers the URL extension and falls back to the content type.
func remoteKind(u, contentType string) (Kind, error) {
	if parsed, err := url.Parse(u); err == nil {
		if kind, err := KindOf(parsed.Path); err == nil {
			return kind, nil
		}
	}
	mt, _, _ := mime.ParseMediaType(contentType)
	switch mt {
	case "application/toml":
		return KindTOML, nil
	case "application/yaml", "application/x-yaml", "text/yaml":
		return KindYAML, nil
	case "application/json":
		return KindJSON, nil
	}
	return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, u, contentType)
}
