package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/anomredux/dashfmt/internal/logging"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for sources whose encoding cannot be
// told from the extension or content type.
var ErrUnsupportedFormat = errors.New("unsupported dashboard format")

// Kind is a document encoding.
type Kind string

const (
	KindTOML Kind = "toml"
	KindYAML Kind = "yaml"
	KindJSON Kind = "json"
)

// KindOf returns the encoding implied by a file name or URL path.
func KindOf(name string) (Kind, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".toml":
		return KindTOML, nil
	case ".yaml", ".yml":
		return KindYAML, nil
	case ".json":
		return KindJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
}

// IsRemote reports whether src is an http(s) URL.
func IsRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Load reads the document at src, a local path or an http(s) URL, and
// fills charts that name a series source.
func Load(ctx context.Context, src string) (*Document, error) {
	var (
		doc *Document
		err error
	)
	if IsRemote(src) {
		doc, err = fetchDocument(ctx, src)
	} else {
		doc, err = loadFile(src)
	}
	if err != nil {
		return nil, err
	}
	doc.Origin = src

	log := logging.FromContext(ctx)
	for i := range doc.Charts {
		c := &doc.Charts[i]
		if c.Source == "" {
			continue
		}
		res, err := readSource(ctx, src, c.Source)
		if err != nil {
			return nil, fmt.Errorf("chart %q: %w", c.Title, err)
		}
		c.apply(res)
		if res.SkipCount > 0 || res.ErrorCount > 0 {
			log.Warn().
				Str("chart", c.Title).
				Str("source", c.Source).
				Int("skipped", res.SkipCount).
				Int("errors", res.ErrorCount).
				Msg("series lines ignored")
		}
	}
	return doc, nil
}

func loadFile(name string) (*Document, error) {
	kind, err := KindOf(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("stat dashboard: %w", err)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open dashboard: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f, kind)
	if err != nil {
		return nil, fmt.Errorf("decode dashboard %s: %w", name, err)
	}
	doc.ModTime = info.ModTime()
	return doc, nil
}

// Decode parses a document in the given encoding.
func Decode(r io.Reader, kind Kind) (*Document, error) {
	var doc Document
	switch kind {
	case KindTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, err
		}
	case KindYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case KindJSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind)
	}
	return &doc, nil
}

// readSource resolves a series reference against the document origin.
func readSource(ctx context.Context, origin, ref string) (SeriesResult, error) {
	if IsRemote(origin) || IsRemote(ref) {
		u, err := resolveURL(origin, ref)
		if err != nil {
			return SeriesResult{}, err
		}
		body, _, err := fetch(ctx, u)
		if err != nil {
			return SeriesResult{}, err
		}
		return ReadSeries(bytes.NewReader(body)), nil
	}

	name := ref
	if !filepath.IsAbs(name) {
		name = filepath.Join(filepath.Dir(origin), name)
	}
	f, err := os.Open(name)
	if err != nil {
		return SeriesResult{}, fmt.Errorf("open series: %w", err)
	}
	defer f.Close()
	return ReadSeries(f), nil
}

func resolveURL(base, ref string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	r, err := url.Parse(ref)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	return b.ResolveReference(r).String(), nil
}

// Files returns the local files a document was built from: the document
// itself and every chart source. Remote documents have none.
func (d *Document) Files() []string {
	if d == nil || d.Origin == "" || IsRemote(d.Origin) {
		return nil
	}
	files := []string{d.Origin}
	for _, c := range d.Charts {
		if c.Source == "" || IsRemote(c.Source) {
			continue
		}
		name := c.Source
		if !filepath.IsAbs(name) {
			name = filepath.Join(filepath.Dir(d.Origin), name)
		}
		files = append(files, name)
	}
	return files
}
