package tablesource

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"witnet_addresses/internal/app/port"
	"witnet_addresses/internal/domain/entity"

	"github.com/valyala/fasthttp"
)

const defaultRequestTimeout = 10 * time.Second

// HTTPSource downloads the table document from an http(s) URL.
type HTTPSource struct {
	client  *fasthttp.Client
	url     string
	format  Format
	timeout time.Duration
	logger  port.Logger
}

// NewHTTPSource creates an HTTPSource. The format follows the URL path extension
// unless the response declares a YAML content type.
func NewHTTPSource(rawURL string, timeout time.Duration, log port.Logger) (*HTTPSource, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid address table URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid address table URL %q: scheme must be http or https", rawURL)
	}
	if log == nil {
		log = port.NopLogger{}
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &HTTPSource{
		client:  &fasthttp.Client{Name: "witnet-addresses"},
		url:     rawURL,
		format:  FormatFromPath(u.Path),
		timeout: timeout,
		logger:  log,
	}, nil
}

func (s *HTTPSource) Load(ctx context.Context) (entity.AddressTable, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(s.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json, application/yaml")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	s.logger.Debug("Requesting address table", "url", s.url)

	if deadline, ok := ctx.Deadline(); ok {
		if err := s.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("failed to execute request to %s: %w", s.url, err)
		}
	} else {
		if err := s.client.DoTimeout(req, resp, s.timeout); err != nil {
			return nil, fmt.Errorf("failed to execute request to %s with default timeout: %w", s.url, err)
		}
	}

	if status := resp.StatusCode(); status != fasthttp.StatusOK {
		return nil, fmt.Errorf("address table request to %s returned status %d", s.url, status)
	}

	format := s.format
	if ct := strings.ToLower(string(resp.Header.ContentType())); strings.Contains(ct, "yaml") {
		format = FormatYAML
	}

	table, err := Decode(resp.Body(), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.url, err)
	}
	s.logger.Info("Address table downloaded", "url", s.url, "format", string(format), "ecosystems", len(table))
	return table, nil
}

func (s *HTTPSource) Name() string {
	return s.url
}
