package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"streamresolve/internal/formats"
	"streamresolve/internal/innertube"
	"streamresolve/internal/orchestrator"
)

// Config configures a Client. The zero value works: default HTTP client,
// default profile order, 12s per-attempt timeout, no logging.
type Config struct {
	HTTPClient     *http.Client
	ProxyURL       string
	RequestTimeout time.Duration
	Profiles       []innertube.ClientProfile
	Logger         *zap.Logger
}

// Client resolves video references into playable stream URLs. Safe for
// concurrent use; extraction calls share no mutable state.
type Client struct {
	engine *orchestrator.Engine
	logger *zap.Logger
}

func New(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = newHTTPClient(cfg.ProxyURL)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fetcher := innertube.NewFetcher(innertube.FetcherConfig{
		HTTPClient: cfg.HTTPClient,
		Timeout:    cfg.RequestTimeout,
		Logger:     logger,
	})
	return &Client{
		engine: orchestrator.NewEngine(fetcher, cfg.Profiles, logger),
		logger: logger.Named("client"),
	}
}

// Extract runs the full pipeline: resolve the identifier, walk the profile
// fallback order, and score the retained formats.
func (c *Client) Extract(ctx context.Context, input string) (*ExtractionResult, error) {
	videoID, err := ParseVideoID(input)
	if err != nil {
		c.logger.Warn("unresolvable video reference", zap.String("input", input))
		return nil, err
	}

	extraction, err := c.engine.Extract(ctx, videoID)
	if err != nil {
		return nil, mapError(err)
	}

	streams := make([]ExtractedStream, 0, len(extraction.Formats))
	for _, f := range extraction.Formats {
		streams = append(streams, toExtractedStream(f))
	}

	result := &ExtractionResult{
		VideoID: videoID,
		Streams: streams,
	}
	if bestRaw, ok := formats.SelectBest(extraction.Formats); ok {
		best := toExtractedStream(bestRaw)
		result.Best = &best
	}

	details := extraction.Response.VideoDetails
	result.Title = details.Title
	result.Author = details.Author
	result.IsLive = details.IsLiveContent
	if details.LengthSeconds != "" {
		result.DurationSec, _ = strconv.ParseInt(details.LengthSeconds, 10, 64)
	}
	if details.ViewCount != "" {
		result.ViewCount, _ = strconv.ParseInt(details.ViewCount, 10, 64)
	}

	return result, nil
}

// GetBestStreamURL is a convenience wrapper returning only the best
// stream's URL.
func (c *Client) GetBestStreamURL(ctx context.Context, input string) (string, error) {
	result, err := c.Extract(ctx, input)
	if err != nil {
		return "", err
	}
	if result.Best == nil {
		return "", ErrNoPlayableFormats
	}
	return result.Best.URL, nil
}

// newHTTPClient routes outbound requests through the proxy when one is
// configured and parses to a usable URL; anything else keeps the default
// client so extraction still works with a bad proxy setting.
func newHTTPClient(proxyURL string) *http.Client {
	proxy, err := url.Parse(strings.TrimSpace(proxyURL))
	if err != nil || proxy.Scheme == "" || proxy.Host == "" {
		return http.DefaultClient
	}
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return http.DefaultClient
	}
	transport := base.Clone()
	transport.Proxy = http.ProxyURL(proxy)
	return &http.Client{Transport: transport}
}

func toExtractedStream(f innertube.Format) ExtractedStream {
	cls := formats.Classify(f)
	return ExtractedStream{
		URL:          f.URL,
		QualityLabel: f.QualityLabel,
		MimeType:     f.MimeType,
		Itag:         f.Itag,
		HasAudio:     cls.HasAudio,
		HasVideo:     cls.HasVideo,
		Bitrate:      f.Bitrate,
	}
}

// mapError folds orchestrator attempt errors into the public sentinels.
// A uniform playability verdict across every attempt keeps its class;
// mixed or non-playability failures collapse to exhaustion.
func mapError(err error) error {
	var all *orchestrator.AllClientsFailedError
	if !errors.As(err, &all) {
		return err
	}
	loginOnly := len(all.Attempts) > 0
	unplayableOnly := len(all.Attempts) > 0
	for _, attempt := range all.Attempts {
		var pErr *orchestrator.PlayabilityError
		if !errors.As(attempt.Err, &pErr) {
			loginOnly, unplayableOnly = false, false
			break
		}
		loginOnly = loginOnly && pErr.RequiresLogin()
		unplayableOnly = unplayableOnly && pErr.IsUnavailable()
	}
	switch {
	case loginOnly:
		return fmt.Errorf("%w: %v", ErrLoginRequired, err)
	case unplayableOnly:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrAllClientsFailed, err)
}
