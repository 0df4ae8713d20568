package modules

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// probeMaxBody caps how much of a probed response body a detection
	// heuristic ever inspects.
	probeMaxBody = 1024 * 1024 // 1MB

	sourceRetryDelay = 3 * time.Second
)

// httpGet performs the single GET a detection module is allowed against url.
// ok is false for any non-2xx status; transport failures surface as errors
// for the pipeline to log.
func httpGet(ctx context.Context, client *http.Client, url string) (body string, ok bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, err
	}

	res, err := client.Do(req)
	if err != nil {
		return "", false, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", false, nil
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, probeMaxBody))
	if err != nil {
		return "", false, err
	}

	return string(raw), true, nil
}

// fetchSource fetches an open-data source URL on behalf of a subdomain
// module: User-Agent set, body capped at maxBody, one retry after a short
// delay for any failure other than rate limiting. Rate limiting (429) is
// never retried.
func fetchSource(ctx context.Context, url string, maxBody int64) ([]byte, error) {
	body, err := sourceDoRequest(ctx, url, maxBody)
	if err == nil {
		return body, nil
	}

	if strings.Contains(err.Error(), "429") {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(sourceRetryDelay):
	}

	return sourceDoRequest(ctx, url, maxBody)
}

func sourceDoRequest(ctx context.Context, url string, maxBody int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", sourceUserAgent)
	req.Header.Set("Accept", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("rate limited (429)")
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", res.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return raw, nil
}

var sourceUserAgent = "prowl (+https://github.com/vulnverified/prowl)"
