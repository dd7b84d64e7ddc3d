// Package mlclient implements the pluggable zero-shot NER client consulted
// by the ML-backed name detector (see the name detection design). It plays
// the same role the teacher's Ollama integration plays for its anonymizer:
// a cache-first call to a local model server, with an in-flight dedup map
// so concurrent detectAll invocations over the same note text never issue
// duplicate model queries.
//
// Unlike the teacher's async-dispatch-with-fallback-token pattern (PII is
// tokenized immediately from the regex match and the cache is warmed in the
// background), the NER client here is queried synchronously: the ML
// detector is the one detector permitted to block on model I/O, and its
// spans must be available before the resolver runs. A cache hit skips the
// network call entirely; a miss pays for one synchronous query, after
// which every future call with the same text is a hit.
package mlclient

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"phi-redact/internal/metrics"
)

// Detection is one NER hit returned by the model server.
type Detection struct {
	Original   string  `json:"original"`
	Label      string  `json:"label"` // patient_name, provider_name, person_name, family_member
	Start      int     `json:"start"` // character offset within the queried text; -1 if unknown
	End        int     `json:"end"`
	Confidence float64 `json:"confidence"`
}

// Client queries a local zero-shot NER model server and caches its results.
// The zero value is not usable; construct with New.
type Client struct {
	endpoint   string
	model      string
	httpClient *http.Client
	m          *metrics.Metrics // nil = no metrics collection

	cache PersistentCache

	inflightMu sync.Mutex
	inflight   map[string]chan struct{} // closed when the in-flight query completes

	sem chan struct{} // limits concurrent model queries
}

// defaultCacheCapacity mirrors the teacher's Ollama cache default: bounds
// both the hot in-memory S3-FIFO layer and, by eviction, the on-disk bbolt size.
const defaultCacheCapacity = 50_000

// New creates a Client with an explicit cache path.
// If cachePath is non-empty, a bbolt persistent cache is opened at that path,
// wrapped with an S3-FIFO in-memory eviction layer (capacity=cacheCapacity,
// defaulting to defaultCacheCapacity when cacheCapacity <= 0).
// If cachePath is empty, an unbounded in-memory cache is used.
func New(endpoint, model string, maxConcurrent int, cachePath string, cacheCapacity int, m *metrics.Metrics) *Client {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	if cacheCapacity <= 0 {
		cacheCapacity = defaultCacheCapacity
	}

	var c PersistentCache
	if cachePath != "" {
		bbolt, err := newBboltCache(cachePath)
		if err != nil {
			log.Printf("[MLCLIENT] failed to open persistent cache at %q, falling back to memory: %v", cachePath, err)
			c = newMemoryCache()
		} else {
			c = newS3FIFOCache(bbolt, cacheCapacity)
		}
	} else {
		c = newMemoryCache()
	}

	return &Client{
		endpoint:   endpoint,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		m:          m,
		cache:      c,
		inflight:   make(map[string]chan struct{}),
		sem:        make(chan struct{}, maxConcurrent),
	}
}

// Close releases resources held by the client, including the persistent cache.
func (c *Client) Close() error {
	return c.cache.Close()
}

// Detect returns the NER detections for text, consulting the cache first.
// A cache miss issues one synchronous query to the model server, honoring
// ctx cancellation. Concurrent calls for identical text are deduplicated:
// only the first issues a query; the rest wait on it and share its result.
//
// Any failure (timeout, malformed response, server unavailable) is
// returned as an error; the caller (the ML detector) treats this as
// Model-unavailable and contributes zero spans rather than failing the
// pipeline, per the error handling design.
func (c *Client) Detect(ctx context.Context, text string) ([]Detection, error) {
	key := cacheKey(text)

	if encoded, hit := c.cache.Get(key); hit {
		if c.m != nil {
			c.m.MLCacheHits.Add(1)
		}
		return decodeDetections(encoded)
	}
	if c.m != nil {
		c.m.MLCacheMisses.Add(1)
	}

	c.inflightMu.Lock()
	if done, ok := c.inflight[key]; ok {
		c.inflightMu.Unlock()
		select {
		case <-done:
			if encoded, hit := c.cache.Get(key); hit {
				return decodeDetections(encoded)
			}
			return nil, fmt.Errorf("ner query for in-flight text did not populate cache")
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	done := make(chan struct{})
	c.inflight[key] = done
	c.inflightMu.Unlock()

	defer func() {
		c.inflightMu.Lock()
		delete(c.inflight, key)
		c.inflightMu.Unlock()
		close(done)
	}()

	if c.m != nil {
		c.m.MLDispatches.Add(1)
	}

	select {
	case c.sem <- struct{}{}:
		defer func() { <-c.sem }()
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	detections, err := c.queryHTTP(ctx, text)
	if err != nil {
		if c.m != nil {
			c.m.MLErrors.Add(1)
		}
		return nil, err
	}

	if encoded, encErr := encodeDetections(detections); encErr == nil {
		c.cache.Set(key, encoded)
	}
	return detections, nil
}

// cacheKey hashes text so long note bodies do not become bbolt/S3-FIFO keys
// directly; collisions are not a concern at the engine's confidence floor
// since a hash match implies byte-identical input.
func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func encodeDetections(d []Detection) (string, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeDetections(encoded string) ([]Detection, error) {
	var d []Detection
	if err := json.Unmarshal([]byte(encoded), &d); err != nil {
		return nil, fmt.Errorf("decode cached detections: %w", err)
	}
	return d, nil
}

// --- model server wire format ---

type nerRequest struct {
	Model string `json:"model"`
	Text  string `json:"text"`
}

type nerResponse struct {
	Detections []Detection `json:"detections"`
}

// queryHTTP sends a single synchronous request to the NER model server and
// returns the parsed detections.
func (c *Client) queryHTTP(ctx context.Context, text string) ([]Detection, error) {
	reqBody, err := json.Marshal(nerRequest{Model: c.model, Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal ner request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/ner", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create ner request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req) // #nosec G704 -- endpoint from trusted wiring config, not user input
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close on HTTP response body

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ner server returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var nerResp nerResponse
	if err := json.Unmarshal(body, &nerResp); err != nil {
		return nil, fmt.Errorf("ner response parse error: %w", err)
	}
	return nerResp.Detections, nil
}
