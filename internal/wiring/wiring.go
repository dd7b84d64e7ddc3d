// Package wiring loads process-wide setup for constructing a redaction
// registry: dictionary data paths, the ML/NER endpoint, the ML response
// cache file path, and the log level. It is deliberately separate from the
// root package's Config type — per-call detection options (name detection
// mode, confidence floor, context window) are an explicit argument to every
// detectAll call and are never read from disk or environment, per the
// external-interfaces design. This package only wires up the long-lived
// infrastructure a Registry needs once at process start.
//
// Settings are layered: defaults → redact-engine.json → environment
// variables (env vars win), mirroring how the teacher proxy loads its own
// configuration.
package wiring

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
)

// Wiring holds process-wide infrastructure settings for the redaction engine.
type Wiring struct {
	LogLevel string `json:"logLevel"`

	MLEndpoint        string `json:"mlEndpoint"`        // NER model server base URL
	MLModel           string `json:"mlModel"`           // model identifier sent to the NER server
	MLMaxConcurrent   int    `json:"mlMaxConcurrent"`   // concurrent NER queries allowed
	MLCacheFile       string `json:"mlCacheFile"`       // bbolt cache path; empty = in-memory only
	MLCacheCapacity   int    `json:"mlCacheCapacity"`   // S3-FIFO capacity; 0 = mlclient default (50,000)

	DictionaryDir string `json:"dictionaryDir"` // directory of frozen dictionary data files; empty = built-in tables only
}

// Load returns wiring settings with defaults overridden by
// redact-engine.json and environment variables.
func Load() *Wiring {
	w := defaults()
	loadFile(w, "redact-engine.json")
	loadEnv(w)
	return w
}

func defaults() *Wiring {
	return &Wiring{
		LogLevel:        "info",
		MLEndpoint:      "http://localhost:11434",
		MLModel:         "gliner-phi-en",
		MLMaxConcurrent: 1,
		MLCacheFile:     "ner-cache.db",
		MLCacheCapacity: 50_000,
		DictionaryDir:   "",
	}
}

func loadFile(w *Wiring, path string) {
	data, err := os.ReadFile(path) //nolint:gosec // G703: path is a controlled config file path, not user input
	if err != nil {
		return // file is optional
	}
	if err := json.Unmarshal(data, w); err != nil {
		log.Printf("[WIRING] Warning: could not parse %s: %v", path, err)
	} else {
		log.Printf("[WIRING] Loaded %s", path)
	}
}

func loadEnv(w *Wiring) {
	if v := os.Getenv("REDACT_LOG_LEVEL"); v != "" {
		w.LogLevel = v
	}
	if v := os.Getenv("REDACT_ML_ENDPOINT"); v != "" {
		w.MLEndpoint = v
	}
	if v := os.Getenv("REDACT_ML_MODEL"); v != "" {
		w.MLModel = v
	}
	if v := os.Getenv("REDACT_ML_MAX_CONCURRENT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			w.MLMaxConcurrent = n
		}
	}
	if v := os.Getenv("REDACT_ML_CACHE_FILE"); v != "" {
		w.MLCacheFile = v
	}
	if v := os.Getenv("REDACT_ML_CACHE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			w.MLCacheCapacity = n
		}
	}
	if v := os.Getenv("REDACT_DICTIONARY_DIR"); v != "" {
		w.DictionaryDir = v
	}
}
