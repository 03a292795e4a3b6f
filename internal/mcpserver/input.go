package mcpserver

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/erni27/imcache"

	"github.com/ALE-Rainbow/apidoc-swagger/apidoc"
)

// documentInput represents the two ways an input document can be provided
// to a tool. Exactly one of File or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to the document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// isSet reports whether either field was provided.
func (d documentInput) isSet() bool {
	return d.File != "" || d.Content != ""
}

// recordSet is a parsed api_data document.
type recordSet struct {
	Records []apidoc.Record
}

// recordsCache holds parsed record sets for the session. File inputs are
// keyed by (absolutePath, modTime), content inputs by a SHA-256 hash, and
// the least recently used entry is evicted at capacity. Cached records are
// never modified: the converter works on copies.
var recordsCache = newRecordsCache(cfg.CacheMaxSize, 0)

// newRecordsCache returns an LRU cache of at most maxSize record sets. A
// positive sweep interval also removes expired entries in the background
// until the cache is closed.
func newRecordsCache(maxSize int, sweep time.Duration) *imcache.Cache[string, *recordSet] {
	opts := []imcache.Option[string, *recordSet]{
		imcache.WithMaxEntriesOption[string, *recordSet](maxSize),
	}
	if sweep > 0 {
		opts = append(opts, imcache.WithCleanerOption[string, *recordSet](sweep))
	}
	return imcache.New(opts...)
}

// makeCacheKey creates a cache key for the given input, or "" when the
// input cannot be cached.
func makeCacheKey(d documentInput) string {
	switch {
	case d.File != "":
		absPath, err := filepath.Abs(d.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case d.Content != "":
		h := sha256.Sum256([]byte(d.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// open validates the input and returns a reader over it plus a name for
// error messages.
func (d documentInput) open(what string) (io.ReadCloser, string, error) {
	if (d.File == "") == (d.Content == "") {
		return nil, "", fmt.Errorf("%s: exactly one of file or content must be provided", what)
	}
	if d.Content != "" {
		if int64(len(d.Content)) > cfg.MaxInlineSize {
			return nil, "", fmt.Errorf("%s: inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set APIDOC_SWAGGER_MAX_INLINE_SIZE to increase",
				what, len(d.Content), cfg.MaxInlineSize)
		}
		return io.NopCloser(strings.NewReader(d.Content)), what, nil
	}
	f, err := os.Open(d.File)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", what, err)
	}
	return f, d.File, nil
}

// resolveRecords parses the records document, using the cache for both
// file and content inputs.
func (d documentInput) resolveRecords() (*recordSet, error) {
	r, source, err := d.open("records")
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(d)
		ttl = cfg.CacheContentTTL
		if d.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}
	if key != "" {
		if cached, ok := recordsCache.Get(key); ok {
			return cached, nil
		}
	}

	records, err := apidoc.ParseRecords(r, source)
	if err != nil {
		return nil, err
	}
	set := &recordSet{Records: records}
	if key != "" {
		recordsCache.Set(key, set, imcache.WithExpiration(ttl))
	}
	return set, nil
}

// resolveProject parses the project metadata. An unset input yields nil.
func (d documentInput) resolveProject() (*apidoc.Project, error) {
	if !d.isSet() {
		return nil, nil
	}
	r, source, err := d.open("project")
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return apidoc.ParseProject(r, source)
}

// resolveOverride parses the override document. An unset input yields nil.
func (d documentInput) resolveOverride() (map[string]any, error) {
	if !d.isSet() {
		return nil, nil
	}
	r, source, err := d.open("override")
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()
	return apidoc.ParseOverride(r, source)
}
