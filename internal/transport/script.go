package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/lepinkainen/narou/internal/errors"
	"github.com/lepinkainen/narou/internal/params"
)

const (
	// CallbackParam is the query parameter naming the JSONP callback.
	CallbackParam = "callback"
	// DefaultCallbackPrefix starts every generated callback id.
	DefaultCallbackPrefix = "__jp"
	// DefaultScriptTimeout bounds how long a script request may stay pending.
	DefaultScriptTimeout = 15 * time.Second
)

var callbackSeq atomic.Uint64

// nextCallback returns a process-wide unique callback id.
func nextCallback(prefix string) string {
	return prefix + strconv.FormatUint(callbackSeq.Add(1)-1, 10)
}

// Tag describes one injected script element.
type Tag struct {
	Src      string
	Callback string
}

// Element is an injected script that can be taken out of the document.
type Element interface {
	Remove()
}

// Document is where script elements are injected. Loading the script must
// end in a registry Call (or Fail) for tag.Callback.
type Document interface {
	Append(ctx context.Context, tag Tag, registry *Registry) (Element, error)
}

type elementFunc func()

func (f elementFunc) Remove() { f() }

// Script delivers requests by injecting a JSONP script and waiting for the
// callback it invokes.
type Script struct {
	document Document
	registry *Registry
	prefix   string
	timeout  time.Duration
}

// ScriptOption configures a Script transport.
type ScriptOption func(*Script)

// WithTimeout sets how long to wait for the callback. Zero waits forever.
func WithTimeout(d time.Duration) ScriptOption {
	return func(s *Script) { s.timeout = d }
}

// WithCallbackPrefix changes the callback id prefix.
func WithCallbackPrefix(prefix string) ScriptOption {
	return func(s *Script) { s.prefix = prefix }
}

// WithRegistry uses r instead of DefaultRegistry.
func WithRegistry(r *Registry) ScriptOption {
	return func(s *Script) { s.registry = r }
}

// NewScript creates a script transport injecting into doc.
func NewScript(doc Document, opts ...ScriptOption) *Script {
	s := &Script{
		document: doc,
		registry: DefaultRegistry,
		prefix:   DefaultCallbackPrefix,
		timeout:  DefaultScriptTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute implements Transport.
func (s *Script) Execute(ctx context.Context, endpoint string, p params.Bag) (json.RawMessage, error) {
	callback := nextCallback(s.prefix)

	bag := p.Merge(params.Bag{
		params.KeyOut:  "jsonp",
		params.KeyGzip: "0",
		CallbackParam:  callback,
	})
	src, err := buildURL(endpoint, bag)
	if err != nil {
		return nil, err
	}

	done := s.registry.Register(callback)

	slog.Debug("Injecting script", "callback", callback, "src", src)
	element, err := s.document.Append(ctx, Tag{Src: src, Callback: callback}, s.registry)
	if err != nil {
		s.registry.Expire(callback)
		return nil, fmt.Errorf("failed to inject script: %w", err)
	}
	defer element.Remove()

	var expired <-chan time.Time
	if s.timeout > 0 {
		timer := time.NewTimer(s.timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case d := <-done:
		if d.Err != nil {
			return nil, d.Err
		}
		slog.Debug("Script callback resolved", "callback", callback, "bytes", len(d.Payload))
		return d.Payload, nil
	case <-expired:
		s.registry.Expire(callback)
		slog.Debug("Script callback timed out", "callback", callback, "after", s.timeout)
		return nil, errors.NewTimeoutError(callback, s.timeout)
	case <-ctx.Done():
		s.registry.Expire(callback)
		return nil, ctx.Err()
	}
}
