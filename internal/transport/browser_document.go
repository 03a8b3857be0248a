package transport

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/lepinkainen/narou/internal/errors"
)

// bindingName is the page function that carries callback invocations back
// to Go.
const bindingName = "__narouDeliver"

var (
	chromedpExecAllocator = chromedp.NewExecAllocator
	chromedpContext       = chromedp.NewContext
	chromedpRunner        = chromedp.Run
	chromedpListen        = chromedp.ListenTarget
)

// BrowserOptions configures the headless browser.
type BrowserOptions struct {
	Headless bool
}

// BrowserDocument injects script elements into a real (headless) Chrome page.
// The page-side callback forwards its argument through a CDP runtime binding.
type BrowserDocument struct {
	ctx    context.Context
	cancel func()

	mu      sync.Mutex
	pending map[string]*Registry
}

type bindingMessage struct {
	Callback string          `json:"callback"`
	Payload  json.RawMessage `json:"payload"`
	Error    string          `json:"error"`
}

// NewBrowserDocument starts a browser and opens a blank page to inject into.
// Close releases it.
func NewBrowserDocument(parent context.Context, opts BrowserOptions) (*BrowserDocument, error) {
	allocCtx, cancelAllocator := chromedpExecAllocator(parent, buildExecAllocatorOptions(opts)...)
	browserCtx, cancelBrowser := chromedpContext(allocCtx)

	d := &BrowserDocument{
		ctx: browserCtx,
		cancel: func() {
			cancelBrowser()
			cancelAllocator()
		},
		pending: make(map[string]*Registry),
	}

	chromedpListen(browserCtx, func(ev interface{}) {
		if called, ok := ev.(*runtime.EventBindingCalled); ok && called.Name == bindingName {
			go d.deliver(called.Payload)
		}
	})

	if err := chromedpRunner(browserCtx,
		runtime.AddBinding(bindingName),
		chromedp.Navigate("about:blank"),
	); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to start browser document: %w", err)
	}

	slog.Debug("Browser document ready", "headless", opts.Headless)
	return d, nil
}

func buildExecAllocatorOptions(opts BrowserOptions) []chromedp.ExecAllocatorOption {
	return []chromedp.ExecAllocatorOption{
		chromedp.NoDefaultBrowserCheck,
		chromedp.NoFirstRun,
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("mute-audio", true),
		chromedp.Flag("disable-default-apps", true),
	}
}

// Close shuts the browser down.
func (d *BrowserDocument) Close() {
	d.cancel()
}

// Append defines the page callback and adds a <script> element for tag.
func (d *BrowserDocument) Append(ctx context.Context, tag Tag, registry *Registry) (Element, error) {
	d.mu.Lock()
	d.pending[tag.Callback] = registry
	d.mu.Unlock()

	script, err := appendScriptJS(tag)
	if err != nil {
		d.forget(tag.Callback)
		return nil, err
	}

	if err := chromedpRunner(d.ctx, chromedp.Evaluate(script, nil)); err != nil {
		d.forget(tag.Callback)
		return nil, fmt.Errorf("failed to append script element: %w", err)
	}

	return elementFunc(func() { d.remove(tag.Callback) }), nil
}

// remove takes the element out of the page and leaves a no-op in place of the
// callback so a late response does not raise in the page.
func (d *BrowserDocument) remove(callback string) {
	d.forget(callback)

	name, _ := json.Marshal(callback)
	script := fmt.Sprintf(`(function(cb){
  var el = document.getElementById(cb);
  if (el) { el.remove(); }
  window[cb] = function(){};
})(%s)`, name)

	if err := chromedpRunner(d.ctx, chromedp.Evaluate(script, nil)); err != nil {
		slog.Debug("Failed to remove script element", "callback", callback, "error", err)
	}
}

func (d *BrowserDocument) forget(callback string) *Registry {
	d.mu.Lock()
	defer d.mu.Unlock()
	registry := d.pending[callback]
	delete(d.pending, callback)
	return registry
}

func (d *BrowserDocument) deliver(raw string) {
	var msg bindingMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		slog.Debug("Ignoring malformed binding payload", "error", err)
		return
	}

	registry := d.forget(msg.Callback)
	if registry == nil {
		return
	}
	if msg.Error != "" {
		registry.Fail(msg.Callback, stdErrors.New(msg.Error))
		return
	}
	// JSON.stringify drops an undefined payload
	if len(msg.Payload) == 0 {
		registry.Fail(msg.Callback, errors.NewDecodeError(errors.StageJSONP, "",
			fmt.Errorf("callback %s was invoked without a payload", msg.Callback)))
		return
	}
	registry.Call(msg.Callback, msg.Payload)
}

func appendScriptJS(tag Tag) (string, error) {
	cb, err := json.Marshal(tag.Callback)
	if err != nil {
		return "", fmt.Errorf("failed to encode callback: %w", err)
	}
	src, err := json.Marshal(tag.Src)
	if err != nil {
		return "", fmt.Errorf("failed to encode script src: %w", err)
	}

	return fmt.Sprintf(`(function(cb, src){
  var deliver = window[%[3]q];
  window[cb] = function(data){
    deliver(JSON.stringify({callback: cb, payload: data}));
  };
  var el = document.createElement("script");
  el.id = cb;
  el.src = src;
  el.onerror = function(){
    deliver(JSON.stringify({callback: cb, error: "failed to load " + src}));
  };
  document.head.appendChild(el);
})(%[1]s, %[2]s)`, cb, src, bindingName), nil
}
