package preview

import (
	"sync"
	"time"

	"github.com/b-hayes/notes/pkg/markdown"
)

// Result is a rendered version of the text.
type Result struct {
	// Generation increases with every Trigger or RenderNow call
	Generation uint64
	HTML       string
}

// Debouncer renders text after input has stopped for a fixed delay.
//
// Every call to Trigger or RenderNow starts a new generation. A result is
// delivered to the callback only if no newer generation was started in the
// meantime, so results never arrive out of order. The callback must not call
// the Debouncer.
type Debouncer struct {
	delay       time.Duration
	engine      markdown.Engine
	placeholder string
	callback    func(Result)

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	stopped    bool
}

// NewDebouncer creates a debouncer rendering with the given engine.
// The placeholder is delivered instead of an empty rendering.
func NewDebouncer(delay time.Duration, engine markdown.Engine, placeholder string, callback func(Result)) *Debouncer {
	if engine == nil {
		engine = markdown.Render
	}
	return &Debouncer{
		delay:       delay,
		engine:      engine,
		placeholder: placeholder,
		callback:    callback,
	}
}

// Trigger schedules a rendering of the text, replacing any pending one.
func (d *Debouncer) Trigger(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	generation := d.next()
	d.timer = time.AfterFunc(d.delay, func() {
		d.render(generation, text)
	})
}

// RenderNow renders the text immediately and supersedes any pending rendering.
// The result is also delivered to the callback.
func (d *Debouncer) RenderNow(text string) Result {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return Result{HTML: d.renderHTML(text)}
	}
	generation := d.next()
	d.mu.Unlock()

	return d.render(generation, text)
}

// Stop cancels the pending rendering. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.generation++
	if d.timer != nil {
		d.timer.Stop()
	}
}

// next starts a new generation. Must be called with the lock held.
func (d *Debouncer) next() uint64 {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.generation++
	return d.generation
}

func (d *Debouncer) render(generation uint64, text string) Result {
	result := Result{
		Generation: generation,
		HTML:       d.renderHTML(text),
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if generation != d.generation {
		// A newer generation was started while rendering
		return result
	}
	if d.callback != nil {
		d.callback(result)
	}
	return result
}

func (d *Debouncer) renderHTML(text string) string {
	html := d.engine(text)
	if html == "" {
		return d.placeholder
	}
	return html
}
