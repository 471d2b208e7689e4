package carousel

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Rotator advances a slide ring on a fixed interval. Position moves either
// from the ticker goroutine or from explicit Next/Prev/GoTo calls; all
// movement is serialized behind one mutex. Stop tears the ticker down so no
// periodic callback leaks past the rotator's lifetime.
type Rotator struct {
	mu      sync.Mutex
	slides  []Slide
	current int

	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
	running  bool
}

// NewRotator builds a rotator over the given slides.
func NewRotator(slides []Slide, interval time.Duration) *Rotator {
	return &Rotator{
		slides:   slides,
		interval: interval,
	}
}

// Start launches the auto-advance ticker. Starting an empty or already
// running rotator is a no-op.
func (r *Rotator) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running || len(r.slides) == 0 || r.interval <= 0 {
		return
	}
	r.running = true
	r.stop = make(chan struct{})
	r.done = make(chan struct{})

	go func(stop, done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-stop:
				return
			case <-ticker.C:
				r.Next()
			}
		}
	}(r.stop, r.done)
}

// Stop cancels the recurring advance and waits for the ticker goroutine to
// exit. Safe to call more than once.
func (r *Rotator) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stop)
	done := r.done
	r.mu.Unlock()

	<-done
}

// Next advances one position, wrapping at the end, and returns the new index.
func (r *Rotator) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.slides) == 0 {
		return 0
	}
	r.current = (r.current + 1) % len(r.slides)
	return r.current
}

// Prev moves one position back, wrapping at the start, and returns the new
// index.
func (r *Rotator) Prev() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.slides) == 0 {
		return 0
	}
	r.current = (r.current - 1 + len(r.slides)) % len(r.slides)
	return r.current
}

// GoTo jumps to the given index.
func (r *Rotator) GoTo(index int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index < 0 || index >= len(r.slides) {
		return fmt.Errorf("slide index %d out of range", index)
	}
	r.current = index
	return nil
}

// Current returns the active slide and its index.
func (r *Rotator) Current() (Slide, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.slides) == 0 {
		return Slide{}, 0
	}
	return r.slides[r.current], r.current
}

// Slides returns a copy of the slide ring.
func (r *Rotator) Slides() []Slide {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Slide, len(r.slides))
	copy(out, r.slides)
	return out
}
