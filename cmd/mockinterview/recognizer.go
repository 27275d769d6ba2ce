package main

import (
	"sync"

	"alfredoptarigan/project-interview/internal/session"
)

// lineRecognizer stands in for speech recognition in a terminal: every
// typed line is one final transcript segment.
type lineRecognizer struct {
	mu       sync.Mutex
	onResult func([]session.TranscriptEvent)
	onEnd    func()
}

func (r *lineRecognizer) Start(onResult func([]session.TranscriptEvent), onEnd func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onResult = onResult
	r.onEnd = onEnd
	return nil
}

func (r *lineRecognizer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onResult = nil
	r.onEnd = nil
}

// Feed delivers line to the active capture. It reports false when nothing
// is listening, e.g. after the countdown ran out.
func (r *lineRecognizer) Feed(line string) bool {
	r.mu.Lock()
	fn := r.onResult
	r.mu.Unlock()

	if fn == nil {
		return false
	}
	fn([]session.TranscriptEvent{{Text: line, IsFinal: true}})
	return true
}

// End simulates the recognizer finishing on its own, as on end of input.
func (r *lineRecognizer) End() {
	r.mu.Lock()
	fn := r.onEnd
	r.onResult = nil
	r.onEnd = nil
	r.mu.Unlock()

	if fn != nil {
		fn()
	}
}
