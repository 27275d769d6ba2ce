package session

import "time"

// Recognizer is the speech-to-text capability. Implementations must deliver
// callbacks asynchronously, never from inside Start or Stop.
type Recognizer interface {
	Start(onResult func([]TranscriptEvent), onEnd func()) error
	Stop()
}

// Resources owns the single capture session and the single countdown timer
// of a controller. It is not synchronized; the controller calls it under its
// own lock. Every acquire bumps a generation so callbacks from a released
// capture or a cancelled countdown can be recognized and dropped.
type Resources struct {
	recognizer Recognizer

	capturing  bool
	captureGen uint64

	counting      bool
	countdownStop chan struct{}
	countdownGen  uint64
}

func NewResources(recognizer Recognizer) *Resources {
	return &Resources{recognizer: recognizer}
}

func (r *Resources) Capturing() bool {
	return r.capturing
}

// AcquireCapture starts the recognizer unless a capture is already active.
// The callbacks receive the generation they were started under.
func (r *Resources) AcquireCapture(onResult func(gen uint64, batch []TranscriptEvent), onEnd func(gen uint64)) (bool, error) {
	if r.capturing {
		return false, nil
	}
	if r.recognizer == nil {
		return false, ErrNoRecognizer
	}

	r.captureGen++
	gen := r.captureGen

	err := r.recognizer.Start(
		func(batch []TranscriptEvent) { onResult(gen, batch) },
		func() { onEnd(gen) },
	)
	if err != nil {
		r.captureGen++
		return false, err
	}

	r.capturing = true
	return true, nil
}

// ReleaseCapture stops the recognizer and detaches its callbacks. Calling it
// with no active capture is a no-op.
func (r *Resources) ReleaseCapture() {
	if !r.capturing {
		return
	}
	r.captureGen++
	r.capturing = false
	r.recognizer.Stop()
}

// CaptureCurrent reports whether gen belongs to the active capture.
func (r *Resources) CaptureCurrent(gen uint64) bool {
	return r.capturing && gen == r.captureGen
}

// captureEnded marks the active capture as finished by the recognizer itself.
func (r *Resources) captureEnded() {
	r.capturing = false
	r.captureGen++
}

// StartCountdown replaces any running countdown. With a zero interval no
// goroutine is started and the countdown advances only through manual ticks.
func (r *Resources) StartCountdown(interval time.Duration, tick func(gen uint64)) uint64 {
	r.CancelCountdown()

	r.countdownGen++
	r.counting = true
	gen := r.countdownGen
	if interval <= 0 {
		return gen
	}

	stop := make(chan struct{})
	r.countdownStop = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				tick(gen)
			}
		}
	}()

	return gen
}

// CancelCountdown stops the running countdown; redundant calls are no-ops.
func (r *Resources) CancelCountdown() {
	r.countdownGen++
	r.counting = false
	if r.countdownStop != nil {
		close(r.countdownStop)
		r.countdownStop = nil
	}
}

// CountdownCurrent reports whether gen belongs to the running countdown.
func (r *Resources) CountdownCurrent(gen uint64) bool {
	return r.counting && gen == r.countdownGen
}

// Counting reports whether a countdown is running, and its generation.
func (r *Resources) Counting() (uint64, bool) {
	return r.countdownGen, r.counting
}

// ReleaseAll tears down capture and countdown together.
func (r *Resources) ReleaseAll() {
	r.ReleaseCapture()
	r.CancelCountdown()
}
