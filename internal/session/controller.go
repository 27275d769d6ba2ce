// Package session drives one interactive interview: question loading,
// timed voice answers and report generation.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"alfredoptarigan/project-interview/internal/config"
	"alfredoptarigan/project-interview/internal/models"
	"alfredoptarigan/project-interview/internal/services"
)

type State string

const (
	StateIdle             State = "idle"
	StateQuestionsLoading State = "questions-loading"
	StateInProgress       State = "in-progress"
	StateCompleted        State = "completed"
	StateReportLoading    State = "report-loading"
	StateReportReady      State = "report-ready"
)

var (
	ErrRequestInFlight   = errors.New("a request is already in flight")
	ErrInvalidTransition = errors.New("action not allowed in the current state")
	ErrTimeUp            = errors.New("answer time is up")
	ErrNoRecognizer      = errors.New("no speech recognizer configured")
	ErrClosed            = errors.New("session closed")
)

type Options struct {
	// TimeLimit is the countdown ceiling per question, in ticks.
	TimeLimit int
	// TickInterval is the real duration of one tick. Zero disables the
	// background ticker; the countdown then moves only through Tick.
	TickInterval        time.Duration
	NoAnswerPlaceholder string
}

func OptionsFromPolicy(p config.InterviewPolicy) Options {
	return Options{
		TimeLimit:           p.AnswerTimeLimit,
		TickInterval:        time.Second,
		NoAnswerPlaceholder: p.NoAnswerPlaceholder,
	}
}

// Snapshot is a consistent copy of the controller state.
type Snapshot struct {
	ID         uuid.UUID
	State      State
	Index      int
	Total      int
	Question   string
	Remaining  int
	Transcript string
	Capturing  bool
	Answers    []string
	Report     *models.InterviewReport
	Err        error
}

// Controller is the interview state machine. It is safe for concurrent use:
// the countdown and the recognizer call back from their own goroutines.
type Controller struct {
	mu sync.Mutex

	id        uuid.UUID
	opts      Options
	questions services.QuestionPipeline
	reports   services.ReportSynthesizer
	res       *Resources
	onChange  func(Snapshot)

	state      State
	closed     bool
	set        models.QuestionSet
	index      int
	answers    []string
	transcript Transcript
	remaining  int
	report     *models.InterviewReport
	err        error
}

func NewController(
	questions services.QuestionPipeline,
	reports services.ReportSynthesizer,
	recognizer Recognizer,
	opts Options,
) *Controller {
	return &Controller{
		id:        uuid.New(),
		opts:      opts,
		questions: questions,
		reports:   reports,
		res:       NewResources(recognizer),
		state:     StateIdle,
	}
}

// OnChange registers fn to receive a snapshot after every state change.
// fn runs without the controller lock held.
func (c *Controller) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// LoadQuestions runs the question pipeline for resumeText. On failure the
// controller returns to idle with the error recorded.
func (c *Controller) LoadQuestions(ctx context.Context, resumeText string) error {
	defer c.notify()

	c.mu.Lock()
	switch {
	case c.closed:
		c.mu.Unlock()
		return ErrClosed
	case c.state == StateQuestionsLoading:
		c.mu.Unlock()
		return ErrRequestInFlight
	case c.state != StateIdle:
		c.mu.Unlock()
		return ErrInvalidTransition
	}
	c.state = StateQuestionsLoading
	c.err = nil
	c.mu.Unlock()

	c.notify()

	set, err := c.questions.GenerateQuestions(ctx, resumeText)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if err != nil {
		c.state = StateIdle
		c.err = err
		return err
	}

	c.set = set
	c.answers = make([]string, 0, len(set))
	c.enterQuestion(0)
	return nil
}

// StartAnswer begins voice capture for the current question. Starting while
// a capture is active is a no-op.
func (c *Controller) StartAnswer() error {
	defer c.notify()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.state != StateInProgress {
		return ErrInvalidTransition
	}
	if c.remaining == 0 {
		return ErrTimeUp
	}
	if c.res.Capturing() {
		return nil
	}

	c.transcript = Transcript{}
	_, err := c.res.AcquireCapture(c.captureResult, c.captureEnd)
	return err
}

// StopAnswer ends voice capture and keeps the committed transcript. It is
// idempotent.
func (c *Controller) StopAnswer() {
	defer c.notify()
	c.mu.Lock()
	defer c.mu.Unlock()

	c.res.ReleaseCapture()
	c.transcript = c.transcript.Settle()
}

// Submit records the committed transcript, or the placeholder when it is
// empty, and moves to the next question or to completed.
func (c *Controller) Submit() error {
	defer c.notify()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.state != StateInProgress {
		return ErrInvalidTransition
	}

	c.res.ReleaseAll()

	answer := c.transcript.Committed()
	if answer == "" {
		answer = c.opts.NoAnswerPlaceholder
	}
	c.answers = append(c.answers, answer)
	c.transcript = Transcript{}

	if c.index+1 < len(c.set) {
		c.enterQuestion(c.index + 1)
	} else {
		c.state = StateCompleted
	}
	return nil
}

// GenerateReport synthesizes the report of a completed interview. On
// failure the controller stays completed and the call may be retried.
func (c *Controller) GenerateReport(ctx context.Context) (*models.InterviewReport, error) {
	defer c.notify()

	c.mu.Lock()
	switch {
	case c.closed:
		c.mu.Unlock()
		return nil, ErrClosed
	case c.state == StateReportLoading:
		c.mu.Unlock()
		return nil, ErrRequestInFlight
	case c.state == StateReportReady:
		report := c.report
		c.mu.Unlock()
		return report, nil
	case c.state != StateCompleted:
		c.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	c.state = StateReportLoading
	c.err = nil
	questions := c.set.Slice()
	answers := append([]string(nil), c.answers...)
	c.mu.Unlock()

	c.notify()

	report, err := c.reports.GenerateReport(ctx, questions, answers)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}
	if err != nil {
		c.state = StateCompleted
		c.err = err
		return nil, err
	}

	c.report = report
	c.state = StateReportReady
	return report, nil
}

// Tick advances the countdown by one tick. It is what the background
// ticker calls; with a zero TickInterval callers drive it directly.
func (c *Controller) Tick() {
	defer c.notify()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	if gen, ok := c.res.Counting(); ok {
		c.tickLocked(gen)
	}
}

// Reset returns the controller to idle, discarding the interview.
func (c *Controller) Reset() error {
	defer c.notify()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.state == StateQuestionsLoading || c.state == StateReportLoading {
		return ErrRequestInFlight
	}

	c.res.ReleaseAll()
	c.state = StateIdle
	c.set = models.QuestionSet{}
	c.index = 0
	c.answers = nil
	c.transcript = Transcript{}
	c.remaining = 0
	c.report = nil
	c.err = nil
	return nil
}

// Close tears down capture and countdown. In-flight requests finish but
// their results are discarded, and every later action returns ErrClosed.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.res.ReleaseAll()
	c.closed = true
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		ID:         c.id,
		State:      c.state,
		Index:      c.index,
		Remaining:  c.remaining,
		Transcript: c.transcript.Display(),
		Capturing:  c.res.Capturing(),
		Answers:    append([]string(nil), c.answers...),
		Report:     c.report,
		Err:        c.err,
	}
	if c.state != StateIdle && c.state != StateQuestionsLoading {
		s.Total = len(c.set)
		s.Question = c.set[c.index]
	}
	return s
}

// enterQuestion resets everything owned by the previous question so no
// answer text or timer carries over.
func (c *Controller) enterQuestion(i int) {
	c.res.ReleaseAll()
	c.transcript = Transcript{}
	c.index = i
	c.remaining = c.opts.TimeLimit
	c.state = StateInProgress
	c.res.StartCountdown(c.opts.TickInterval, c.countdownTick)
}

func (c *Controller) countdownTick(gen uint64) {
	defer c.notify()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.res.CountdownCurrent(gen) {
		c.tickLocked(gen)
	}
}

// tickLocked stops capture when time runs out. It never advances the
// question; only Submit does.
func (c *Controller) tickLocked(gen uint64) {
	if c.closed || c.state != StateInProgress || !c.res.CountdownCurrent(gen) {
		return
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining == 0 {
		c.res.ReleaseAll()
		c.transcript = c.transcript.Settle()
	}
}

func (c *Controller) captureResult(gen uint64, batch []TranscriptEvent) {
	defer c.notify()
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.res.CaptureCurrent(gen) {
		return
	}
	c.transcript = c.transcript.Apply(batch)
}

func (c *Controller) captureEnd(gen uint64) {
	defer c.notify()
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.res.CaptureCurrent(gen) {
		return
	}
	c.res.captureEnded()
	c.transcript = c.transcript.Settle()
}

func (c *Controller) notify() {
	c.mu.Lock()
	fn := c.onChange
	var s Snapshot
	if fn != nil {
		s = c.snapshotLocked()
	}
	c.mu.Unlock()

	if fn != nil {
		fn(s)
	}
}
