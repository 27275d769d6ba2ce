package session

import (
	"context"
	"sync"

	"alfredoptarigan/project-interview/internal/models"
)

// fakeRecognizer keeps the callbacks of its latest Start even after Stop,
// so tests can deliver results late on purpose.
type fakeRecognizer struct {
	mu       sync.Mutex
	starts   int
	stops    int
	startErr error
	onResult func([]TranscriptEvent)
	onEnd    func()
}

func (r *fakeRecognizer) Start(onResult func([]TranscriptEvent), onEnd func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.startErr != nil {
		return r.startErr
	}
	r.starts++
	r.onResult = onResult
	r.onEnd = onEnd
	return nil
}

func (r *fakeRecognizer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stops++
}

func (r *fakeRecognizer) emit(events ...TranscriptEvent) {
	r.mu.Lock()
	fn := r.onResult
	r.mu.Unlock()
	fn(events)
}

func (r *fakeRecognizer) end() {
	r.mu.Lock()
	fn := r.onEnd
	r.mu.Unlock()
	fn()
}

func (r *fakeRecognizer) counts() (starts, stops int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.starts, r.stops
}

type fakePipeline struct {
	set  models.QuestionSet
	err  error
	gate chan struct{}
}

func (p *fakePipeline) GenerateQuestions(ctx context.Context, resumeText string) (models.QuestionSet, error) {
	if p.gate != nil {
		<-p.gate
	}
	return p.set, p.err
}

type fakeSynthesizer struct {
	mu        sync.Mutex
	err       error
	questions []string
	answers   []string
	calls     int
}

func (s *fakeSynthesizer) GenerateReport(ctx context.Context, questions, answers []string) (*models.InterviewReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.questions = questions
	s.answers = answers
	if s.err != nil {
		return nil, s.err
	}
	return &models.InterviewReport{Text: "Summary.\n\nFinal Verdict:\nGood", Verdict: models.VerdictGood}, nil
}

var testQuestions = models.QuestionSet{
	"What problem did the Atlas scheduler project solve for users?",
	"How did you handle authentication in the Beacon dashboard?",
	"Which part of Atlas would you redesign today and why?",
}
