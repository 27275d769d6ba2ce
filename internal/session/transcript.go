package session

import "strings"

// TranscriptEvent is one speech-to-text segment. Interim segments may still
// change; final segments are fixed.
type TranscriptEvent struct {
	Text    string
	IsFinal bool
}

// Transcript accumulates recognizer output. Only final segments are
// committed; interim text is display state that the next batch replaces.
// The zero value is an empty transcript.
type Transcript struct {
	final   string
	interim string
}

// Apply folds one recognizer result batch into the transcript and returns
// the new value; t is not modified.
func (t Transcript) Apply(batch []TranscriptEvent) Transcript {
	var interim strings.Builder
	next := Transcript{final: t.final}

	for _, ev := range batch {
		if ev.IsFinal {
			next.final += ev.Text + " "
		} else {
			interim.WriteString(ev.Text)
		}
	}

	next.interim = interim.String()
	return next
}

// Settle drops pending interim text, as happens when capture ends.
func (t Transcript) Settle() Transcript {
	return Transcript{final: t.final}
}

// Committed is the answer text made of final segments only.
func (t Transcript) Committed() string {
	return strings.TrimSpace(t.final)
}

// Display is what the candidate sees while speaking.
func (t Transcript) Display() string {
	return strings.TrimSpace(t.final + t.interim)
}
