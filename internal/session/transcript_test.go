package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript_Apply(t *testing.T) {
	var tr Transcript

	tr = tr.Apply([]TranscriptEvent{{Text: "I built", IsFinal: false}})
	assert.Equal(t, "I built", tr.Display())
	assert.Equal(t, "", tr.Committed())

	tr = tr.Apply([]TranscriptEvent{{Text: "I built Atlas", IsFinal: true}, {Text: "using", IsFinal: false}})
	assert.Equal(t, "I built Atlas using", tr.Display())
	assert.Equal(t, "I built Atlas", tr.Committed())

	tr = tr.Apply([]TranscriptEvent{{Text: "using Go", IsFinal: true}})
	assert.Equal(t, "I built Atlas using Go", tr.Display())
	assert.Equal(t, "I built Atlas using Go", tr.Committed())
}

func TestTranscript_ApplyDoesNotMutate(t *testing.T) {
	before := Transcript{}.Apply([]TranscriptEvent{{Text: "one", IsFinal: true}})
	after := before.Apply([]TranscriptEvent{{Text: "two", IsFinal: true}})

	assert.Equal(t, "one", before.Committed())
	assert.Equal(t, "one two", after.Committed())
}

func TestTranscript_InterimReplacedPerBatch(t *testing.T) {
	tr := Transcript{}.
		Apply([]TranscriptEvent{{Text: "hel"}}).
		Apply([]TranscriptEvent{{Text: "hello wor"}})
	assert.Equal(t, "hello wor", tr.Display())

	tr = tr.Settle()
	assert.Equal(t, "", tr.Display())
}
