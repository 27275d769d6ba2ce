package services

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"alfredoptarigan/project-interview/internal/config"
	"alfredoptarigan/project-interview/internal/models"
)

type ParseStage string

const (
	StageStructured ParseStage = "structured"
	StageFallback   ParseStage = "fallback"
)

// ParsedQuestions is the success branch of question parsing; the failure
// branch is the returned error.
type ParsedQuestions struct {
	Questions models.QuestionSet
	Stage     ParseStage
}

type QuestionPolicy struct {
	MinWords int
	MinChars int
}

func QuestionPolicyFrom(p config.InterviewPolicy) QuestionPolicy {
	return QuestionPolicy{MinWords: p.MinQuestionWords, MinChars: p.MinQuestionChars}
}

// Accepts reports whether q is long enough to be a real question.
func (p QuestionPolicy) Accepts(q string) bool {
	q = strings.TrimSpace(q)
	return len(strings.Fields(q)) >= p.MinWords && utf8.RuneCountInString(q) >= p.MinChars
}

type ResponseValidator struct {
	policy QuestionPolicy
}

func NewResponseValidator(policy QuestionPolicy) *ResponseValidator {
	return &ResponseValidator{policy: policy}
}

type questionsPayload struct {
	Questions *[]string `json:"questions"`
	Projects  *[]struct {
		Name     string `json:"name"`
		Question string `json:"question"`
	} `json:"projects"`
}

// ParseQuestions turns raw model output into exactly three questions. The
// structured JSON grammar is tried first; a numbered or bulleted list is the
// fallback grammar.
func (v *ResponseValidator) ParseQuestions(raw string) (*ParsedQuestions, error) {
	text := stripCodeFences(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	candidates, structured, err := parseStructuredQuestions(text)
	if err != nil {
		return nil, err
	}

	stage := StageStructured
	if !structured {
		stage = StageFallback
		candidates = parseListQuestions(text)
		if len(candidates) > config.QuestionCount {
			candidates = candidates[:config.QuestionCount]
		}
	}

	var valid []string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if v.policy.Accepts(c) {
			valid = append(valid, c)
		}
	}

	if len(valid) < config.QuestionCount {
		return nil, fmt.Errorf("%w: %d of %d usable (%s parse)", ErrInsufficientQuestions, len(valid), config.QuestionCount, stage)
	}

	var set models.QuestionSet
	copy(set[:], valid[:config.QuestionCount])

	return &ParsedQuestions{Questions: set, Stage: stage}, nil
}

// parseStructuredQuestions reports structured == false when text is not a
// JSON object, letting the caller fall back to list parsing.
func parseStructuredQuestions(text string) ([]string, bool, error) {
	jsonStr := extractJSON(text)
	if !strings.HasPrefix(jsonStr, "{") {
		return nil, false, nil
	}

	var payload questionsPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, false, nil
	}

	var questions []string
	if payload.Questions != nil {
		questions = *payload.Questions
	}
	if len(questions) == 0 && payload.Projects != nil {
		for _, p := range *payload.Projects {
			questions = append(questions, p.Question)
		}
	}

	if payload.Questions == nil && payload.Projects == nil {
		return nil, true, fmt.Errorf("%w: JSON object has no questions field", ErrMalformedOutput)
	}

	if len(questions) == 0 {
		return nil, true, ErrNoProjects
	}

	return questions, true, nil
}

var (
	enumerationMarker = regexp.MustCompile(`^(?:\(?[Qq]?\d+\s*[.):\]-]|[-*•–—+]|#+)\s*`)
	emphasisMarker    = regexp.MustCompile(`^[*_]+|[*_]+$`)
)

// parseListQuestions is the fallback grammar: one candidate per non-empty
// line with enumeration markers removed. When any line is enumerated, only
// enumerated lines count, so preambles like "Here are your questions:" drop out.
func parseListQuestions(text string) []string {
	var plain, enumerated []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(emphasisMarker.ReplaceAllString(strings.TrimSpace(line), ""))
		if line == "" {
			continue
		}

		// One marker per line; text like "3-tier cache" after it is content.
		marked := false
		if loc := enumerationMarker.FindStringIndex(line); loc != nil {
			marked = true
			line = strings.TrimSpace(emphasisMarker.ReplaceAllString(line[loc[1]:], ""))
		}

		line = strings.Trim(line, "\",")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		plain = append(plain, line)
		if marked {
			enumerated = append(enumerated, line)
		}
	}

	if len(enumerated) > 0 {
		return enumerated
	}
	return plain
}

// stripCodeFences removes markdown code block wrappers the model adds even
// when told not to.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Language tag on the opening fence line.
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := strings.TrimSpace(text[:idx])
			if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
				text = text[idx+1:]
			}
		}
	}

	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")

	return strings.TrimSpace(text)
}

// extractJSON tries to extract a JSON object from text that might contain
// other formatting around it.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start != -1 && end != -1 && end > start {
		return text[start : end+1]
	}

	return text
}
