package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// QuestionCount is fixed: the interview is always three project questions.
const QuestionCount = 3

// InterviewPolicy holds the tunable thresholds of the interview flow.
type InterviewPolicy struct {
	AnswerTimeLimit     int    `yaml:"answer_time_limit"`
	MinResumeChars      int    `yaml:"min_resume_chars"`
	MinQuestionWords    int    `yaml:"min_question_words"`
	MinQuestionChars    int    `yaml:"min_question_chars"`
	NoAnswerPlaceholder string `yaml:"no_answer_placeholder"`
}

type policyFile struct {
	Interview InterviewPolicy `yaml:"interview"`
}

func DefaultInterviewPolicy() InterviewPolicy {
	return InterviewPolicy{
		AnswerTimeLimit:     160,
		MinResumeChars:      50,
		MinQuestionWords:    6,
		MinQuestionChars:    21,
		NoAnswerPlaceholder: "(No answer)",
	}
}

// LoadInterviewPolicy reads a YAML policy file. Fields missing from the file
// keep their default values.
func LoadInterviewPolicy(filename string) (*InterviewPolicy, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", filename, err)
	}

	file := policyFile{Interview: DefaultInterviewPolicy()}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse policy YAML: %w", err)
	}

	if err := file.Interview.Validate(); err != nil {
		return nil, fmt.Errorf("invalid interview policy: %w", err)
	}

	return &file.Interview, nil
}

func (p InterviewPolicy) Validate() error {
	if p.AnswerTimeLimit <= 0 {
		return fmt.Errorf("answer_time_limit must be greater than 0")
	}

	if p.MinResumeChars < 1 {
		return fmt.Errorf("min_resume_chars must be at least 1")
	}

	if p.MinQuestionWords < 1 {
		return fmt.Errorf("min_question_words must be at least 1")
	}

	if p.MinQuestionChars < 1 {
		return fmt.Errorf("min_question_chars must be at least 1")
	}

	if p.NoAnswerPlaceholder == "" {
		return fmt.Errorf("no_answer_placeholder must not be empty")
	}

	return nil
}
