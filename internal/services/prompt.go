package services

import (
	"fmt"
	"strings"
)

type PromptMode string

const (
	ModeProjectQuestions PromptMode = "project-questions"
	ModeAskQuestion      PromptMode = "ask-question"
	ModeFollowUp         PromptMode = "follow-up"
	ModeReport           PromptMode = "report"
)

// GenerationSettings are the sampling parameters a prompt mode is sent with.
type GenerationSettings struct {
	Temperature float32
	MaxTokens   int
}

var modeSettings = map[PromptMode]GenerationSettings{
	ModeProjectQuestions: {Temperature: 0.2, MaxTokens: 700},
	ModeAskQuestion:      {Temperature: 0.2, MaxTokens: 300},
	ModeFollowUp:         {Temperature: 0.4, MaxTokens: 200},
	ModeReport:           {Temperature: 0.2, MaxTokens: 600},
}

func SettingsFor(mode PromptMode) GenerationSettings {
	return modeSettings[mode]
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildProjectQuestionsPrompt asks for exactly three questions about the
// projects the résumé actually mentions.
func (pb *PromptBuilder) BuildProjectQuestionsPrompt(resumeText string) string {
	return fmt.Sprintf(`You are a technical interviewer.

TASK (VERY IMPORTANT):
1. Extract ONLY the PROJECTS from the resume below.
2. Identify real projects mentioned by the candidate.
3. Generate EXACTLY 3 deep, implementation-level interview questions about those projects.

STRICT RULES:
- Questions must be strictly based on the resume projects.
- Do NOT ask generic questions.
- Do NOT invent projects.
- If there is only 1 project, generate all 3 questions from it.
- Every question must be a complete sentence of at least 6 words.
- Return ONLY valid JSON. No explanations. No markdown. No code fences.

OUTPUT FORMAT:
{
  "questions": [
    "First project-based question",
    "Second project-based question",
    "Third project-based question"
  ]
}

RESUME:
%s`, resumeText)
}

func (pb *PromptBuilder) BuildAskSystemPrompt() string {
	return "You are a professional interviewer assistant. Answer only from the provided resume context."
}

func (pb *PromptBuilder) BuildAskPrompt(context, question string) string {
	return fmt.Sprintf("Resume:\n%s\n\nQuestion:\n%s", context, question)
}

func (pb *PromptBuilder) BuildFollowUpPrompt(resumeText, question, answer string) string {
	return fmt.Sprintf(`Resume:
%s

Previous Question:
%s

Candidate Answer:
%s

Ask ONE deeper follow-up question about the same project.
Return ONLY the question. No preamble, no quotes, no markdown.`, resumeText, question, answer)
}

// BuildReportPrompt enumerates the question/answer pairs by position. The
// caller guarantees len(questions) == len(answers).
func (pb *PromptBuilder) BuildReportPrompt(questions, answers []string) string {
	pairs := make([]string, 0, len(questions))
	for i, q := range questions {
		pairs = append(pairs, fmt.Sprintf("Q%d: %s\nA%d: %s", i+1, q, i+1, answers[i]))
	}

	return fmt.Sprintf(`You are a senior technical interviewer.

Below is a completed project-based interview.

INTERVIEW DATA:
%s

TASK:
Generate a FINAL INTERVIEW REPORT with the following sections:

1. Overall Summary (2-3 lines)
2. Strengths (bullet points)
3. Gaps (bullet points)
4. Areas of Improvement (actionable bullet points)
5. Final Verdict (exactly one verdict)

VERDICT RULES (VERY IMPORTANT):
Final Verdict MUST be exactly one of:
- Below Average
- Average
- Good

Do NOT use any other wording. Do NOT use markdown.

OUTPUT FORMAT:

Overall Summary:
...

Strengths:
- ...

Gaps:
- ...

Areas of Improvement:
- ...

Final Verdict:
<Below Average | Average | Good>`, strings.Join(pairs, "\n\n"))
}
