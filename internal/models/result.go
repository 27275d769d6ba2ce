package models

type UploadResumeResponse struct {
	ResumeText string `json:"resumeText"`
}

type ProjectQuestionsRequest struct {
	ResumeText string `json:"resumeText"`
}

type ProjectQuestionsResponse struct {
	Questions []string `json:"questions"`
}

type AskQuestionRequest struct {
	Question string `json:"question" validate:"required"`
	Context  string `json:"context" validate:"required"`
}

type AskQuestionResponse struct {
	Answer string `json:"answer"`
}

type FollowUpRequest struct {
	ResumeText string `json:"resumeText" validate:"required"`
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
}

type FollowUpResponse struct {
	NextQuestion string `json:"nextQuestion"`
}

type GenerateReportRequest struct {
	Questions []string `json:"questions" validate:"required,min=1,dive,required"`
	Answers   []string `json:"answers" validate:"required,eqfield=Questions"`
}

type GenerateReportResponse struct {
	Report  string `json:"report"`
	Verdict string `json:"verdict"`
}
