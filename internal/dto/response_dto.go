package dto

import "time"

type QuestionResponse struct {
	ID          string      `json:"id"`
	Text        string      `json:"text"`
	Options     []OptionDTO `json:"options"`
	Explanation string      `json:"explanation"`
	Type        string      `json:"type"`
	MinValue    float64     `json:"min_value"`
	MaxValue    float64     `json:"max_value"`
	SubjectID   string      `json:"subject_id"`
}

// DraftResponse is a blank composer form.
type DraftResponse struct {
	Text        string      `json:"text"`
	Type        string      `json:"type"`
	Options     []OptionDTO `json:"options"`
	Explanation string      `json:"explanation"`
	MinValue    float64     `json:"min_value"`
	MaxValue    float64     `json:"max_value"`
	DomainID    string      `json:"domain_id"`
	SubjectID   string      `json:"subject_id"`
}

type ComposeQuestionResponse struct {
	Index     int              `json:"index"`
	Question  QuestionResponse `json:"question"`
	NextDraft DraftResponse    `json:"next_draft"`
	Synced    bool             `json:"synced"` // true when a bank create was dispatched
}

type RenderedOption struct {
	HTML      string `json:"html"`
	IsCorrect bool   `json:"isCorrect,omitempty"`
}

type RenderedQuestionResponse struct {
	Index       int              `json:"index"`
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Text        string           `json:"text"`
	Options     []RenderedOption `json:"options"`
	Explanation string           `json:"explanation"`
	MinValue    float64          `json:"min_value"`
	MaxValue    float64          `json:"max_value"`
	SubjectID   string           `json:"subject_id"`
}

type RenderResponse struct {
	HTML string `json:"html"`
}

type FormulaPreviewResponse struct {
	HTML  string `json:"html"`
	Error string `json:"error,omitempty"`
}

type EditorResponse struct {
	Payload string `json:"payload"`
}

type DomainResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SubjectResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	DomainID string `json:"domain_id"`
}

type QuestionRecordResponse struct {
	ID          string      `json:"id"`
	ClientID    string      `json:"client_id"`
	DomainID    string      `json:"domain_id"`
	SubjectID   string      `json:"subject_id"`
	Type        string      `json:"type"`
	Text        string      `json:"text"`
	Options     []OptionDTO `json:"options"`
	Explanation string      `json:"explanation"`
	MinValue    float64     `json:"min_value"`
	MaxValue    float64     `json:"max_value"`
	CreatedAt   time.Time   `json:"created_at"`
}

type ExplanationDraftResponse struct {
	Explanation string `json:"explanation"` // editor markup
	PlainText   string `json:"plain_text"`
}

// DataResponse is the {"data": ...} envelope of the question bank API.
type DataResponse struct {
	Data interface{} `json:"data"`
}

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
