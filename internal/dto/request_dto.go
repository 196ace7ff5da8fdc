package dto

type OptionDTO struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect,omitempty"`
}

// ComposeQuestionRequest is the composer form. Text fields carry editor markup.
type ComposeQuestionRequest struct {
	Text        string      `json:"text"`
	Type        string      `json:"type" example:"MCQ"`
	Options     []OptionDTO `json:"options"`
	Explanation string      `json:"explanation"`
	MinValue    float64     `json:"min_value"`
	MaxValue    float64     `json:"max_value"`
	DomainID    string      `json:"domain_id"`
	SubjectID   string      `json:"subject_id"`
}

type RenderRequest struct {
	Payload string `json:"payload"`
}

type FormulaPreviewRequest struct {
	Expression string `json:"expression" binding:"required"`
}

// EditorInsertRequest places Value (a formula expression or an image URL) at
// cursor Index of Payload.
type EditorInsertRequest struct {
	Payload string `json:"payload"`
	Index   *int   `json:"index" binding:"required"`
	Value   string `json:"value" binding:"required"`
}

// BankQuestionRequest is the body of POST /domains/{domain_id}/questions/add.
type BankQuestionRequest struct {
	ID          string      `json:"id"`
	Text        string      `json:"text" binding:"required"`
	Options     []OptionDTO `json:"options"`
	Explanation string      `json:"explanation"`
	Type        string      `json:"type" binding:"required,oneof=MCQ MSQ NAT"`
	MinValue    float64     `json:"min_value"`
	MaxValue    float64     `json:"max_value"`
	SubjectID   string      `json:"subject_id" binding:"required"`
}

type ExplanationDraftRequest struct {
	Text     string      `json:"text" binding:"required"`
	Type     string      `json:"type" binding:"required,oneof=MCQ MSQ NAT"`
	Options  []OptionDTO `json:"options"`
	MinValue float64     `json:"min_value"`
	MaxValue float64     `json:"max_value"`
}
