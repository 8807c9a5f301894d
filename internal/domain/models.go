package domain

// Domain contains the records returned by the defamation backend.

// Model describes a classification model the backend can run.
type Model struct {
	ID          int64  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Enabled     bool   `json:"enabled" yaml:"enabled"`
}

// PredictResult is the backend's answer to a classification request.
type PredictResult struct {
	GeneratedText string `json:"generated_text" yaml:"generated_text"`
}

// Page is one page of a list endpoint.
type Page[T any] struct {
	Items         []T   `json:"items" yaml:"items"`
	Page          int   `json:"page" yaml:"page"`
	Size          int   `json:"size" yaml:"size"`
	TotalElements int64 `json:"totalElements" yaml:"total_elements"`
	TotalPages    int   `json:"totalPages" yaml:"total_pages"`
}

// Case is a court judgment record.
type Case struct {
	ID                      int64    `json:"id" yaml:"id"`
	RawID                   *int64   `json:"rawId,omitempty" yaml:"raw_id,omitempty"`
	ProblemSituation        string   `json:"problemSituation" yaml:"problem_situation"`
	Participants            []string `json:"participants" yaml:"participants"`
	CaseNames               []string `json:"caseNames" yaml:"case_names"`
	CaseType                string   `json:"caseType" yaml:"case_type"`
	CourtLevel              *int     `json:"courtLevel,omitempty" yaml:"court_level,omitempty"`
	Defendant               string   `json:"defendant" yaml:"defendant"`
	Label                   *int     `json:"label,omitempty" yaml:"label,omitempty"`
	SentenceType            string   `json:"sentenceType" yaml:"sentence_type"`
	SentenceValue           string   `json:"sentenceValue" yaml:"sentence_value"`
	SentenceSuspension      string   `json:"sentenceSuspension" yaml:"sentence_suspension"`
	SentenceAdditionalOrder string   `json:"sentenceAdditionalOrder" yaml:"sentence_additional_order"`
	SentenceReason          string   `json:"sentenceReason" yaml:"sentence_reason"`
	SentenceJudgment        string   `json:"sentenceJudgment" yaml:"sentence_judgment"`
}

// ClassificationRecord is a stored model classification of user input.
type ClassificationRecord struct {
	ID                      int64    `json:"id" yaml:"id"`
	ProblemSituation        string   `json:"problemSituation" yaml:"problem_situation"`
	ModelID                 *int64   `json:"modelId,omitempty" yaml:"model_id,omitempty"`
	CaseNames               []string `json:"caseNames" yaml:"case_names"`
	SentenceType            string   `json:"sentenceType" yaml:"sentence_type"`
	SentenceValue           *int64   `json:"sentenceValue,omitempty" yaml:"sentence_value,omitempty"`
	SentenceSuspension      *int     `json:"sentenceSuspension,omitempty" yaml:"sentence_suspension,omitempty"`
	SentenceAdditionalOrder string   `json:"sentenceAdditionalOrder" yaml:"sentence_additional_order"`
	SentenceReason          string   `json:"sentenceReason" yaml:"sentence_reason"`
	SentenceJudgment        string   `json:"sentenceJudgment" yaml:"sentence_judgment"`
	// CreatedAt is kept as sent; the backend emits a zone-less local timestamp.
	CreatedAt string `json:"createdAt" yaml:"created_at"`
}
