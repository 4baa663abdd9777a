package model

// Intent is the coarse category of user need inferred from one utterance.
// The set is closed: the classifier always answers with one of these labels,
// even for out-of-distribution input.
type Intent string

const (
	IntentCourseInfo   Intent = "Course Info"
	IntentFees         Intent = "Fees"
	IntentCareerAdvice Intent = "Career Advice"
	IntentLeadCapture  Intent = "Lead Capture"
	IntentGeneral      Intent = "General"
)

// String returns the wire representation of the intent label.
func (i Intent) String() string {
	return string(i)
}

// EntityRecord holds the structured facts pulled from one utterance.
// Absent fields stay nil and serialize as explicit nulls so tabular
// consumers (CSV export) always see stable columns.
type EntityRecord struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// HasAny reports whether at least one field was extracted.
func (r EntityRecord) HasAny() bool {
	return r.Name != nil || r.Email != nil || r.Phone != nil
}

// ChatResponse is the structured result of one handled message.
type ChatResponse struct {
	Intent   Intent       `json:"intent"`
	Entities EntityRecord `json:"entities"`
	Response string       `json:"response"`
	Status   string       `json:"status"`
}

const StatusSuccess = "success"
