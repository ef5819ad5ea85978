package model

// MinTriviaOptions is the minimum number of answer options a question must carry
const MinTriviaOptions = 2

// Validation messages returned for the first violated rule
const (
	MsgInvalidTitle   = "Invalid or missing 'title'"
	MsgInvalidOptions = "Invalid or missing 'options'. It should be an array of strings with at least 2 options."
	MsgInvalidCorrect = "Invalid or missing 'correct'. It should be a string and one of the 'options'."
)

// TriviaQuestion is a stored multiple-choice question.
// ID is assigned by the store on creation and never changes.
type TriviaQuestion struct {
	ID      string   `json:"id,omitempty"`
	Title   string   `json:"title"`
	Options []string `json:"options"`
	Correct string   `json:"correct"`
}

// WithoutID returns a copy of the question with the identifier suppressed
func (q *TriviaQuestion) WithoutID() *TriviaQuestion {
	out := *q
	out.ID = ""
	return &out
}

// TriviaPayload is a decoded JSON request body for create and update.
// It is kept untyped so that type errors surface in validation order rather
// than as decoding failures.
type TriviaPayload map[string]interface{}

// Validate checks title, then options, then correct, and returns the first
// violated rule. Later rules are not evaluated once one fails.
func (p TriviaPayload) Validate() *FieldError {
	title, ok := p["title"].(string)
	if !ok || title == "" {
		return &FieldError{Field: "title", Message: MsgInvalidTitle}
	}

	options, ok := stringSlice(p["options"])
	if !ok || len(options) < MinTriviaOptions {
		return &FieldError{Field: "options", Message: MsgInvalidOptions}
	}

	correct, ok := p["correct"].(string)
	if !ok || correct == "" || !contains(options, correct) {
		return &FieldError{Field: "correct", Message: MsgInvalidCorrect}
	}

	return nil
}

// Question converts a validated payload into a TriviaQuestion.
// Call Validate first; invalid fields are left at their zero value.
func (p TriviaPayload) Question() *TriviaQuestion {
	q := &TriviaQuestion{}
	q.Title, _ = p["title"].(string)
	q.Options, _ = stringSlice(p["options"])
	q.Correct, _ = p["correct"].(string)
	return q
}

// UpdateTriviaRequest holds the fields present in a partial update.
// Nil fields are left untouched on the stored document.
type UpdateTriviaRequest struct {
	Title   *string
	Options []string
	Correct *string
}

// ParseUpdate extracts the updatable fields from a payload. Fields with the
// wrong JSON type are reported in validation order. Unknown fields are ignored.
func (p TriviaPayload) ParseUpdate() (*UpdateTriviaRequest, *FieldError) {
	req := &UpdateTriviaRequest{}

	if raw, present := p["title"]; present {
		title, ok := raw.(string)
		if !ok {
			return nil, &FieldError{Field: "title", Message: MsgInvalidTitle}
		}
		req.Title = &title
	}
	if raw, present := p["options"]; present {
		options, ok := stringSlice(raw)
		if !ok {
			return nil, &FieldError{Field: "options", Message: MsgInvalidOptions}
		}
		req.Options = options
	}
	if raw, present := p["correct"]; present {
		correct, ok := raw.(string)
		if !ok {
			return nil, &FieldError{Field: "correct", Message: MsgInvalidCorrect}
		}
		req.Correct = &correct
	}

	return req, nil
}

// IsEmpty reports whether the update carries no fields
func (r *UpdateTriviaRequest) IsEmpty() bool {
	return r.Title == nil && r.Options == nil && r.Correct == nil
}

// Apply returns the result of merging the update onto q
func (r *UpdateTriviaRequest) Apply(q *TriviaQuestion) *TriviaQuestion {
	out := *q
	if r.Title != nil {
		out.Title = *r.Title
	}
	if r.Options != nil {
		out.Options = r.Options
	}
	if r.Correct != nil {
		out.Correct = *r.Correct
	}
	return &out
}

// Fields returns the update as a field map suitable for a merge statement
func (r *UpdateTriviaRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Options != nil {
		fields["options"] = r.Options
	}
	if r.Correct != nil {
		fields["correct"] = *r.Correct
	}
	return fields
}

// Payload renders a question back into payload form for validation
func (q *TriviaQuestion) Payload() TriviaPayload {
	options := make([]interface{}, len(q.Options))
	for i, o := range q.Options {
		options[i] = o
	}
	return TriviaPayload{
		"title":   q.Title,
		"options": options,
		"correct": q.Correct,
	}
}

// TriviaPage is one pagination window over the collection
type TriviaPage struct {
	Page           int               `json:"page"`
	Limit          int               `json:"limit"`
	TotalDocuments int64             `json:"totalDocuments"`
	TotalPages     int               `json:"totalPages"`
	Documents      []*TriviaQuestion `json:"documents"`
}

// stringSlice converts a decoded JSON array into []string. It fails if v is
// not an array or any element is not a string.
func stringSlice(v interface{}) ([]string, bool) {
	switch arr := v.(type) {
	case []string:
		return arr, true
	case []interface{}:
		out := make([]string, 0, len(arr))
		for _, item := range arr {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
