package model

import "time"

// Known question types. Type is an open string on the wire and is stored
// as-is; these are the values the bundled frontend knows how to render.
const (
	QuestionText     = "text"
	QuestionTextarea = "textarea"
	QuestionRadio    = "radio"
	QuestionCheckbox = "checkbox"
	QuestionSelect   = "select"
)

type Form struct {
	ID          int        `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

type Question struct {
	ID       int      `json:"id,omitempty"`
	Type     string   `json:"type"`
	Prompt   string   `json:"question"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

type FormResponse struct {
	ID      int               `json:"id"`
	FormID  int               `json:"formId"`
	Time    time.Time         `json:"time"`
	Answers map[string]string `json:"answers"`
}

// Clone returns a copy of the form that shares no memory with the original.
func (f Form) Clone() Form {
	f.Questions = CloneQuestions(f.Questions)
	return f
}

// CloneQuestions copies a question list, including each question's options.
// The result is never nil, so an empty list serializes as [] rather than null.
func CloneQuestions(questions []Question) []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		if q.Options != nil {
			q.Options = append([]string(nil), q.Options...)
		}
		out[i] = q
	}
	return out
}

// Clone returns a copy of the response with its own answers map.
func (r FormResponse) Clone() FormResponse {
	r.Answers = CloneAnswers(r.Answers)
	return r
}

// CloneAnswers copies an answers map verbatim. The result is never nil, so
// an empty map serializes as {} rather than null.
func CloneAnswers(answers map[string]string) map[string]string {
	out := make(map[string]string, len(answers))
	for k, v := range answers {
		out[k] = v
	}
	return out
}
