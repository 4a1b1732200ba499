package survey

import "slices"

// ResponseValue is the value a respondent gave for one question.
// This is a sealed interface - use Scalar or MultiSelect.
//
// Multiple choice questions are single-select and store the chosen option text
// as a Scalar. MultiSelect is the list form of a response; it is exported as a
// list but no question type expects it, so Reconcile resets it.
type ResponseValue interface {
	doNotImplement(ResponseValue)
}

// Scalar creates a single string response value.
func Scalar(text string) ResponseValue {
	return ResponseScalar{Text: text}
}

// MultiSelect creates a response value holding several selected option texts.
func MultiSelect(selected ...string) ResponseValue {
	return ResponseMultiSelect{Selected: selected}
}

type ResponseScalar struct {
	Text string
}

func (ResponseScalar) doNotImplement(ResponseValue) {}

type ResponseMultiSelect struct {
	Selected []string
}

func (ResponseMultiSelect) doNotImplement(ResponseValue) {}

// Response is a stored answer together with the type of the question it was
// recorded for.
type Response struct {
	Type  QuestionType
	Value ResponseValue
}

// EmptyResponse is the initial response of a question of the given type.
func EmptyResponse(t QuestionType) Response {
	return Response{Type: t, Value: Scalar("")}
}

// Text returns the scalar text or "" for a multi-select value.
func (r Response) Text() string {
	if v, ok := r.Value.(ResponseScalar); ok {
		return v.Text
	}
	return ""
}

// IsEmpty reports whether no answer has been given.
func (r Response) IsEmpty() bool {
	switch v := r.Value.(type) {
	case ResponseScalar:
		return v.Text == ""
	case ResponseMultiSelect:
		return len(v.Selected) == 0
	}
	return true
}

func (r Response) clone() Response {
	if v, ok := r.Value.(ResponseMultiSelect); ok {
		r.Value = ResponseMultiSelect{Selected: slices.Clone(v.Selected)}
	}
	return r
}

// ResponseMap maps question ids to their current responses.
type ResponseMap map[QuestionID]Response

func (m ResponseMap) clone() ResponseMap {
	c := make(ResponseMap, len(m))
	for k, v := range m {
		c[k] = v.clone()
	}
	return c
}
