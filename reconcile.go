package survey

// Reconcile rebuilds the response map for the given questions. A previous
// response is carried over only when it was recorded for the question's current
// type and has the shape that type expects; otherwise the question starts over
// with an empty response. Responses of questions that no longer exist are dropped.
//
// Reconcile is idempotent and does not modify prev.
func Reconcile(questions []Question, prev ResponseMap) ResponseMap {
	next := make(ResponseMap, len(questions))
	for _, q := range questions {
		r, ok := prev[q.ID]
		if ok && r.Type == q.Type && shapeMatches(r.Value, q.Type) {
			next[q.ID] = r.clone()
			continue
		}
		next[q.ID] = EmptyResponse(q.Type)
	}
	return next
}

// shapeMatches reports whether v is the kind of value questions of type t are
// answered with. Text and single-select multiple choice both take a string.
func shapeMatches(v ResponseValue, t QuestionType) bool {
	switch t {
	case QuestionTypeText, QuestionTypeMultipleChoice:
		_, scalar := v.(ResponseScalar)
		return scalar
	}
	return false
}
