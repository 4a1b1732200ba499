// Package survey holds a survey definition together with the responses given
// to it and keeps the two consistent while the survey is edited.
package survey

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
)

const (
	DefaultTitle       = "Customer Feedback Survey"
	DefaultDescription = "Help us improve by sharing your feedback"
)

// Snapshot is the state observed by views after a change.
type Snapshot struct {
	Definition Definition
	Responses  ResponseMap
}

// Session owns the survey definition and the responses of one authoring
// session. Every mutation is applied, then the responses are reconciled against
// the new question list, then subscribers are notified.
type Session struct {
	mu          sync.Mutex
	definition  Definition
	responses   ResponseMap
	newID       func() string
	logger      *slog.Logger
	subscribers []func(Snapshot)
}

type SessionOption func(*Session)

// WithIDGenerator replaces the uuid based id generator.
func WithIDGenerator(newID func() string) SessionOption {
	return func(s *Session) { s.newID = newID }
}

func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = logger }
}

func WithTitle(title string) SessionOption {
	return func(s *Session) { s.definition.Title = title }
}

func WithDescription(description string) SessionOption {
	return func(s *Session) { s.definition.Description = description }
}

// NewSession creates an empty session titled DefaultTitle.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		definition: Definition{Title: DefaultTitle, Description: DefaultDescription},
		responses:  ResponseMap{},
		newID:      uuid.NewString,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewID returns a fresh id from the session's generator, for options created
// through the Question helpers.
func (s *Session) NewID() string {
	return s.newID()
}

// Subscribe registers fn to be called with the reconciled state after every
// change. fn runs with the session unlocked and must not retain the snapshot's
// maps for mutation.
func (s *Session) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Session) Definition() Definition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.definition.clone()
}

func (s *Session) Responses() ResponseMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.responses.clone()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	return Snapshot{Definition: s.definition.clone(), Responses: s.responses.clone()}
}

// update applies mutate, re-derives the responses when the question list may
// have changed and notifies subscribers with the result.
func (s *Session) update(questionsChanged bool, mutate func()) {
	s.mu.Lock()
	mutate()
	if questionsChanged {
		s.responses = Reconcile(s.definition.Questions, s.responses)
	}
	snap := s.snapshot()
	subscribers := slices.Clone(s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(snap)
	}
}

func (s *Session) SetTitle(title string) {
	s.update(false, func() { s.definition.Title = title })
}

func (s *Session) SetDescription(description string) {
	s.update(false, func() { s.definition.Description = description })
}

// AddQuestion appends an optional text question with an empty label.
func (s *Session) AddQuestion() Question {
	q := Question{ID: s.newID(), Type: QuestionTypeText}
	s.update(true, func() {
		s.definition.Questions = append(s.definition.Questions, q)
	})
	s.logger.Debug("question added", slog.String("question", q.ID))
	return q.clone()
}

// UpdateQuestion replaces the question having the same id. Unknown ids are
// ignored. A question that is not multiple choice loses its options; a multiple
// choice question without options gets a single empty one.
func (s *Session) UpdateQuestion(updated Question) {
	updated = updated.normalized(s.newID)
	s.update(true, func() {
		for i, q := range s.definition.Questions {
			if q.ID == updated.ID {
				s.definition.Questions[i] = updated
			}
		}
	})
	s.logger.Debug("question updated", slog.String("question", updated.ID), slog.String("type", string(updated.Type)))
}

// DeleteQuestion removes the question and its response.
func (s *Session) DeleteQuestion(id QuestionID) {
	s.update(true, func() {
		s.definition.Questions = slices.DeleteFunc(s.definition.Questions, func(q Question) bool { return q.ID == id })
	})
	s.logger.Debug("question deleted", slog.String("question", id))
}

// SetTextResponse overwrites the answer of one question.
func (s *Session) SetTextResponse(id QuestionID, value string) {
	s.setResponse(id, value)
}

// SetChoiceResponse records the selected option text of one question.
func (s *Session) SetChoiceResponse(id QuestionID, optionText string) {
	s.setResponse(id, optionText)
}

func (s *Session) setResponse(id QuestionID, value string) {
	s.update(false, func() {
		q, ok := s.definition.Question(id)
		if !ok {
			return
		}
		s.responses[id] = Response{Type: q.Type, Value: Scalar(value)}
	})
}
