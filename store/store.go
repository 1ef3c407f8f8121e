package store

import (
	"sort"
	"sync"
	"time"

	"github.com/mbolis/quick-forms/model"
	"go.uber.org/atomic"
)

// Store owns every form and response in the process. State lives in memory
// behind a single read-write mutex, and identifiers come from counters that
// only move forward, so an id is never reissued even after its form is gone.
//
// Values cross the Store boundary by deep copy in both directions: callers
// may keep or mutate anything they pass in or get back without touching
// stored state.
type Store struct {
	mu        sync.RWMutex
	forms     map[int]*model.Form
	responses map[int][]model.FormResponse

	formID     atomic.Int64
	responseID atomic.Int64
}

// New returns an empty store.
func New() *Store {
	return &Store{
		forms:     map[int]*model.Form{},
		responses: map[int][]model.FormResponse{},
	}
}

// List returns every form ordered by ascending id. The result is empty,
// never nil, when no forms exist.
func (s *Store) List() []model.Form {
	s.mu.RLock()
	out := make([]model.Form, 0, len(s.forms))
	for _, form := range s.forms {
		out = append(out, form.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns the form with the given id, or ok=false if there is none.
func (s *Store) Get(id int) (model.Form, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	form, ok := s.forms[id]
	if !ok {
		return model.Form{}, false
	}
	return form.Clone(), true
}

// Create stores a new form under the next free id and returns it.
// Question ids supplied by the caller are ignored: questions are numbered
// 1..N in input order.
func (s *Store) Create(title, description string, questions []model.Question) model.Form {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createLocked(title, description, questions).Clone()
}

func (s *Store) createLocked(title, description string, questions []model.Question) *model.Form {
	form := &model.Form{
		ID:          int(s.formID.Inc()),
		Title:       title,
		Description: description,
		Questions:   model.CloneQuestions(questions),
	}
	for i := range form.Questions {
		form.Questions[i].ID = i + 1
	}
	s.forms[form.ID] = form
	return form
}

// Update replaces the form's title, description and entire question list in
// one step; there is no partial update. Responses already collected for the
// form are left untouched. Ok is false, and nothing changes, if the id is
// unknown.
//
// A question that arrives with a non-zero id keeps it; one without is
// assigned its 1-based position in this update's list. The store does not
// check the resulting ids for clashes.
func (s *Store) Update(id int, title, description string, questions []model.Question) (model.Form, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.forms[id]
	if !ok {
		return model.Form{}, false
	}

	replaced := model.CloneQuestions(questions)
	for i := range replaced {
		if replaced[i].ID == 0 {
			replaced[i].ID = i + 1
		}
	}

	form.Title = title
	form.Description = description
	form.Questions = replaced
	return form.Clone(), true
}

// Delete removes the form and all of its responses. It reports whether a
// form was actually removed; deleting an unknown id is a no-op, not an
// error.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.forms[id]; !ok {
		return false
	}
	delete(s.forms, id)
	delete(s.responses, id)
	return true
}

// AddResponse appends a response to the form's collection, stamped with the
// current time and the next free response id. The answers map is stored as
// given: keys are not matched against the form's questions and required
// questions are not enforced. Ok is false, and no response id is consumed,
// if the form does not exist.
func (s *Store) AddResponse(formID int, answers map[string]string) (model.FormResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.forms[formID]; !ok {
		return model.FormResponse{}, false
	}
	return s.addResponseLocked(formID, answers).Clone(), true
}

func (s *Store) addResponseLocked(formID int, answers map[string]string) model.FormResponse {
	response := model.FormResponse{
		ID:      int(s.responseID.Inc()),
		FormID:  formID,
		Time:    time.Now(),
		Answers: model.CloneAnswers(answers),
	}
	s.responses[formID] = append(s.responses[formID], response)
	return response
}

// Responses returns the form's responses in submission order. Ok is false
// if the form does not exist. A form that exists but has collected nothing
// yields an empty list instead.
func (s *Store) Responses(formID int) ([]model.FormResponse, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.forms[formID]; !ok {
		return nil, false
	}
	stored := s.responses[formID]
	out := make([]model.FormResponse, 0, len(stored))
	for _, response := range stored {
		out = append(out, response.Clone())
	}
	return out, true
}
