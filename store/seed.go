package store

import (
	_ "embed"

	"github.com/goccy/go-json"
	"github.com/mbolis/quick-forms/model"
	"github.com/pkg/errors"
)

//go:embed seed.json
var seedJSON []byte

type seedData struct {
	Form    model.Form        `json:"form"`
	Answers map[string]string `json:"answers"`
}

// Seed inserts the bundled demo form and one sample response, so a fresh
// install has something to show. It only acts on a completely empty store:
// if any form exists the call is a no-op, which makes it safe to run on
// every startup.
func (s *Store) Seed() error {
	var demo seedData
	if err := json.Unmarshal(seedJSON, &demo); err != nil {
		return errors.Wrap(err, "store.seed.parse")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.forms) > 0 {
		return nil
	}
	form := s.createLocked(demo.Form.Title, demo.Form.Description, demo.Form.Questions)
	s.addResponseLocked(form.ID, demo.Answers)
	return nil
}
