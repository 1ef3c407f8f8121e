package store

import (
	"testing"
)

func TestSeed(t *testing.T) {
	store := New()

	if err := store.Seed(); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	forms := store.List()
	if len(forms) != 1 {
		t.Fatalf("Seed() produced %d forms, want 1", len(forms))
	}
	form := forms[0]
	if form.Title == "" {
		t.Error("Seed() produced a form without a title")
	}
	if len(form.Questions) != 3 {
		t.Errorf("Seed() produced %d questions, want 3", len(form.Questions))
	}
	for i, q := range form.Questions {
		if q.ID != i+1 {
			t.Errorf("Seed() question[%d].ID = %d, want %d", i, q.ID, i+1)
		}
	}

	responses, ok := store.Responses(form.ID)
	if !ok {
		t.Fatalf("Responses(%d) not found after Seed", form.ID)
	}
	if len(responses) != 1 {
		t.Errorf("Seed() produced %d responses, want 1", len(responses))
	}
}

func TestSeedTwice(t *testing.T) {
	store := New()

	if err := store.Seed(); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if err := store.Seed(); err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}

	if forms := store.List(); len(forms) != 1 {
		t.Errorf("Seed() twice produced %d forms, want 1", len(forms))
	}
}

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	store := New()
	form := store.Create("Existing", "", nil)

	if err := store.Seed(); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	forms := store.List()
	if len(forms) != 1 {
		t.Fatalf("Seed() on non-empty store produced %d forms, want 1", len(forms))
	}
	if forms[0].ID != form.ID || forms[0].Title != "Existing" {
		t.Errorf("Seed() on non-empty store replaced the existing form: %+v", forms[0])
	}
}
