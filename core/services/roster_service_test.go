package services

import (
	"testing"
)

func TestRosterService(t *testing.T) {
	t.Run("Seeded contacts have ids and keep order", func(t *testing.T) {
		s := NewRosterService()
		list := s.List()
		if len(list) != 3 {
			t.Fatalf("expected 3 seeded contacts, got %d", len(list))
		}
		if list[0].Name != "Ada Lovelace" {
			t.Errorf("insertion order not preserved: %+v", list[0])
		}
		for _, c := range list {
			if c.ID == "" {
				t.Errorf("contact %q has no id", c.Name)
			}
		}
	})

	t.Run("Add assigns a fresh id", func(t *testing.T) {
		s := NewRosterService()
		added := s.Add(Contact{Name: "Alan Turing"})
		if added.ID == "" {
			t.Fatal("Add should assign an id")
		}
		got, ok := s.Get(added.ID)
		if !ok || got.Name != "Alan Turing" {
			t.Errorf("Get after Add = %+v, %v", got, ok)
		}
	})

	t.Run("Update replaces an existing record", func(t *testing.T) {
		s := NewRosterService()
		c := s.List()[0]
		c.Email = "new@example.com"
		if err := s.Update(c); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		got, _ := s.Get(c.ID)
		if got.Email != "new@example.com" {
			t.Errorf("Update not applied: %+v", got)
		}
	})

	t.Run("Update of unknown id is an error", func(t *testing.T) {
		s := NewRosterService()
		if err := s.Update(Contact{ID: "missing"}); err == nil {
			t.Error("expected error for unknown id")
		}
	})

	t.Run("Remove drops the record from the order", func(t *testing.T) {
		s := NewRosterService()
		c := s.List()[1]
		if !s.Remove(c.ID) {
			t.Fatal("Remove reported not found")
		}
		if s.Remove(c.ID) {
			t.Error("second Remove should report not found")
		}
		for _, rest := range s.List() {
			if rest.ID == c.ID {
				t.Error("removed contact still listed")
			}
		}
	})
}
