package tracking

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type contact struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Tags  []string `json:"tags,omitempty"`
}

func TestIsChanged(t *testing.T) {
	t.Run("Fresh tracker is unchanged", func(t *testing.T) {
		tr := New(contact{Name: "Ada"}, nil)
		if tr.IsChanged() {
			t.Error("fresh tracker must report unchanged")
		}
	})

	t.Run("Set marks changed", func(t *testing.T) {
		tr := New(contact{Name: "Ada"}, nil)
		tr.Set(contact{Name: "Grace"})
		if !tr.IsChanged() {
			t.Error("expected changed after Set")
		}
	})

	t.Run("Update marks changed", func(t *testing.T) {
		tr := New(contact{Name: "Ada"}, nil)
		tr.Update(func(c *contact) { c.Email = "ada@example.com" })
		if !tr.IsChanged() {
			t.Error("expected changed after Update")
		}
	})

	t.Run("Setting back the original value is unchanged", func(t *testing.T) {
		tr := New(contact{Name: "Ada"}, nil)
		tr.Set(contact{Name: "Grace"})
		tr.Set(contact{Name: "Ada"})
		if tr.IsChanged() {
			t.Error("value equal to the snapshot must report unchanged")
		}
	})

	t.Run("Snapshot does not alias slices", func(t *testing.T) {
		tr := New(contact{Name: "Ada", Tags: []string{"math"}}, nil)
		tr.Update(func(c *contact) { c.Tags[0] = "engines" })
		if !tr.IsChanged() {
			t.Error("mutating a slice element must be detected against the deep clone")
		}
	})
}

func TestAcceptChanges(t *testing.T) {
	tr := New(contact{Name: "Ada"}, nil)
	tr.Update(func(c *contact) { c.Name = "Grace" })
	tr.AcceptChanges()

	if tr.IsChanged() {
		t.Error("accepted value must become the new baseline")
	}
	if got := tr.Original().Name; got != "Grace" {
		t.Errorf("expected baseline Grace, got %q", got)
	}
}

func TestReset(t *testing.T) {
	tr := New(contact{Name: "Ada", Email: "ada@example.com"}, nil)
	tr.Update(func(c *contact) { c.Email = "other@example.com" })
	tr.Reset()

	if tr.IsChanged() {
		t.Error("reset tracker must report unchanged")
	}
	if got := tr.Value().Email; got != "ada@example.com" {
		t.Errorf("expected restored email, got %q", got)
	}
}

func TestCustomCloneAndOptions(t *testing.T) {
	clone := func(c contact) contact {
		out := c
		out.Tags = append([]string(nil), c.Tags...)
		return out
	}
	tr := New(contact{Tags: nil}, clone, cmp.Options{})

	tr.Set(contact{Tags: []string{"x"}})
	if !tr.IsChanged() {
		t.Error("expected changed with custom clone")
	}
}
