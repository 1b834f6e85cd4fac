package career

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewCatalog_Empty(t *testing.T) {
	if _, err := NewCatalog(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestNewCatalog_DuplicateName(t *testing.T) {
	_, err := NewCatalog([]Profile{
		{Name: "Data Scientist"},
		{Name: "Data Scientist"},
	})
	if !errors.Is(err, ErrDuplicateCareer) {
		t.Fatalf("expected ErrDuplicateCareer, got %v", err)
	}
}

func TestNewCatalog_UnnamedProfile(t *testing.T) {
	_, err := NewCatalog([]Profile{{Name: "   "}})
	if !errors.Is(err, ErrUnnamedCareer) {
		t.Fatalf("expected ErrUnnamedCareer, got %v", err)
	}
}

func TestCatalog_PreservesInsertionOrder(t *testing.T) {
	c, err := NewCatalog([]Profile{
		{Name: "Zeta"},
		{Name: "Alpha"},
		{Name: "Mid"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []string{"Zeta", "Alpha", "Mid"}
	if got := c.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected names %v, got %v", want, got)
	}

	profiles := c.Profiles()
	for i, p := range profiles {
		if p.Name != want[i] {
			t.Fatalf("profiles out of order at %d: %s", i, p.Name)
		}
	}
}

func TestCatalog_Get(t *testing.T) {
	c, err := NewCatalog([]Profile{{Name: "DevOps Engineer", Skills: []string{"Docker"}}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	p, ok := c.Get("DevOps Engineer")
	if !ok {
		t.Fatalf("expected career to exist")
	}
	if len(p.Skills) != 1 || p.Skills[0] != "Docker" {
		t.Fatalf("unexpected skills: %v", p.Skills)
	}

	if _, ok := c.Get("Astronaut"); ok {
		t.Fatalf("expected missing career")
	}
}

func TestCatalog_SkillNames_DedupesCaseInsensitive(t *testing.T) {
	c, err := NewCatalog([]Profile{
		{Name: "A", Skills: []string{"Python", "SQL"}},
		{Name: "B", Skills: []string{"python", "Docker"}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	want := []string{"Python", "SQL", "Docker"}
	if got := c.SkillNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
