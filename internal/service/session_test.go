package service

import (
	"testing"

	"homewise/internal/model"
)

func TestMergeContext(t *testing.T) {
	mumbai := "Mumbai"
	pune := "Pune"
	two := 2
	budget := 5000000.0

	current := model.Filters{Location: &mumbai, BHK: &two}

	t.Run("new location replaces", func(t *testing.T) {
		merged := MergeContext(current, model.Filters{Location: &pune})
		if merged.Location == nil || *merged.Location != "Pune" {
			t.Errorf("Location = %v, want Pune", merged.Location)
		}
		if merged.BHK == nil || *merged.BHK != 2 {
			t.Errorf("BHK = %v, want 2 preserved", merged.BHK)
		}
	})

	t.Run("nil preserves", func(t *testing.T) {
		merged := MergeContext(current, model.Filters{BudgetMax: &budget})
		if merged.Location == nil || *merged.Location != "Mumbai" {
			t.Errorf("Location = %v, want Mumbai preserved", merged.Location)
		}
		if merged.BudgetMax == nil || *merged.BudgetMax != budget {
			t.Errorf("BudgetMax = %v, want %v", merged.BudgetMax, budget)
		}
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		merged := MergeContext(current, model.Filters{})
		if merged != current {
			t.Errorf("merged = %+v, want %+v", merged, current)
		}
	})
}

func TestSessionStore_Update(t *testing.T) {
	s := NewSessionStore()
	thane := "Thane"
	pune := "Pune"
	three := 3

	s.Update("s1", model.Filters{Location: &thane})

	// A follow-up that only mentions BHK keeps the city.
	merged := s.Update("s1", model.Filters{BHK: &three})
	if merged.Location == nil || *merged.Location != "Thane" {
		t.Errorf("Location = %v, want Thane", merged.Location)
	}
	if merged.BHK == nil || *merged.BHK != 3 {
		t.Errorf("BHK = %v, want 3", merged.BHK)
	}

	// A new city replaces the remembered one.
	merged = s.Update("s1", model.Filters{Location: &pune})
	if merged.Location == nil || *merged.Location != "Pune" {
		t.Errorf("Location = %v, want Pune", merged.Location)
	}
}

func TestSessionStore_Isolation(t *testing.T) {
	s := NewSessionStore()
	mumbai := "Mumbai"
	kochi := "Kochi"

	s.Update("a", model.Filters{Location: &mumbai})
	s.Update("b", model.Filters{Location: &kochi})

	if got := s.Get("a"); got.Location == nil || *got.Location != "Mumbai" {
		t.Errorf("session a = %v, want Mumbai", got.Location)
	}
	if got := s.Get("b"); got.Location == nil || *got.Location != "Kochi" {
		t.Errorf("session b = %v, want Kochi", got.Location)
	}
	if got := s.Get("unknown"); !got.Empty() {
		t.Errorf("unknown session = %+v, want empty", got)
	}
}

func TestSessionStore_Reset(t *testing.T) {
	s := NewSessionStore()
	mumbai := "Mumbai"

	s.Update("s1", model.Filters{Location: &mumbai})
	s.Reset("s1")

	if got := s.Get("s1"); !got.Empty() {
		t.Errorf("context after reset = %+v, want empty", got)
	}
}

func TestSessionStore_DefaultSession(t *testing.T) {
	s := NewSessionStore()
	mumbai := "Mumbai"

	// An empty session ID maps onto the default session.
	s.Update("", model.Filters{Location: &mumbai})
	if got := s.Get(DefaultSessionID); got.Location == nil || *got.Location != "Mumbai" {
		t.Errorf("default session = %v, want Mumbai", got.Location)
	}
}
