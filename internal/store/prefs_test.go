package store

import "testing"

func TestToggleDarkModeIsInvolution(t *testing.T) {
	st := DefaultState()
	if st.Prefs.DarkMode {
		t.Fatal("expected DarkMode false by default")
	}

	st = Reduce(st, ToggleDarkMode{})
	if !st.Prefs.DarkMode {
		t.Error("expected DarkMode true after one toggle")
	}

	st = Reduce(st, ToggleDarkMode{})
	if st.Prefs.DarkMode {
		t.Error("expected DarkMode false after two toggles")
	}
}

func TestBannerDismissAndShow(t *testing.T) {
	st := DefaultState()
	if !st.Prefs.BannerVisible {
		t.Fatal("expected banner visible by default")
	}

	st = Reduce(st, DismissBanner{})
	if st.Prefs.BannerVisible {
		t.Error("expected banner hidden after dismiss")
	}

	// Dismissing an already-hidden banner stays a no-op.
	st = Reduce(st, DismissBanner{})
	if st.Prefs.BannerVisible {
		t.Error("expected banner still hidden after second dismiss")
	}

	st = Reduce(st, ShowBanner{})
	if !st.Prefs.BannerVisible {
		t.Error("expected banner visible after show")
	}

	st = Reduce(st, ShowBanner{})
	if !st.Prefs.BannerVisible {
		t.Error("expected banner still visible after second show")
	}
}

func TestAddTodoReshowsBanner(t *testing.T) {
	st := Reduce(DefaultState(), DismissBanner{})
	if st.Prefs.BannerVisible {
		t.Fatal("expected banner hidden after dismiss")
	}

	add, ok := PrepareAddTodo("water the plants")
	if !ok {
		t.Fatal("PrepareAddTodo rejected a valid title")
	}
	st = Reduce(st, add)

	if !st.Prefs.BannerVisible {
		t.Error("expected banner visible again after adding a todo")
	}
}
