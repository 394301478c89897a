package store

// reducePrefs handles the ui-preference slice. It also reacts to
// AddTodo: every successful add re-surfaces the dismissible banner.
func reducePrefs(p Prefs, a Action) Prefs {
	switch a.(type) {
	case ToggleDarkMode:
		p.DarkMode = !p.DarkMode
	case DismissBanner:
		p.BannerVisible = false
	case ShowBanner:
		p.BannerVisible = true
	case AddTodo:
		p.BannerVisible = true
	}
	return p
}
