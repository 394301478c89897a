package store

// Completed returns the todos with Done == true, preserving their
// relative order. It is re-derived on every call; the list is small
// enough that memoization would only add invalidation risk.
func Completed(st State) []Todo {
	var out []Todo
	for _, it := range st.Todos {
		if it.Done {
			out = append(out, it)
		}
	}
	return out
}

// Stats returns done and pending counts for the card headers.
func Stats(st State) (done, pending int) {
	for _, it := range st.Todos {
		if it.Done {
			done++
		} else {
			pending++
		}
	}
	return
}
