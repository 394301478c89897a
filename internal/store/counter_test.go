package store

import "testing"

func TestCounterSumsDeltas(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
		want    int64
	}{
		{
			name: "increments and decrements",
			actions: []Action{
				Increment{}, Increment{}, Increment{}, Decrement{},
			},
			want: 2,
		},
		{
			name: "arbitrary amounts including negative and zero",
			actions: []Action{
				AddAmount{Amount: 10}, AddAmount{Amount: -3}, AddAmount{Amount: 0}, Increment{},
			},
			want: 8,
		},
		{
			name: "goes negative without clamping",
			actions: []Action{
				Decrement{}, Decrement{}, AddAmount{Amount: -5},
			},
			want: -7,
		},
		{
			name: "reset restarts the sum",
			actions: []Action{
				AddAmount{Amount: 41}, Increment{}, ResetCounter{}, Increment{}, Increment{},
			},
			want: 2,
		},
		{
			name: "reset on zero is a no-op",
			actions: []Action{
				ResetCounter{},
			},
			want: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			st := DefaultState()
			for _, a := range tc.actions {
				st = Reduce(st, a)
			}
			if st.Counter.Value != tc.want {
				t.Errorf("Counter.Value = %d, want %d", st.Counter.Value, tc.want)
			}
		})
	}
}

func TestCounterIgnoresOtherSlices(t *testing.T) {
	st := Reduce(DefaultState(), AddAmount{Amount: 7})
	st = Reduce(st, ToggleDarkMode{})
	st = Reduce(st, ClearTodos{})
	if st.Counter.Value != 7 {
		t.Errorf("Counter.Value = %d, want 7 after unrelated actions", st.Counter.Value)
	}
}
