package ui

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"tally/internal/config"
	"tally/internal/store"
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeDraft  // typing a new todo title
	modeAmount // typing a custom counter amount
)

// App is the root Bubble Tea model. Durable state lives in the store;
// the App only owns ephemeral view state (cursor, input draft, help
// visibility) and renders pure views over store snapshots.
type App struct {
	store *store.Store
	cfg   *config.Config

	width  int
	height int

	mode     inputMode
	showHelp bool
	cursor   int

	// Shared text input, used for both the todo draft and the custom
	// amount entry.
	input textinput.Model
	help  help.Model
	keys  KeyMap
}

// NewApp builds the root model. The terminal is probed for an initial
// size; Bubble Tea delivers the authoritative one via WindowSizeMsg.
func NewApp(st *store.Store, cfg *config.Config) App {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		w, h = tw, th
	}

	return App{
		store:  st,
		cfg:    cfg,
		width:  w,
		height: h,
		input:  ti,
		help:   help.New(),
		keys:   DefaultKeyMap(),
	}
}

func (a App) Init() tea.Cmd { return textinput.Blink }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = ws.Width
		a.height = ws.Height
		a.help.Width = ws.Width
		return a, nil
	}

	if a.mode != modeNormal {
		return a.updateInput(msg)
	}

	if a.showHelp {
		if k, ok := msg.(tea.KeyMsg); ok {
			if key.Matches(k, a.keys.Help, a.keys.Quit) || k.String() == "esc" {
				a.showHelp = false
			}
		}
		return a, nil
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch {
	case key.Matches(k, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(k, a.keys.Help):
		a.showHelp = true

	case key.Matches(k, a.keys.Increment):
		a.store.Dispatch(store.Increment{})

	case key.Matches(k, a.keys.Decrement):
		a.store.Dispatch(store.Decrement{})

	case key.Matches(k, a.keys.Reset):
		a.store.Dispatch(store.ResetCounter{})

	case key.Matches(k, a.keys.Amount):
		a.mode = modeAmount
		a.input.SetValue("")
		a.input.Placeholder = "Amount (negative subtracts)..."
		a.input.Focus()

	case key.Matches(k, a.keys.NewTodo):
		a.mode = modeDraft
		a.input.SetValue("")
		a.input.Placeholder = "New todo title..."
		a.input.Focus()

	case key.Matches(k, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(k, a.keys.Down):
		if n := len(a.store.State().Todos); a.cursor < n-1 {
			a.cursor++
		}

	case key.Matches(k, a.keys.Toggle):
		if id, ok := a.todoAtCursor(); ok {
			a.store.Dispatch(store.ToggleTodo{ID: id})
		}

	case key.Matches(k, a.keys.Remove):
		if id, ok := a.todoAtCursor(); ok {
			a.store.Dispatch(store.RemoveTodo{ID: id})
			a.cursor = clampCursor(a.cursor, len(a.store.State().Todos))
		}

	case key.Matches(k, a.keys.Clear):
		a.store.Dispatch(store.ClearTodos{})
		a.cursor = 0

	case key.Matches(k, a.keys.ThemeFlip):
		a.store.Dispatch(store.ToggleDarkMode{})

	case key.Matches(k, a.keys.Dismiss):
		a.store.Dispatch(store.DismissBanner{})

	case key.Matches(k, a.keys.Banner):
		a.store.Dispatch(store.ShowBanner{})
	}

	return a, nil
}

// updateInput handles key traffic while the shared text input is
// focused.
func (a App) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			a.submitInput()
			a.leaveInput()
			return a, nil
		case "esc":
			a.leaveInput()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submitInput dispatches the action for the current input mode. An
// empty-after-trim todo title is silently dropped; a non-numeric
// amount is coerced to zero before it reaches the reducer.
func (a *App) submitInput() {
	switch a.mode {
	case modeDraft:
		if add, ok := store.PrepareAddTodo(a.input.Value()); ok {
			a.store.Dispatch(add)
			a.cursor = 0
		}
	case modeAmount:
		a.store.Dispatch(store.AddAmount{Amount: coerceAmount(a.input.Value())})
	}
}

func (a *App) leaveInput() {
	a.mode = modeNormal
	a.input.SetValue("")
	a.input.Blur()
}

// todoAtCursor resolves the cursor to a todo id in the current
// snapshot.
func (a App) todoAtCursor() (string, bool) {
	todos := a.store.State().Todos
	i := clampCursor(a.cursor, len(todos))
	if i >= len(todos) {
		return "", false
	}
	return todos[i].ID, true
}

func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

// coerceAmount parses a custom counter amount, treating anything
// non-numeric as zero.
func coerceAmount(value string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func (a App) View() string {
	st := a.store.State()
	th := ThemeFor(st.Prefs.DarkMode)

	if a.showHelp {
		return a.viewHelp(th, st.Prefs.DarkMode)
	}

	now := time.Now()
	cursor := clampCursor(a.cursor, len(st.Todos))
	var sections []string

	if st.Prefs.BannerVisible {
		if banner := renderBanner(th, a.cfg.UI.Banner, a.width, st.Prefs.DarkMode); banner != "" {
			sections = append(sections, banner)
		}
	}

	switch LayoutMode(a.width, a.cfg.Layout.Breakpoint) {
	case Wide:
		half := a.width / 2
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top,
			renderCounterCard(th, st.Counter.Value, half),
			renderTodoCard(th, st.Todos, cursor, a.width-half, now),
		))
	default:
		sections = append(sections,
			renderCounterCard(th, st.Counter.Value, a.width),
			renderTodoCard(th, st.Todos, cursor, a.width, now),
		)
	}

	if table := renderCompletedTable(th, store.Completed(st), a.width, now); table != "" {
		sections = append(sections, table)
	}

	if a.mode != modeNormal {
		sections = append(sections, a.viewInputBar(th))
	}

	sections = append(sections, renderFooter(th, a.help.View(a.keys), a.width))

	return strings.Join(sections, "\n")
}

// viewInputBar renders the bordered prompt for the draft and amount
// modes.
func (a App) viewInputBar(th Theme) string {
	title := "Add new todo"
	if a.mode == modeAmount {
		title = "Add to counter"
	}
	bar := th.TitleStyle.Render(title) + "\n" + a.input.View()
	return th.CardStyle.Width(a.width - 2).Render(bar)
}

const helpMarkdown = `# tally keys

## Todos

- ` + "`n`" + ` new todo, ` + "`space`" + ` toggle done
- ` + "`d`" + ` delete, ` + "`D`" + ` clear all
- ` + "`j`/`k`" + ` move the cursor

## Counter

- ` + "`+`/`-`" + ` step by one, ` + "`0`" + ` reset
- ` + "`=`" + ` add a custom amount (junk counts as 0)

## Appearance

- ` + "`t`" + ` switch light/dark
- ` + "`b`" + ` dismiss the banner, ` + "`B`" + ` bring it back

Press ` + "`?`" + ` or ` + "`esc`" + ` to close this help.`

func (a App) viewHelp(th Theme, dark bool) string {
	return renderMarkdown(a.width-4, dark, helpMarkdown)
}

// Run starts the interactive dashboard and blocks until quit.
func Run(st *store.Store, cfg *config.Config) error {
	p := tea.NewProgram(NewApp(st, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
