package ui

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tally/internal/store"
)

// renderCounterCard draws the counter value with its key hints.
func renderCounterCard(th Theme, value int64, width int) string {
	title := th.TitleStyle.Render("Counter")
	val := th.ValueStyle.Render(fmt.Sprintf("%d", value))
	hints := th.MutedStyle.Render("+ up · - down · 0 reset · = add amount")

	inner := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		"  "+val,
		"",
		hints,
	)
	return th.CardStyle.Width(width - 2).Render(inner)
}

// renderTodoCard draws the todo list with live counts, the cursor
// marker and a completion progress bar.
func renderTodoCard(th Theme, todos []store.Todo, cursor, width int, now time.Time) string {
	done, pending := 0, 0
	for _, it := range todos {
		if it.Done {
			done++
		} else {
			pending++
		}
	}

	header := fmt.Sprintf("%s   %s %d  %s %d",
		th.TitleStyle.Render("Todos"),
		th.SuccessStyle.Render("✔"), done,
		th.PendingStyle.Render("•"), pending,
	)

	lines := []string{header, ""}
	if len(todos) == 0 {
		lines = append(lines, th.MutedStyle.Render("No todos yet. Press n to add one."))
	}
	titleWidth := width - 12
	if titleWidth < 10 {
		titleWidth = 10
	}
	for i, it := range todos {
		box := th.MutedStyle.Render(boxUnchecked)
		text := wordwrap.String(it.Title, titleWidth)
		if it.Done {
			box = th.SuccessStyle.Render(boxChecked)
			text = th.DoneStyle.Render(text)
		}
		prefix := "  "
		if i == cursor {
			prefix = th.SelectedStyle.Render("> ")
		}
		age := th.MutedStyle.Render(FormatAge(it.CreatedAt, now))
		lines = append(lines, fmt.Sprintf("%s%s %s %s", prefix, box, text, age))
	}

	if len(todos) > 0 {
		lines = append(lines, "", th.MutedStyle.Render(progressBar(done, len(todos), width-10)))
	}

	inner := strings.Join(lines, "\n")
	return th.CardStyle.Width(width - 2).Render(inner)
}

// renderCompletedTable draws the derived completed-items table. An
// empty filter result suppresses the whole table.
func renderCompletedTable(th Theme, completed []store.Todo, width int, now time.Time) string {
	if len(completed) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(completed))
	for _, it := range completed {
		rows = append(rows, []string{
			boxChecked,
			truncateCell(it.Title, width/2),
			FormatAge(it.CreatedAt, now),
		})
	}

	table := formatTable([]string{"", "COMPLETED", "AGE"}, rows)
	tableLines := strings.Split(table, "\n")
	tableLines[0] = th.TableHeader.Render(tableLines[0])

	inner := strings.Join(tableLines, "\n")
	return th.CardStyle.Width(width - 2).Render(inner)
}

// renderBanner draws the dismissible informational banner.
func renderBanner(th Theme, message string, width int, dark bool) string {
	body := renderMarkdown(width-6, dark, message)
	if body == "" {
		return ""
	}
	return th.BannerStyle.Width(width - 2).Render(body)
}

// renderFooter draws the cosmetic platform label and the short help.
func renderFooter(th Theme, helpView string, width int) string {
	label := th.FooterStyle.Render(fmt.Sprintf("tally · %s", runtime.GOOS))
	gap := width - lipgloss.Width(label) - lipgloss.Width(helpView)
	if gap < 1 {
		return label + "\n" + helpView
	}
	return label + strings.Repeat(" ", gap) + helpView
}

// progressBar renders a Unicode completion bar like "[███░░░] 1/2".
func progressBar(done, total, width int) string {
	if total == 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}
