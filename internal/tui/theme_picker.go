package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/kanban/internal/theme"
)

// ---------------------------------------------------------------------------
// Theme picker item (implements list.Item)
// ---------------------------------------------------------------------------

type themeItem struct {
	name string
}

func (t themeItem) Title() string       { return t.name }
func (t themeItem) Description() string { return "" }
func (t themeItem) FilterValue() string { return t.name }

type themeItemDelegate struct{}

func (d themeItemDelegate) Height() int  { return 1 }
func (d themeItemDelegate) Spacing() int { return 0 }
func (d themeItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}
func (d themeItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(themeItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = "> "
	}
	// Swatch in the palette's own accent so the list previews each theme.
	swatch := "  "
	if p, known := theme.ByName(entry.name); known {
		swatch = lipgloss.NewStyle().Foreground(p.Accent).Render("●") + " "
	}
	line := fmt.Sprintf("%s%s%s", prefix, swatch, entry.name)
	fmt.Fprint(w, padRight(line, m.Width()))
}

func newThemeList(current string) list.Model {
	names := theme.Names()
	items := make([]list.Item, 0, len(names))
	selected := 0
	for i, name := range names {
		items = append(items, themeItem{name: name})
		if name == current {
			selected = i
		}
	}
	l := list.New(items, themeItemDelegate{}, 0, 0)
	l.Title = "Theme"
	l.Styles.NoItems = lipgloss.NewStyle()
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Select(selected)
	return l
}

// ---------------------------------------------------------------------------
// Picker input + view
// ---------------------------------------------------------------------------

func (a App) updateThemePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case a.isAction(scopeThemePicker, actionQuit, msg):
		return a, tea.Quit
	case a.isAction(scopeThemePicker, actionCancel, msg):
		a.showThemes = false
		return a, nil
	case a.isAction(scopeThemePicker, actionConfirm, msg):
		item, ok := a.themeList.SelectedItem().(themeItem)
		a.showThemes = false
		if !ok {
			return a, nil
		}
		pal, err := a.themes.Apply(item.name)
		if err != nil {
			a.status = fmt.Sprintf("Theme change failed: %v", err)
			return a, nil
		}
		a.pal = pal
		a.st = newStyles(pal)
		a.status = fmt.Sprintf("Theme: %s.", pal.Name)
		return a, nil
	}

	var cmd tea.Cmd
	a.themeList, cmd = a.themeList.Update(msg)
	return a, cmd
}

func (a App) themePickerView() string {
	return a.themeList.View()
}

// selectCurrentTheme points the picker at the active palette.
func (a *App) selectCurrentTheme() {
	for i, item := range a.themeList.Items() {
		if entry, ok := item.(themeItem); ok && entry.name == a.pal.Name {
			a.themeList.Select(i)
			return
		}
	}
	a.themeList.Select(0)
}

func (a *App) resizeThemeList() {
	if a.width == 0 || a.height == 0 {
		return
	}
	listWidth := min(32, a.width-6)
	if listWidth < 20 {
		listWidth = 20
	}
	a.themeList.SetWidth(listWidth)
	a.themeList.SetHeight(min(18, a.height-6))
}
