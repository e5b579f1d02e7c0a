package tui

import tea "github.com/charmbracelet/bubbletea"

// ---------------------------------------------------------------------------
// Key dispatch: scope -> key -> action
// ---------------------------------------------------------------------------

type Action string

type Binding struct {
	Action Action
	Keys   []string
	Help   string
}

const (
	scopeBoard       = "board"
	scopeAddInput    = "add_input"
	scopeSearchInput = "search_input"
	scopeDetailModal = "detail_modal"
	scopeDetailEdit  = "detail_edit"
	scopeThemePicker = "theme_picker"
)

const (
	actionQuit        Action = "quit"
	actionLeft        Action = "left"
	actionRight       Action = "right"
	actionUp          Action = "up"
	actionDown        Action = "down"
	actionAdd         Action = "add"
	actionOpen        Action = "open"
	actionDelete      Action = "delete"
	actionMoveLeft    Action = "move_left"
	actionMoveRight   Action = "move_right"
	actionThemes      Action = "themes"
	actionSearch      Action = "search"
	actionClearSearch Action = "clear_search"
	actionEdit        Action = "edit"
	actionSave        Action = "save"
	actionConfirm     Action = "confirm"
	actionCancel      Action = "cancel"
	actionClose       Action = "close"
)

// KeyRegistry maps keys to actions per scope and keeps registration order for
// footer help.
type KeyRegistry struct {
	bindingsByScope map[string][]Binding
	indexByScope    map[string]map[string]Action
}

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]Binding),
		indexByScope:    make(map[string]map[string]Action),
	}

	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(scope, Binding{Action: action, Keys: keys, Help: help})
	}

	reg(scopeBoard, actionLeft, []string{"h", "left"}, "column")
	reg(scopeBoard, actionDown, []string{"j", "down"}, "task")
	reg(scopeBoard, actionUp, []string{"k", "up"}, "")
	reg(scopeBoard, actionRight, []string{"l", "right"}, "")
	reg(scopeBoard, actionAdd, []string{"a"}, "add")
	reg(scopeBoard, actionOpen, []string{"enter"}, "open")
	reg(scopeBoard, actionMoveLeft, []string{"H", "shift+left"}, "move")
	reg(scopeBoard, actionMoveRight, []string{"L", "shift+right"}, "")
	reg(scopeBoard, actionDelete, []string{"d"}, "delete")
	reg(scopeBoard, actionSearch, []string{"/"}, "search")
	reg(scopeBoard, actionThemes, []string{"t"}, "theme")
	reg(scopeBoard, actionClearSearch, []string{"esc"}, "")
	reg(scopeBoard, actionQuit, []string{"q", "ctrl+c"}, "quit")

	reg(scopeAddInput, actionConfirm, []string{"enter"}, "add")
	reg(scopeAddInput, actionCancel, []string{"esc"}, "cancel")

	reg(scopeSearchInput, actionConfirm, []string{"enter"}, "apply")
	reg(scopeSearchInput, actionCancel, []string{"esc"}, "clear")

	reg(scopeDetailModal, actionEdit, []string{"e"}, "edit")
	reg(scopeDetailModal, actionDelete, []string{"d"}, "delete")
	reg(scopeDetailModal, actionClose, []string{"esc", "q"}, "close")
	reg(scopeDetailModal, actionQuit, []string{"ctrl+c"}, "")

	reg(scopeDetailEdit, actionSave, []string{"enter"}, "save")
	reg(scopeDetailEdit, actionCancel, []string{"esc"}, "cancel")

	reg(scopeThemePicker, actionConfirm, []string{"enter"}, "apply")
	reg(scopeThemePicker, actionCancel, []string{"esc"}, "close")
	reg(scopeThemePicker, actionQuit, []string{"ctrl+c"}, "")

	return r
}

func (r *KeyRegistry) Register(scope string, b Binding) {
	r.bindingsByScope[scope] = append(r.bindingsByScope[scope], b)
	idx, ok := r.indexByScope[scope]
	if !ok {
		idx = make(map[string]Action)
		r.indexByScope[scope] = idx
	}
	for _, k := range b.Keys {
		idx[k] = b.Action
	}
}

// Lookup resolves a key within a scope.
func (r *KeyRegistry) Lookup(scope, key string) (Action, bool) {
	idx, ok := r.indexByScope[scope]
	if !ok {
		return "", false
	}
	action, ok := idx[key]
	return action, ok
}

// Help returns the scope's bindings that carry help text, in registration
// order.
func (r *KeyRegistry) Help(scope string) []Binding {
	var out []Binding
	for _, b := range r.bindingsByScope[scope] {
		if b.Help == "" {
			continue
		}
		out = append(out, b)
	}
	return out
}

func (a App) isAction(scope string, action Action, msg tea.KeyMsg) bool {
	got, ok := a.keys.Lookup(scope, msg.String())
	return ok && got == action
}
