package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrUnknownAction is returned when a key binding names an action that does not exist.
const ErrUnknownAction = constError("unknown key action")

// Key strings that are handled directly rather than through KeyMap.
const (
	keyEsc       = "esc"
	keyBackspace = "backspace"
)

// Action names used in the keys section of the configuration.
const (
	ActionUp             = "up"
	ActionDown           = "down"
	ActionPageUp         = "page_up"
	ActionPageDown       = "page_down"
	ActionHome           = "home"
	ActionEnd            = "end"
	ActionExtendUp       = "extend_up"
	ActionExtendDown     = "extend_down"
	ActionExtendPageUp   = "extend_page_up"
	ActionExtendPageDown = "extend_page_down"
	ActionExtendHome     = "extend_home"
	ActionExtendEnd      = "extend_end"
	ActionToggle         = "toggle"
	ActionSelectAll      = "select_all"
	ActionUnselectAll    = "unselect_all"
	ActionInvert         = "invert"
	ActionSwitchPane     = "switch_pane"
	ActionConfirm        = "confirm"
	ActionCancel         = "cancel"
	ActionCopy           = "copy"
)

// KeyMap binds keys to picker actions.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	ExtendUp       key.Binding
	ExtendDown     key.Binding
	ExtendPageUp   key.Binding
	ExtendPageDown key.Binding
	ExtendHome     key.Binding
	ExtendEnd      key.Binding

	Toggle      key.Binding
	SelectAll   key.Binding
	UnselectAll key.Binding
	Invert      key.Binding

	SwitchPane key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Copy       key.Binding
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
		Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),

		ExtendUp:   key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "extend up")),
		ExtendDown: key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "extend down")),
		// Terminals do not report shift+pgup, so paging extends with ctrl.
		ExtendPageUp:   key.NewBinding(key.WithKeys("ctrl+pgup"), key.WithHelp("ctrl+pgup", "extend page up")),
		ExtendPageDown: key.NewBinding(key.WithKeys("ctrl+pgdown"), key.WithHelp("ctrl+pgdn", "extend page down")),
		ExtendHome:     key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "extend to first")),
		ExtendEnd:      key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "extend to last")),

		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		UnselectAll: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "unselect all")),
		Invert:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "invert")),

		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "cancel")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	}
}

// actions maps each action name to its binding.
func (k *KeyMap) actions() map[string]*key.Binding {
	return map[string]*key.Binding{
		ActionUp:             &k.Up,
		ActionDown:           &k.Down,
		ActionPageUp:         &k.PageUp,
		ActionPageDown:       &k.PageDown,
		ActionHome:           &k.Home,
		ActionEnd:            &k.End,
		ActionExtendUp:       &k.ExtendUp,
		ActionExtendDown:     &k.ExtendDown,
		ActionExtendPageUp:   &k.ExtendPageUp,
		ActionExtendPageDown: &k.ExtendPageDown,
		ActionExtendHome:     &k.ExtendHome,
		ActionExtendEnd:      &k.ExtendEnd,
		ActionToggle:         &k.Toggle,
		ActionSelectAll:      &k.SelectAll,
		ActionUnselectAll:    &k.UnselectAll,
		ActionInvert:         &k.Invert,
		ActionSwitchPane:     &k.SwitchPane,
		ActionConfirm:        &k.Confirm,
		ActionCancel:         &k.Cancel,
		ActionCopy:           &k.Copy,
	}
}

// Actions lists the bindable action names in sorted order.
func Actions() []string {
	km := DefaultKeyMap()
	names := make([]string, 0, len(km.actions()))
	for name := range km.actions() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KeyMapFromConfig starts from the defaults and replaces the keys of every
// action named in bindings.
func KeyMapFromConfig(bindings map[string][]string) (KeyMap, error) {
	km := DefaultKeyMap()
	actions := km.actions()
	for name, keys := range bindings {
		b, ok := actions[strings.ToLower(name)]
		if !ok {
			return KeyMap{}, fmt.Errorf("%w %q (expected one of %s)", ErrUnknownAction, name, strings.Join(Actions(), ", "))
		}
		if len(keys) == 0 {
			return KeyMap{}, fmt.Errorf("action %q: at least one key is required", name)
		}
		b.SetKeys(keys...)
	}
	return km, nil
}
