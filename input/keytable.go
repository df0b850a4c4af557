package input

import "github.com/gdamore/tcell/v2"

// Intent is a non-role action carried by a key
type Intent uint8

const (
	IntentNone Intent = iota
	IntentRole
	IntentQuit
	IntentToggleMute
)

// KeyTable maps terminal keys to roles and intents
type KeyTable struct {
	SpecialKeys map[tcell.Key]Role
	Runes       map[rune]Role
	QuitKeys    map[tcell.Key]bool
	QuitRunes   map[rune]bool
	MuteRunes   map[rune]bool
}

// DefaultKeyTable returns arrows for movement and wasd for firing
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Role{
			tcell.KeyUp:    RoleUp,
			tcell.KeyDown:  RoleDown,
			tcell.KeyLeft:  RoleLeft,
			tcell.KeyRight: RoleRight,
		},
		Runes: map[rune]Role{
			'w': RoleFireUp, 'W': RoleFireUp,
			'a': RoleFireLeft, 'A': RoleFireLeft,
			's': RoleFireDown, 'S': RoleFireDown,
			'd': RoleFireRight, 'D': RoleFireRight,
		},
		QuitKeys: map[tcell.Key]bool{
			tcell.KeyEscape: true,
			tcell.KeyCtrlC:  true,
			tcell.KeyCtrlQ:  true,
		},
		QuitRunes: map[rune]bool{'q': true, 'Q': true},
		MuteRunes: map[rune]bool{'m': true, 'M': true},
	}
}

// Lookup classifies a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Intent, Role) {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if role, ok := kt.Runes[r]; ok {
			return IntentRole, role
		}
		if kt.QuitRunes[r] {
			return IntentQuit, 0
		}
		if kt.MuteRunes[r] {
			return IntentToggleMute, 0
		}
		return IntentNone, 0
	}
	if role, ok := kt.SpecialKeys[ev.Key()]; ok {
		return IntentRole, role
	}
	if kt.QuitKeys[ev.Key()] {
		return IntentQuit, 0
	}
	return IntentNone, 0
}
