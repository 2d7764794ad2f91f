// Package profile is the edit buffer behind the profile modal
package profile

import (
	"strings"

	"github.com/haryoiro/ytfront/internal/store"
	"github.com/haryoiro/ytfront/internal/structures"
)

// Field identifies one editable profile field
type Field int

const (
	Name Field = iota
	Email
	About
	Avatar
	fieldCount
)

func (f Field) String() string {
	switch f {
	case Name:
		return "Name"
	case Email:
		return "Email"
	case About:
		return "About"
	case Avatar:
		return "Avatar"
	default:
		return "Unknown"
	}
}

// Fields lists the fields in tab order
var Fields = []Field{Name, Email, About, Avatar}

// Editor holds an uncommitted copy of the user profile
type Editor struct {
	store  *store.Store
	values [fieldCount][]rune
	focus  Field
	open   bool
}

// New creates a closed editor that saves to st
func New(st *store.Store) *Editor {
	return &Editor{store: st}
}

// Begin opens the editor with a copy of user
func (e *Editor) Begin(user structures.User) {
	e.values[Name] = []rune(user.Name)
	e.values[Email] = []rune(user.Email)
	e.values[About] = []rune(user.About)
	e.values[Avatar] = []rune(user.Avatar)
	e.focus = Name
	e.open = true
}

func (e *Editor) IsOpen() bool { return e.open }

// Field returns the buffered value of f
func (e *Editor) Field(f Field) string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return string(e.values[f])
}

// Focus returns the field receiving input
func (e *Editor) Focus() Field { return e.focus }

func (e *Editor) NextField() { e.focus = (e.focus + 1) % fieldCount }
func (e *Editor) PrevField() { e.focus = (e.focus + fieldCount - 1) % fieldCount }

// Type appends runes to the focused field
func (e *Editor) Type(r []rune) {
	if !e.open {
		return
	}
	e.values[e.focus] = append(e.values[e.focus], r...)
}

// Backspace removes the last rune of the focused field
func (e *Editor) Backspace() {
	if !e.open {
		return
	}
	if v := e.values[e.focus]; len(v) > 0 {
		e.values[e.focus] = v[:len(v)-1]
	}
}

// Save trims every field, persists the result as the new user and closes
// the editor. The caller replaces its user with the returned value.
func (e *Editor) Save() structures.User {
	user := structures.User{
		Name:   strings.TrimSpace(e.Field(Name)),
		Email:  strings.TrimSpace(e.Field(Email)),
		About:  strings.TrimSpace(e.Field(About)),
		Avatar: strings.TrimSpace(e.Field(Avatar)),
	}
	e.store.Set(store.UserKey, user)
	e.close()
	return user
}

// Cancel discards the buffer
func (e *Editor) Cancel() {
	e.close()
}

func (e *Editor) close() {
	e.open = false
	e.focus = Name
	for i := range e.values {
		e.values[i] = nil
	}
}
