package vim

import (
	"sync"
	"unicode"
)

// Register is a named storage location for yanked or deleted text.
type Register struct {
	// Content holds the register's text.
	Content string

	// Linewise indicates the content is line-oriented: it was captured by a
	// linewise operation and pastes as whole lines.
	Linewise bool
}

// ClipboardProvider abstracts system clipboard access for the + and *
// registers.
type ClipboardProvider interface {
	// Get returns the current clipboard content.
	Get() (string, error)

	// Set replaces the clipboard content.
	Set(content string) error
}

// RegisterStore manages the register file. Safe for concurrent use.
type RegisterStore struct {
	mu        sync.RWMutex
	registers map[rune]Register
	clipboard ClipboardProvider
}

// NewRegisterStore creates an empty register store.
func NewRegisterStore() *RegisterStore {
	return &RegisterStore{
		registers: make(map[rune]Register),
	}
}

// SetClipboard installs a provider for the + and * registers. Without one
// those registers behave like ordinary named registers.
func (rs *RegisterStore) SetClipboard(clipboard ClipboardProvider) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.clipboard = clipboard
}

// Get returns the content and linewise flag of a register. Unset registers
// read as empty. Uppercase names read the same content as their lowercase
// counterparts.
func (rs *RegisterStore) Get(name rune) (string, bool) {
	if unicode.IsUpper(name) {
		name = unicode.ToLower(name)
	}

	if name == '+' || name == '*' {
		rs.mu.RLock()
		clipboard := rs.clipboard
		rs.mu.RUnlock()

		if clipboard != nil {
			content, err := clipboard.Get()
			if err != nil {
				return "", false
			}
			return content, false
		}
	}

	rs.mu.RLock()
	defer rs.mu.RUnlock()
	reg := rs.registers[name]
	return reg.Content, reg.Linewise
}

// Set stores content in a register. The black hole register discards the
// write. Uppercase names append to their lowercase counterpart, inserting a
// newline first when the register holds linewise content.
func (rs *RegisterStore) Set(name rune, content string, linewise bool) {
	if name == '_' {
		return
	}

	if name == '+' || name == '*' {
		rs.mu.RLock()
		clipboard := rs.clipboard
		rs.mu.RUnlock()

		if clipboard != nil {
			_ = clipboard.Set(content)
			return
		}
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	appendMode := false
	if unicode.IsUpper(name) {
		name = unicode.ToLower(name)
		appendMode = true
	}

	reg := rs.registers[name]
	if appendMode {
		if reg.Linewise {
			reg.Content += "\n" + content
		} else {
			reg.Content += content
		}
	} else {
		reg.Content = content
		reg.Linewise = linewise
	}
	rs.registers[name] = reg
}

// Unnamed is the default register name.
const Unnamed = '"'

// IsValidName reports whether a rune names a register.
func IsValidName(name rune) bool {
	switch {
	case name == Unnamed:
		return true
	case name >= 'a' && name <= 'z':
		return true
	case name >= 'A' && name <= 'Z':
		return true
	case name >= '0' && name <= '9':
		return true
	case name == '_', name == '+', name == '*':
		return true
	default:
		return false
	}
}
