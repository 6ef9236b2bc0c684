// Package view owns the per-visitor display state: the active language and
// whether the admin dashboard replaces the public site.
package view

import (
	"errors"
	"strings"
	"sync"

	"colloque/internal/domain/i18n"
)

// Tree identifies which component tree is rendered.
type Tree int

const (
	TreePublic Tree = iota
	TreeAdmin
)

func (t Tree) String() string {
	if t == TreeAdmin {
		return "admin"
	}
	return "public"
}

// AdminEntry selects how a visitor reaches the admin view.
type AdminEntry string

const (
	// EntryButton shows a low-emphasis admin control on the public site.
	EntryButton AdminEntry = "button"
	// EntrySequence hides the control; typing the secret word is the only way in.
	EntrySequence AdminEntry = "sequence"
)

// ErrInvalidEntry is returned by ParseAdminEntry.
var ErrInvalidEntry = errors.New("admin entry must be 'button' or 'sequence'")

// ParseAdminEntry parses a configured entry mode.
func ParseAdminEntry(s string) (AdminEntry, error) {
	switch AdminEntry(strings.ToLower(strings.TrimSpace(s))) {
	case EntryButton:
		return EntryButton, nil
	case EntrySequence:
		return EntrySequence, nil
	}
	return "", ErrInvalidEntry
}

// State is an immutable snapshot handed to renderers.
type State struct {
	Lang         i18n.Lang
	AdminVisible bool
	Entry        AdminEntry
}

// Tree returns the tree this state renders.
func (s State) Tree() Tree {
	if s.AdminVisible {
		return TreeAdmin
	}
	return TreePublic
}

// Controller is the single owner of Language and AdminVisible for one page
// session. Handlers for the same session may run concurrently, so every
// accessor takes the lock.
type Controller struct {
	mu    sync.Mutex
	lang  i18n.Lang
	admin bool
	entry AdminEntry
}

// NewController starts a page session in lang with the admin view hidden.
// An unsupported lang falls back to i18n.Default.
func NewController(lang i18n.Lang, entry AdminEntry) *Controller {
	if !lang.Valid() {
		lang = i18n.Default
	}
	if entry != EntrySequence {
		entry = EntryButton
	}
	return &Controller{lang: lang, entry: entry}
}

// SelectLanguage switches the language of every rendered section.
// PRE: lang is fr or en; anything else leaves the state untouched
// POST: only Language changed
func (c *Controller) SelectLanguage(lang i18n.Lang) {
	if !lang.Valid() {
		return
	}
	c.mu.Lock()
	c.lang = lang
	c.mu.Unlock()
}

// EnterAdmin swaps the public site for the admin dashboard.
func (c *Controller) EnterAdmin() {
	c.mu.Lock()
	c.admin = true
	c.mu.Unlock()
}

// ExitAdmin swaps back to the public site.
func (c *Controller) ExitAdmin() {
	c.mu.Lock()
	c.admin = false
	c.mu.Unlock()
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{Lang: c.lang, AdminVisible: c.admin, Entry: c.entry}
}

// Tree returns the tree to render right now.
func (c *Controller) Tree() Tree {
	return c.Snapshot().Tree()
}
