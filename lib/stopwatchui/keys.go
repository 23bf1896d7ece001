// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stopwatchui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the stopwatch viewer.
type KeyMap struct {
	Quit     key.Binding
	Add      key.Binding
	Remove   key.Binding
	Next     key.Binding
	Previous key.Binding
	Label    key.Binding
	Help     key.Binding
	Faster   key.Binding // Shorter refresh interval.
	Slower   key.Binding // Longer refresh interval.

	// Label input.
	Submit key.Binding
	Cancel key.Binding

	// Quit confirmation.
	Confirm key.Binding
	Deny    key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("ctrl + q", "Quit"),
	),
	Add: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl + a", "Add timer (max 8)"),
	),
	Remove: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl + d", "Delete selected timer"),
	),
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next timer"),
	),
	Previous: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "Previous timer"),
	),
	Label: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "Set label for timer"),
	),
	Help: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "Toggle help"),
	),
	Faster: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑/↓", "Increase/Decrease UI FPS"),
	),
	Slower: key.NewBinding(
		key.WithKeys("down"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Cancel input"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
	),
	Deny: key.NewBinding(
		key.WithKeys("n", "N"),
	),
}

// helpBindings lists the bindings shown in the help panel, in order.
func (keys KeyMap) helpBindings() []key.Binding {
	return []key.Binding{
		keys.Quit,
		keys.Add,
		keys.Remove,
		keys.Next,
		keys.Previous,
		keys.Label,
		keys.Help,
		keys.Faster,
		keys.Cancel,
	}
}
