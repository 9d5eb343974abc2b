package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	return osFromGOOS(runtime.GOOS)
}

func osFromGOOS(goos string) OSType {
	switch goos {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	return s.For(GetOS())
}

// For returns the shortcut for the given OS.
func (s ShortcutKey) For(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Shortcuts contains the settings screen's keyboard shortcuts
var Shortcuts = struct {
	// Forms
	Save       ShortcutKey
	DeleteNode ShortcutKey

	// Lists
	New           ShortcutKey
	Edit          ShortcutKey
	Delete        ShortcutKey
	Copy          ShortcutKey
	Filter        ShortcutKey
	TogglePrivate ShortcutKey
	ResetData     ShortcutKey

	// System
	Quit    ShortcutKey
	Cancel  ShortcutKey
	Confirm ShortcutKey
}{
	Save: ShortcutKey{
		Mac:     "ctrl+s",
		Linux:   "alt+s", // Avoid Ctrl+S terminal conflict (XOFF)
		Windows: "alt+s",
		Default: "ctrl+s",
	},
	DeleteNode: ShortcutKey{
		Mac:     "ctrl+d",
		Linux:   "alt+d", // Avoid Ctrl+D EOF signal
		Windows: "alt+d",
		Default: "ctrl+d",
	},

	New: ShortcutKey{
		Default: "n",
	},
	Edit: ShortcutKey{
		Default: "e",
	},
	Delete: ShortcutKey{
		Default: "d",
	},
	Copy: ShortcutKey{
		Default: "c",
	},
	Filter: ShortcutKey{
		Default: "/",
	},
	TogglePrivate: ShortcutKey{
		Default: " ",
	},
	ResetData: ShortcutKey{
		Default: "R",
	},

	Quit: ShortcutKey{
		Default: "ctrl+c",
	},
	Cancel: ShortcutKey{
		Default: "esc",
	},
	Confirm: ShortcutKey{
		Default: "enter",
	},
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(key ShortcutKey) string {
	return formatShortcut(key.Get(), GetOS())
}

func formatShortcut(shortcut string, os OSType) string {
	// Use M- prefix for Alt on Linux/Windows (common terminal convention)
	if os == OSLinux || os == OSWindows {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")

	if shortcut == " " {
		return "space"
	}
	return shortcut
}
