package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/windlab/sailforce/internal/config"
)

func TestEscCancelsEditing(t *testing.T) {
	m := NewApp(config.DefaultConfig(), nil)

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if !next.editing {
		t.Fatal("expected enter to start editing")
	}

	next, _ = next.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if next.editing {
		t.Error("expected esc to cancel editing")
	}
	if next.editBuf != "" {
		t.Errorf("expected empty edit buffer, got %q", next.editBuf)
	}
}

func TestEscCancelsNaming(t *testing.T) {
	m := NewApp(config.DefaultConfig(), nil)

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if !next.naming {
		t.Fatal("expected s to start naming")
	}

	next, _ = next.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if next.nameBuf != "a" {
		t.Fatalf("expected name buffer %q, got %q", "a", next.nameBuf)
	}

	next, _ = next.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if next.naming {
		t.Error("expected esc to cancel naming")
	}
	if next.nameBuf != "" {
		t.Errorf("expected empty name buffer, got %q", next.nameBuf)
	}
}
