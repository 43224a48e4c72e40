package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/tomate/internal/domain"
)

// Dump is the full JSON export of the store.
type Dump struct {
	ExportedAt    string                 `json:"exported_at"`
	Settings      *domain.Settings       `json:"settings,omitempty"`
	Tasks         []*domain.Task         `json:"tasks"`
	Sessions      []*domain.Session      `json:"sessions"`
	PauseCards    []*domain.PauseCard    `json:"pause_cards"`
	PauseCardUses []*domain.PauseCardUse `json:"pause_card_uses"`
	DailyState    []*domain.DailyState   `json:"daily_states,omitempty"`
}

// WriteJSON marshals the dump with indentation and writes it to path.
func WriteJSON(path string, d Dump) error {
	if d.ExportedAt == "" {
		d.ExportedAt = time.Now().UTC().Format(time.RFC3339)
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}
