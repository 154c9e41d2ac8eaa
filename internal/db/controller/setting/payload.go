package setting

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/sitesettings/sitesettings/internal/db/models"
	"github.com/sitesettings/sitesettings/internal/settings"
)

// encodePayload converts a JSON compatible value into the stored representation.
// A nil payload is stored as SQL NULL.
func encodePayload(payload any) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode setting payload: %w", err)
	}

	return data, nil
}

// Payload decodes the stored payload of a setting into a JSON tree
// (nil, bool, float64, string, []any or map[string]any).
func Payload(s models.Setting) (any, error) {
	if len(s.Payload) == 0 {
		return nil, nil
	}

	var out any
	if err := json.Unmarshal(s.Payload, &out); err != nil {
		return nil, fmt.Errorf("decode payload of setting %q: %w", s.Name, err)
	}

	return out, nil
}

// Payloads decodes every setting of a loaded group.
func Payloads(rows map[settings.Name]models.Setting) (map[settings.Name]any, error) {
	out := make(map[settings.Name]any, len(rows))

	for name, row := range rows {
		v, err := Payload(row)
		if err != nil {
			return nil, err
		}

		out[name] = v
	}

	return out, nil
}

// LoadPayloads loads the owner's group and fills every missing field with its default.
func LoadPayloads(db *gorm.DB, ownerID uint64, group settings.Group) (map[settings.Name]any, error) {
	rows, err := LoadGroup(db, ownerID, group)
	if err != nil {
		return nil, err
	}

	values, err := Payloads(rows)
	if err != nil {
		return nil, err
	}

	return settings.Defaults(group, values)
}
