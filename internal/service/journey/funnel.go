package journey

import (
	"errors"
	"fmt"

	"github.com/dinerozz/product-map-backend/internal/entity"
)

// FunnelDef описание воронки из внешней конфигурации.
type FunnelDef struct {
	Name           string   `json:"funnel_name" yaml:"funnel_name"`
	Type           string   `json:"funnel_type" yaml:"funnel_type"`
	Description    string   `json:"description" yaml:"description"`
	Steps          []string `json:"steps" yaml:"steps"`
	Importance     string   `json:"estimated_importance" yaml:"estimated_importance"`
	TotalSessions  *int     `json:"total_sessions,omitempty" yaml:"total_sessions,omitempty"`
	ConversionRate *float64 `json:"conversion_rate,omitempty" yaml:"conversion_rate,omitempty"`
}

var validTypes = map[entity.JourneyType]bool{
	entity.JourneyConversion: true,
	entity.JourneyEngagement: true,
	entity.JourneyRetention:  true,
}

var validImportance = map[entity.Importance]bool{
	entity.ImportanceCritical: true,
	entity.ImportanceHigh:     true,
	entity.ImportanceMedium:   true,
	entity.ImportanceLow:      true,
}

var ErrNoSteps = errors.New("funnel has no steps")

func (f FunnelDef) Validate() error {
	if !validTypes[entity.JourneyType(f.Type)] {
		return fmt.Errorf("invalid funnel type %q for %q", f.Type, f.Name)
	}

	if !validImportance[entity.Importance(f.Importance)] {
		return fmt.Errorf("invalid importance %q for %q", f.Importance, f.Name)
	}

	if len(f.Steps) == 0 {
		return fmt.Errorf("%q: %w", f.Name, ErrNoSteps)
	}

	if f.ConversionRate != nil && (*f.ConversionRate < 0 || *f.ConversionRate > 1) {
		return fmt.Errorf("conversion rate must be within [0, 1] for %q", f.Name)
	}

	return nil
}

// ValidateAll проверяет все воронки и возвращает первую ошибку с индексом.
func ValidateAll(funnels []FunnelDef) error {
	for i, f := range funnels {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("funnel at index %d: %w", i, err)
		}
	}
	return nil
}
