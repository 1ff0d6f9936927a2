package journey

import (
	"strconv"
	"strings"

	"github.com/dinerozz/product-map-backend/internal/entity"
)

const journeyIDPrefix = "journey-"

// ключевые слова, по которым шаг воронки сопоставляется с заголовком страницы
var stepKeywords = []string{"login", "signup", "home", "dashboard", "chart"}

// MapFunnelsToJourneys накладывает воронки на страницы.
// Страницы перебираются в переданном порядке, побеждает первое совпадение.
// Без совпадения берётся страница pages[i % len(pages)].
func MapFunnelsToJourneys(funnels []FunnelDef, pages []entity.PageNode) []entity.Journey {
	journeys := make([]entity.Journey, 0, len(funnels))

	for index, funnel := range funnels {
		steps := make([]entity.JourneyStep, 0, len(funnel.Steps))

		for stepIndex, stepName := range funnel.Steps {
			actions := ComponentActionsForStep(stepName)

			primary := stepName
			if len(actions) > 0 {
				primary = actions[0].Label
			}

			steps = append(steps, entity.JourneyStep{
				PageID:           matchPage(stepName, stepIndex, pages),
				StepNumber:       stepIndex + 1,
				ComponentActions: actions,
				PrimaryAction:    primary,
			})
		}

		journeys = append(journeys, entity.Journey{
			ID:             journeyIDPrefix + strconv.Itoa(index),
			Name:           funnel.Name,
			Type:           entity.JourneyType(funnel.Type),
			Description:    funnel.Description,
			Steps:          steps,
			TotalSessions:  funnel.TotalSessions,
			ConversionRate: funnel.ConversionRate,
			Importance:     entity.Importance(funnel.Importance),
		})
	}

	return journeys
}

func matchPage(stepName string, stepIndex int, pages []entity.PageNode) string {
	if len(pages) == 0 {
		return ""
	}

	step := strings.ToLower(stepName)
	for _, p := range pages {
		title := strings.ToLower(p.Title)
		for _, keyword := range stepKeywords {
			if strings.Contains(step, keyword) && strings.Contains(title, keyword) {
				return p.ID
			}
		}
	}

	return pages[stepIndex%len(pages)].ID
}
