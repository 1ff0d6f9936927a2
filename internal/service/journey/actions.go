package journey

import (
	"strings"

	"github.com/dinerozz/product-map-backend/internal/entity"
)

type actionTemplate struct {
	keywords []string
	actions  []entity.ComponentAction
}

func action(selector, label string, actionType entity.ActionType, x, y float64, order int, importance entity.ActionImportance) entity.ComponentAction {
	return entity.ComponentAction{
		Selector:      selector,
		Label:         label,
		ActionType:    actionType,
		Position:      entity.Position{X: x, Y: y},
		SequenceOrder: order,
		Importance:    importance,
	}
}

var actionTemplates = []actionTemplate{
	{
		keywords: []string{"login", "sign in"},
		actions: []entity.ComponentAction{
			action(`input[type="email"]`, "Email Input", entity.ActionInput, 50, 45, 1, entity.ActionPrimary),
			action(`input[type="password"]`, "Password Input", entity.ActionInput, 50, 55, 2, entity.ActionPrimary),
			action(`button[type="submit"]`, "Log In Button", entity.ActionClick, 50, 68, 3, entity.ActionPrimary),
		},
	},
	{
		keywords: []string{"signup", "register"},
		actions: []entity.ComponentAction{
			action(".google-auth-btn", "Sign in with Google", entity.ActionClick, 50, 38, 1, entity.ActionSecondary),
			action(`input[name="email"]`, "Email Field", entity.ActionInput, 50, 50, 2, entity.ActionPrimary),
			action("button.create-account", "Create Account", entity.ActionClick, 50, 70, 3, entity.ActionPrimary),
		},
	},
	{
		keywords: []string{"dashboard", "home"},
		actions: []entity.ComponentAction{
			action(".main-nav", "Navigation Menu", entity.ActionHover, 15, 12, 1, entity.ActionSecondary),
			action(".create-chart-btn", "Create Chart Button", entity.ActionClick, 85, 15, 2, entity.ActionPrimary),
			action(".quick-stats", "View Statistics", entity.ActionClick, 30, 40, 3, entity.ActionTertiary),
		},
	},
	{
		keywords: []string{"chart", "analysis"},
		actions: []entity.ComponentAction{
			action(".chart-type-selector", "Chart Type", entity.ActionClick, 20, 25, 1, entity.ActionPrimary),
			action(".data-source-picker", "Select Data Source", entity.ActionClick, 20, 45, 2, entity.ActionPrimary),
			action(".run-query-btn", "Run Query", entity.ActionClick, 85, 20, 3, entity.ActionPrimary),
			action(".chart-canvas", "View Results", entity.ActionScroll, 60, 60, 4, entity.ActionSecondary),
		},
	},
	{
		keywords: []string{"settings"},
		actions: []entity.ComponentAction{
			action(".settings-nav", "Settings Menu", entity.ActionClick, 25, 30, 1, entity.ActionSecondary),
			action(".profile-section", "Profile Settings", entity.ActionClick, 50, 40, 2, entity.ActionPrimary),
			action(".save-btn", "Save Changes", entity.ActionClick, 70, 75, 3, entity.ActionPrimary),
		},
	},
}

var genericActions = []entity.ComponentAction{
	action(".page-header", "Page Header", entity.ActionHover, 50, 15, 1, entity.ActionTertiary),
	action(".main-content", "Main Content", entity.ActionScroll, 50, 50, 2, entity.ActionSecondary),
	action(".cta-button", "Primary Action", entity.ActionClick, 50, 70, 3, entity.ActionPrimary),
}

// ComponentActionsForStep возвращает типовую последовательность действий для шага.
// Всегда возвращается новый срез.
func ComponentActionsForStep(stepName string) []entity.ComponentAction {
	step := strings.ToLower(stepName)
	for _, tpl := range actionTemplates {
		for _, keyword := range tpl.keywords {
			if strings.Contains(step, keyword) {
				return append([]entity.ComponentAction(nil), tpl.actions...)
			}
		}
	}
	return append([]entity.ComponentAction(nil), genericActions...)
}
