package entity

type JourneyType string

const (
	JourneyConversion JourneyType = "conversion"
	JourneyEngagement JourneyType = "engagement"
	JourneyRetention  JourneyType = "retention"
)

type Importance string

const (
	ImportanceCritical Importance = "critical"
	ImportanceHigh     Importance = "high"
	ImportanceMedium   Importance = "medium"
	ImportanceLow      Importance = "low"
)

type Journey struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Type           JourneyType   `json:"type"`
	Description    string        `json:"description"`
	Steps          []JourneyStep `json:"steps"`
	TotalSessions  *int          `json:"totalSessions,omitempty"`
	ConversionRate *float64      `json:"conversionRate,omitempty"`
	Importance     Importance    `json:"importance"`
}

// JourneyStep шаг воронки. PageID пустой, если страниц нет вовсе.
type JourneyStep struct {
	PageID           string            `json:"pageId"`
	StepNumber       int               `json:"stepNumber"`
	DropOffRate      *float64          `json:"dropOffRate,omitempty"`
	AvgTimeToNext    *float64          `json:"avgTimeToNext,omitempty"`
	ComponentActions []ComponentAction `json:"componentActions,omitempty"`
	PrimaryAction    string            `json:"primaryAction,omitempty"`
}

type ActionType string

const (
	ActionClick  ActionType = "click"
	ActionInput  ActionType = "input"
	ActionScroll ActionType = "scroll"
	ActionHover  ActionType = "hover"
)

type ActionImportance string

const (
	ActionPrimary   ActionImportance = "primary"
	ActionSecondary ActionImportance = "secondary"
	ActionTertiary  ActionImportance = "tertiary"
)

// Position координаты в процентах от размеров скриншота
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ComponentAction struct {
	Selector      string           `json:"selector"`
	Label         string           `json:"label"`
	ActionType    ActionType       `json:"actionType"`
	Position      Position         `json:"position"`
	SequenceOrder int              `json:"sequenceOrder"`
	Importance    ActionImportance `json:"importance"`
}
