package page

import (
	"sort"

	"github.com/dinerozz/product-map-backend/internal/entity"
)

// Aggregate группирует события по идентичности страницы и считает статистику.
// Страницы возвращаются по убыванию числа сессий, при равенстве в порядке первого появления.
func Aggregate(events []entity.VisitEvent) []entity.PageNode {
	index := make(map[string]int)
	pages := make([]entity.PageNode, 0)

	for _, event := range events {
		pattern := ExtractURLPattern(event.URL)

		i, ok := index[pattern]
		if !ok {
			i = len(pages)
			index[pattern] = i
			pages = append(pages, entity.PageNode{
				ID:          pattern,
				URL:         event.URL,
				URLPattern:  pattern,
				PageType:    ClassifyPageType(event.URL),
				Title:       ExtractPageTitle(event.URL),
				Screenshots: make([]entity.VisitEvent, 0),
			})
		}

		pages[i].Screenshots = append(pages[i].Screenshots, event)
	}

	for i := range pages {
		pages[i].Sessions, pages[i].UniqueUsers = countDistinct(pages[i].Screenshots)
	}

	sort.SliceStable(pages, func(a, b int) bool {
		return pages[a].Sessions > pages[b].Sessions
	})

	return pages
}

func countDistinct(events []entity.VisitEvent) (sessions, users int) {
	sessionSet := make(map[string]struct{}, len(events))
	userSet := make(map[string]struct{}, len(events))

	for _, event := range events {
		sessionSet[event.SessionID] = struct{}{}
		userSet[event.DeviceID] = struct{}{}
	}

	return len(sessionSet), len(userSet)
}
