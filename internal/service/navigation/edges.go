package navigation

import (
	"slices"
	"sort"

	"github.com/dinerozz/product-map-backend/internal/entity"
	"github.com/dinerozz/product-map-backend/internal/service/page"
)

const edgeKeySeparator = "→"

type edgeAccumulator struct {
	source   string
	target   string
	sessions map[string]struct{}
}

// EdgeID ключ ребра для упорядоченной пары страниц
func EdgeID(source, target string) string {
	return source + edgeKeySeparator + target
}

// BuildEdges строит направленный граф переходов между страницами.
// Каждая сессия учитывается в ребре не больше одного раза, петли не создаются.
func BuildEdges(events []entity.VisitEvent) []entity.Edge {
	sessionOrder := make([]string, 0)
	sessions := make(map[string][]entity.VisitEvent)

	for _, event := range events {
		if _, ok := sessions[event.SessionID]; !ok {
			sessionOrder = append(sessionOrder, event.SessionID)
		}
		sessions[event.SessionID] = append(sessions[event.SessionID], event)
	}

	edgeOrder := make([]string, 0)
	accumulators := make(map[string]*edgeAccumulator)

	for _, sessionID := range sessionOrder {
		sorted := sessions[sessionID]
		sort.SliceStable(sorted, func(a, b int) bool {
			return sorted[a].Timestamp < sorted[b].Timestamp
		})

		for i := 0; i+1 < len(sorted); i++ {
			source := page.ExtractURLPattern(sorted[i].URL)
			target := page.ExtractURLPattern(sorted[i+1].URL)
			if source == target {
				continue
			}

			key := EdgeID(source, target)
			acc, ok := accumulators[key]
			if !ok {
				acc = &edgeAccumulator{
					source:   source,
					target:   target,
					sessions: make(map[string]struct{}),
				}
				accumulators[key] = acc
				edgeOrder = append(edgeOrder, key)
			}
			acc.sessions[sessionID] = struct{}{}
		}
	}

	edges := make([]entity.Edge, 0, len(edgeOrder))
	for _, key := range edgeOrder {
		acc := accumulators[key]
		edges = append(edges, entity.Edge{
			ID:         key,
			Source:     acc.source,
			Target:     acc.target,
			Sessions:   len(acc.sessions),
			JourneyIDs: []string{},
		})
	}

	sort.SliceStable(edges, func(a, b int) bool {
		return edges[a].Sessions > edges[b].Sessions
	})

	return edges
}

// AttachJourneys отмечает на рёбрах воронки, которые по ним проходят.
// Исходный срез не меняется.
func AttachJourneys(edges []entity.Edge, journeys []entity.Journey) []entity.Edge {
	index := make(map[string]int, len(edges))
	result := make([]entity.Edge, len(edges))
	for i, edge := range edges {
		edge.JourneyIDs = append([]string{}, edge.JourneyIDs...)
		result[i] = edge
		index[edge.ID] = i
	}

	for _, journey := range journeys {
		for i := 0; i+1 < len(journey.Steps); i++ {
			from, to := journey.Steps[i].PageID, journey.Steps[i+1].PageID
			if from == "" || to == "" || from == to {
				continue
			}

			j, ok := index[EdgeID(from, to)]
			if !ok || slices.Contains(result[j].JourneyIDs, journey.ID) {
				continue
			}
			result[j].JourneyIDs = append(result[j].JourneyIDs, journey.ID)
		}
	}

	return result
}
