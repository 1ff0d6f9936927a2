package metadata

import (
	"strconv"
	"strings"

	"github.com/dinerozz/product-map-backend/internal/entity"
)

const (
	fieldDelimiter  = " | "
	requiredFields  = 7
	commentPrefix   = "#"
	imageExtension  = ".png"
	noneDeviceType  = "None"
	textContentTail = "_text.txt"
	htmlFileTail    = ".html"
)

// Parse разбирает metadata лог вида
// filename | url | sessionId | deviceId | deviceType | appId | timestamp.
// Битые строки пропускаются.
func Parse(raw string) []entity.VisitEvent {
	events, _ := ParseWithReport(raw)
	return events
}

// ParseWithReport то же, что Parse, но дополнительно считает пропущенные строки по причинам.
func ParseWithReport(raw string) ([]entity.VisitEvent, entity.ParseStats) {
	var stats entity.ParseStats
	events := make([]entity.VisitEvent, 0)

	for _, line := range strings.Split(raw, "\n") {
		stats.TotalLines++

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
			stats.Skipped++
			continue
		}

		parts := strings.Split(line, fieldDelimiter)
		if len(parts) < requiredFields {
			stats.Malformed++
			continue
		}

		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		filename := parts[0]
		if !strings.HasSuffix(filename, imageExtension) {
			stats.NonImage++
			continue
		}

		// нечисловой timestamp делает строку невалидной, как и нехватка полей
		timestamp, err := strconv.ParseInt(parts[6], 10, 64)
		if err != nil {
			stats.BadTimestamps++
			continue
		}

		stem := strings.TrimSuffix(filename, imageExtension)
		events = append(events, entity.VisitEvent{
			Filename:    filename,
			URL:         parts[1],
			SessionID:   parts[2],
			DeviceID:    parts[3],
			DeviceType:  deviceType(parts[4]),
			AppID:       parts[5],
			Timestamp:   timestamp,
			TextContent: stem + textContentTail,
			HTMLFile:    stem + htmlFileTail,
		})
	}

	stats.Events = len(events)
	return events, stats
}

func deviceType(value string) *string {
	if value == noneDeviceType {
		return nil
	}
	return &value
}
