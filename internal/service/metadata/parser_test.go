package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `# filename | url | session_id | device_id | device_type | app_id | timestamp
shot_001.png | https://app.example.com/login | s1 | d1 | desktop | app1 | 100
shot_002.png | https://app.example.com/home | s1 | d1 | None | app1 | 200

shot_003.png | https://app.example.com/dashboard | s2 | d2 | mobile | app1 | 300
`

func TestParse_WellFormedLog(t *testing.T) {
	events := Parse(sampleLog)
	require.Len(t, events, 3)

	first := events[0]
	assert.Equal(t, "shot_001.png", first.Filename)
	assert.Equal(t, "https://app.example.com/login", first.URL)
	assert.Equal(t, "s1", first.SessionID)
	assert.Equal(t, "d1", first.DeviceID)
	require.NotNil(t, first.DeviceType)
	assert.Equal(t, "desktop", *first.DeviceType)
	assert.Equal(t, "app1", first.AppID)
	assert.Equal(t, int64(100), first.Timestamp)
	assert.Equal(t, "shot_001_text.txt", first.TextContent)
	assert.Equal(t, "shot_001.html", first.HTMLFile)
}

func TestParse_NoneDeviceTypeIsAbsent(t *testing.T) {
	events := Parse(sampleLog)
	require.Len(t, events, 3)
	assert.Nil(t, events[1].DeviceType)
}

func TestParse_EmptyDeviceTypeIsNotAbsent(t *testing.T) {
	events := Parse("a.png | https://x.com/a | s1 | d1 |  | app | 1")
	require.Len(t, events, 1)
	require.NotNil(t, events[0].DeviceType)
	assert.Equal(t, "", *events[0].DeviceType)
}

func TestParse_MalformedLineSkipped(t *testing.T) {
	raw := "a.png | https://x.com/a | s1 | d1 | None | app | 1\n" +
		"b.png | https://x.com/b | s1\n" +
		"c.png | https://x.com/c | s1 | d1 | None | app | 3\n"

	events, stats := ParseWithReport(raw)
	require.Len(t, events, 2)
	assert.Equal(t, "a.png", events[0].Filename)
	assert.Equal(t, "c.png", events[1].Filename)
	assert.Equal(t, 1, stats.Malformed)
	assert.Equal(t, 2, stats.Events)
}

func TestParse_NonImageRecordsDropped(t *testing.T) {
	raw := "page.html | https://x.com/a | s1 | d1 | None | app | 1\n" +
		"shot.png | https://x.com/b | s1 | d1 | None | app | 2"

	events, stats := ParseWithReport(raw)
	require.Len(t, events, 1)
	assert.Equal(t, "shot.png", events[0].Filename)
	assert.Equal(t, 1, stats.NonImage)
}

func TestParse_NonNumericTimestampSkipsLine(t *testing.T) {
	raw := "a.png | https://x.com/a | s1 | d1 | None | app | yesterday\n" +
		"b.png | https://x.com/b | s1 | d1 | None | app | 12abc\n" +
		"c.png | https://x.com/c | s1 | d1 | None | app | 42"

	events, stats := ParseWithReport(raw)
	require.Len(t, events, 1)
	assert.Equal(t, int64(42), events[0].Timestamp)
	assert.Equal(t, 2, stats.BadTimestamps)
}

func TestParse_ExtraFieldsIgnored(t *testing.T) {
	events := Parse("a.png | https://x.com/a | s1 | d1 | None | app | 5 | trailing | junk")
	require.Len(t, events, 1)
	assert.Equal(t, int64(5), events[0].Timestamp)
}

func TestParse_TrimsFieldsAndCarriageReturns(t *testing.T) {
	events := Parse("  a.png |  https://x.com/a  | s1 | d1 | tablet | app | 7\r\n")
	require.Len(t, events, 1)
	assert.Equal(t, "a.png", events[0].Filename)
	assert.Equal(t, "https://x.com/a", events[0].URL)
	assert.Equal(t, int64(7), events[0].Timestamp)
}

func TestParse_EmptyInput(t *testing.T) {
	events, stats := ParseWithReport("")
	assert.NotNil(t, events)
	assert.Empty(t, events)
	assert.Equal(t, 1, stats.Skipped)
}

func TestParse_ReportCountsEveryLine(t *testing.T) {
	_, stats := ParseWithReport(sampleLog)
	// комментарий, пустая строка и хвостовой перевод строки
	assert.Equal(t, 3, stats.Skipped)
	assert.Equal(t, 6, stats.TotalLines)
	assert.Equal(t, 3, stats.Events)
}
