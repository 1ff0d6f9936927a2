package entity

// VisitEvent одна запись из лога скриншотов: просмотр страницы в рамках сессии.
type VisitEvent struct {
	Filename    string  `json:"filename"`
	URL         string  `json:"url"`
	SessionID   string  `json:"sessionId"`
	DeviceID    string  `json:"deviceId"`
	DeviceType  *string `json:"deviceType"`
	AppID       string  `json:"appId,omitempty"`
	Timestamp   int64   `json:"timestamp"`
	TextContent string  `json:"textContent,omitempty"`
	HTMLFile    string  `json:"htmlFile,omitempty"`
}
