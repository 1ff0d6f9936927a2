package page

import "strings"

type rule struct {
	substring string
	label     string
}

// порядок важен: побеждает первое совпадение
var pageTypeRules = []rule{
	{"/login", "Login"},
	{"/signup", "Signup"},
	{"/home", "Home"},
	{"/dashboard", "Dashboard"},
	{"/chart", "Analysis"},
	{"/users", "User List"},
	{"/settings", "Settings"},
	{"/live-events", "Live Events"},
	{"/space", "Content"},
	{"/session-replay", "Session Replay"},
}

var titleRules = []rule{
	{"/login", "Login"},
	{"/home", "Home"},
	{"/dashboard", "Dashboard"},
	{"/chart", "Chart Builder"},
}

const (
	otherPageType = "Other"
	unknownTitle  = "Unknown Page"
)

var titleSeparators = strings.NewReplacer("-", " ", "_", " ")

// ClassifyPageType грубо определяет тип страницы по подстроке URL.
func ClassifyPageType(rawURL string) string {
	for _, r := range pageTypeRules {
		if strings.Contains(rawURL, r.substring) {
			return r.label
		}
	}
	return otherPageType
}

// ExtractPageTitle строит читаемое название страницы по пути URL.
func ExtractPageTitle(rawURL string) string {
	u, ok := parseAbsolute(rawURL)
	if !ok {
		return unknownTitle
	}

	path := u.Path
	for _, r := range titleRules {
		if strings.Contains(path, r.substring) {
			return r.label
		}
	}

	var last string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			last = segment
		}
	}
	if last == "" {
		return unknownTitle
	}

	return titleSeparators.Replace(last)
}
