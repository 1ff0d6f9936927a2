package page

import (
	"net"
	"net/url"
	"regexp"
	"strings"
)

const idPlaceholder = ":id"

var (
	chartPattern     = regexp.MustCompile(`/[^/]+/chart/[^/]+`)
	dashboardPattern = regexp.MustCompile(`/[^/]+/dashboard/[^/]+`)
	hexSegment       = regexp.MustCompile(`^[a-f0-9]{8,}$`)
	numericSegment   = regexp.MustCompile(`^[0-9]{5,}$`)
)

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// ExtractURLPattern возвращает идентичность страницы: origin + путь, в котором
// изменяемые сегменты (id графиков и дашбордов, hex и числовые id) заменены плейсхолдерами.
// Если URL не разбирается как абсолютный, он возвращается как есть.
func ExtractURLPattern(rawURL string) string {
	u, ok := parseAbsolute(rawURL)
	if !ok {
		return rawURL
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}

	// правила для сущностей применяются раньше общих
	path = chartPattern.ReplaceAllString(path, "/:org/chart/:chartId")
	path = dashboardPattern.ReplaceAllString(path, "/:org/dashboard/:dashId")

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if hexSegment.MatchString(segment) || numericSegment.MatchString(segment) {
			segments[i] = idPlaceholder
		}
	}

	return origin(u) + strings.Join(segments, "/")
}

func parseAbsolute(rawURL string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, false
	}
	return u, true
}

func origin(u *url.URL) string {
	host := strings.ToLower(u.Hostname())
	if port := u.Port(); port != "" && defaultPorts[u.Scheme] != port {
		return u.Scheme + "://" + net.JoinHostPort(host, port)
	}
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	return u.Scheme + "://" + host
}
