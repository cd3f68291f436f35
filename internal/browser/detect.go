// Package browser classifies client User-Agent strings and picks the
// save/share/copy strategy a given environment can actually execute. The
// classification is heuristic by nature, so it lives behind this package
// alone; nothing else in the codebase inspects User-Agent text.
package browser

import "strings"

// Environment is the capability classification of the requesting browser.
type Environment struct {
	IsWechat  bool `json:"isWechat"`
	IsIOS     bool `json:"isIOS"`
	IsAndroid bool `json:"isAndroid"`
	IsMobile  bool `json:"isMobile"`
	IsSafari  bool `json:"isSafari"`
	IsChrome  bool `json:"isChrome"`
	IsFirefox bool `json:"isFirefox"`
}

var mobileTokens = []string{
	"mobile", "android", "iphone", "ipad", "ipod", "blackberry", "iemobile", "opera mini",
}

// Detect classifies a User-Agent string. It is a pure function: the same
// input always yields the same flags.
func Detect(userAgent string) Environment {
	ua := strings.ToLower(userAgent)

	env := Environment{
		IsWechat:  strings.Contains(ua, "micromessenger"),
		IsAndroid: strings.Contains(ua, "android"),
		IsChrome:  strings.Contains(ua, "chrome"),
		IsFirefox: strings.Contains(ua, "firefox"),
	}
	env.IsIOS = strings.Contains(ua, "ipad") || strings.Contains(ua, "iphone") || strings.Contains(ua, "ipod")
	env.IsSafari = strings.Contains(ua, "safari") && !env.IsChrome
	for _, token := range mobileTokens {
		if strings.Contains(ua, token) {
			env.IsMobile = true
			break
		}
	}
	return env
}
