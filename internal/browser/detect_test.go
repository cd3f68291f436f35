package browser

import "testing"

const (
	uaWechatIOS      = "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Mobile/15E148 MicroMessenger/8.0.40"
	uaIPhoneSafari   = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaAndroidChrome  = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36"
	uaDesktopChrome  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaDesktopFirefox = "Mozilla/5.0 (X11; Linux x86_64; rv:122.0) Gecko/20100101 Firefox/122.0"
	uaMacSafari      = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want Environment
	}{
		{
			name: "wechat on ios",
			ua:   uaWechatIOS,
			want: Environment{IsWechat: true, IsIOS: true, IsMobile: true, IsSafari: false},
		},
		{
			name: "iphone safari",
			ua:   uaIPhoneSafari,
			want: Environment{IsIOS: true, IsMobile: true, IsSafari: true},
		},
		{
			name: "android chrome",
			ua:   uaAndroidChrome,
			want: Environment{IsAndroid: true, IsMobile: true, IsChrome: true},
		},
		{
			name: "desktop chrome",
			ua:   uaDesktopChrome,
			want: Environment{IsChrome: true},
		},
		{
			name: "desktop firefox",
			ua:   uaDesktopFirefox,
			want: Environment{IsFirefox: true},
		},
		{
			name: "mac safari",
			ua:   uaMacSafari,
			want: Environment{IsSafari: true},
		},
		{
			name: "empty user agent",
			ua:   "",
			want: Environment{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.ua); got != tc.want {
				t.Fatalf("Detect mismatch:\n got  %+v\n want %+v", got, tc.want)
			}
		})
	}
}

func TestDetectIsDeterministic(t *testing.T) {
	first := Detect(uaWechatIOS)
	for i := 0; i < 5; i++ {
		if Detect(uaWechatIOS) != first {
			t.Fatal("Detect must be a pure function of the user agent")
		}
	}
}
