package browser

import "testing"

func TestSaveStrategyFor(t *testing.T) {
	tests := []struct {
		name string
		env  Environment
		want SaveStrategy
	}{
		{name: "wechat gets long press", env: Environment{IsWechat: true}, want: SaveLongPress},
		{name: "ios gets long press", env: Environment{IsIOS: true}, want: SaveLongPress},
		{name: "wechat on android gets long press", env: Environment{IsWechat: true, IsAndroid: true}, want: SaveLongPress},
		{name: "android chrome downloads", env: Environment{IsAndroid: true, IsChrome: true}, want: SaveDownload},
		{name: "desktop downloads", env: Environment{IsChrome: true}, want: SaveDownload},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SaveStrategyFor(tc.env); got != tc.want {
				t.Fatalf("SaveStrategyFor mismatch: got %q want %q", got, tc.want)
			}
		})
	}
}

func TestShareStrategyFor(t *testing.T) {
	if got := ShareStrategyFor(Environment{IsMobile: true}, true); got != ShareNative {
		t.Fatalf("share-capable mobile should use native share, got %q", got)
	}
	if got := ShareStrategyFor(Environment{IsWechat: true}, true); got != ShareClipboard {
		t.Fatalf("wechat must never use native share, got %q", got)
	}
	if got := ShareStrategyFor(Environment{}, false); got != ShareClipboard {
		t.Fatalf("share-incapable client should use clipboard, got %q", got)
	}
}

func TestCopyStrategyFor(t *testing.T) {
	if got := CopyStrategyFor(true); got != CopyBinary {
		t.Fatalf("rich clipboard should copy binary, got %q", got)
	}
	if got := CopyStrategyFor(false); got != CopyText {
		t.Fatalf("plain clipboard should copy text, got %q", got)
	}
}
