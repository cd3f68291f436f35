package browser

// SaveStrategy says how a client should persist an image locally.
type SaveStrategy string

const (
	// SaveDownload triggers a direct attachment download.
	SaveDownload SaveStrategy = "download"
	// SaveLongPress renders the image in a static page and instructs the
	// user to long-press and save. Used where downloads are unreliable:
	// the WeChat in-app web view and iOS.
	SaveLongPress SaveStrategy = "longpress"
)

// ShareStrategy says how a client should share an image.
type ShareStrategy string

const (
	ShareNative    ShareStrategy = "share"
	ShareClipboard ShareStrategy = "clipboard"
)

// CopyStrategy says what form a clipboard copy should take.
type CopyStrategy string

const (
	CopyBinary CopyStrategy = "binary"
	CopyText   CopyStrategy = "text"
)

// SaveStrategyFor picks the save path for an environment. WeChat's web view
// and iOS Safari both ignore the download attribute on synthetic anchors, so
// they get the long-press page.
func SaveStrategyFor(env Environment) SaveStrategy {
	if env.IsWechat || env.IsIOS {
		return SaveLongPress
	}
	return SaveDownload
}

// ShareStrategyFor picks the share path. The native share sheet is used only
// when the client reports the capability and is not inside WeChat, where the
// share API is hijacked by the host app; everything else falls back to the
// clipboard.
func ShareStrategyFor(env Environment, shareCapable bool) ShareStrategy {
	if shareCapable && !env.IsWechat {
		return ShareNative
	}
	return ShareClipboard
}

// CopyStrategyFor picks the clipboard form: binary image copy where the
// client reports rich clipboard support, plain text (URL or data URI)
// otherwise.
func CopyStrategyFor(richClipboard bool) CopyStrategy {
	if richClipboard {
		return CopyBinary
	}
	return CopyText
}
