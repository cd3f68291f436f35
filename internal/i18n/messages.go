// Package i18n holds the user-facing message catalog. Chinese is the
// product's primary copy; English mirrors it for non-Chinese locales.
package i18n

// Message keys. Handlers translate relay failures and validation results
// through these instead of embedding literals.
const (
	KeyMethodNotAllowed   = "method_not_allowed"
	KeyNotFound           = "not_found"
	KeyInvalidPayload     = "invalid_payload"
	KeyPromptRequired     = "prompt_required"
	KeyPromptEmpty        = "prompt_empty"
	KeyPromptTooLong      = "prompt_too_long"
	KeyEditImageRequired  = "edit_image_required"
	KeyEditPromptRequired = "edit_prompt_required"
	KeyEditPromptEmpty    = "edit_prompt_empty"
	KeyEditPromptTooLong  = "edit_prompt_too_long"
	KeyInvalidImageFormat = "invalid_image_format"
	KeyInvalidImageData   = "invalid_image_data"
	KeyMissingCredential  = "missing_credential"
	KeyInvalidCredential  = "invalid_credential"
	KeyRateLimited        = "rate_limited"
	KeyPolicyRejected     = "policy_rejected"
	KeyNoImageGenerated   = "no_image_generated"
	KeyNoImageEdited      = "no_image_edited"
	KeyGenerateFailed     = "generate_failed"
	KeyEditFailed         = "edit_failed"
	KeySourceFetchFailed  = "source_fetch_failed"
)

var catalog = map[string]map[string]string{
	"zh": {
		KeyMethodNotAllowed:   "只支持POST请求",
		KeyNotFound:           "接口不存在",
		KeyInvalidPayload:     "请求格式无效",
		KeyPromptRequired:     "请提供有效的图片描述",
		KeyPromptEmpty:        "图片描述不能为空",
		KeyPromptTooLong:      "图片描述过长，请控制在1000字符以内",
		KeyEditImageRequired:  "请提供有效的图片URL",
		KeyEditPromptRequired: "请提供有效的编辑指令",
		KeyEditPromptEmpty:    "编辑指令不能为空",
		KeyEditPromptTooLong:  "编辑指令过长，请控制在500字符以内",
		KeyInvalidImageFormat: "无效的图片URL格式",
		KeyInvalidImageData:   "无效的图片数据，请重新生成图片后再编辑",
		KeyMissingCredential:  "Gemini API密钥未配置，请检查环境变量GEMINI_API_KEY",
		KeyInvalidCredential:  "API密钥无效，请检查配置",
		KeyRateLimited:        "API调用次数超限，请稍后重试",
		KeyPolicyRejected:     "内容不符合安全政策，请修改描述后重试",
		KeyNoImageGenerated:   "响应中未找到图片数据",
		KeyNoImageEdited:      "编辑响应中未找到图片数据",
		KeyGenerateFailed:     "图片生成失败，请稍后重试",
		KeyEditFailed:         "图片编辑失败，请稍后重试",
		KeySourceFetchFailed:  "源图片下载失败，请检查图片URL",
	},
	"en": {
		KeyMethodNotAllowed:   "only POST requests are supported",
		KeyNotFound:           "endpoint not found",
		KeyInvalidPayload:     "invalid request payload",
		KeyPromptRequired:     "a valid image description is required",
		KeyPromptEmpty:        "image description must not be empty",
		KeyPromptTooLong:      "image description too long, limit is 1000 characters",
		KeyEditImageRequired:  "a valid image URL is required",
		KeyEditPromptRequired: "a valid edit instruction is required",
		KeyEditPromptEmpty:    "edit instruction must not be empty",
		KeyEditPromptTooLong:  "edit instruction too long, limit is 500 characters",
		KeyInvalidImageFormat: "invalid image URL format",
		KeyInvalidImageData:   "invalid image data, regenerate the image before editing",
		KeyMissingCredential:  "Gemini API key is not configured, check the GEMINI_API_KEY environment variable",
		KeyInvalidCredential:  "invalid API key, check the configuration",
		KeyRateLimited:        "API quota exceeded, retry later",
		KeyPolicyRejected:     "content violates the safety policy, adjust the description and retry",
		KeyNoImageGenerated:   "no image data found in the response",
		KeyNoImageEdited:      "no image data found in the edit response",
		KeyGenerateFailed:     "image generation failed, retry later",
		KeyEditFailed:         "image editing failed, retry later",
		KeySourceFetchFailed:  "failed to download the source image, check the image URL",
	},
}

// T returns the message for key in the given locale, falling back to Chinese
// and then to the key itself so a missing entry stays diagnosable.
func T(locale, key string) string {
	if msgs, ok := catalog[locale]; ok {
		if msg, ok := msgs[key]; ok {
			return msg
		}
	}
	if msg, ok := catalog["zh"][key]; ok {
		return msg
	}
	return key
}

// Locales returns the locales the catalog ships.
func Locales() []string {
	return []string{"zh", "en"}
}
