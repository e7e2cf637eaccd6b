// Package language holds the language list offered to users and the tables
// that translate an internal language code into each backend's dialect.
package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Auto is the source code that asks for heuristic detection.
const Auto = "auto"

// Option is one selectable language.
type Option struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Supported lists the languages offered in the UI, in display order.
var Supported = []Option{
	{Code: "en", Label: "English"},
	{Code: "zh-CN", Label: "简体中文 (Simplified Chinese)"},
	{Code: "zh-TW", Label: "繁體中文 (Traditional Chinese)"},
	{Code: "ja", Label: "日本語 (Japanese)"},
	{Code: "ko", Label: "한국어 (Korean)"},
	{Code: "es", Label: "Español (Spanish)"},
	{Code: "fr", Label: "Français (French)"},
	{Code: "de", Label: "Deutsch (German)"},
	{Code: "it", Label: "Italiano (Italian)"},
	{Code: "pt", Label: "Português (Portuguese)"},
	{Code: "ru", Label: "Русский (Russian)"},
	{Code: "ar", Label: "العربية (Arabic)"},
	{Code: "hi", Label: "हिन्दी (Hindi)"},
	{Code: "th", Label: "ไทย (Thai)"},
	{Code: "vi", Label: "Tiếng Việt (Vietnamese)"},
}

// Table maps internal codes to one backend dialect.
type Table map[string]string

// Gateway is the dialect of the multi-vendor translation gateway.
var Gateway = Table{
	"zh-CN": "zh", "zh-TW": "zh-TW", "ja": "ja", "ko": "ko", "en": "en",
	"es": "es", "fr": "fr", "de": "de", "it": "it", "pt": "pt",
	"ru": "ru", "ar": "ar", "hi": "hi", "th": "th", "vi": "vi",
}

// MyMemory uses full locales.
var MyMemory = Table{
	"en": "en-GB", "zh-TW": "zh-TW", "zh-CN": "zh-CN", "ja": "ja-JP",
	"ko": "ko-KR", "es": "es-ES", "fr": "fr-FR", "de": "de-DE",
	"it": "it-IT", "pt": "pt-PT", "ru": "ru-RU", "ar": "ar-SA",
	"hi": "hi-IN", "th": "th-TH", "vi": "vi-VN",
}

// Google is close to identity; it is kept as a table so every family is
// remapped the same way.
var Google = Table{
	"zh-CN": "zh-CN", "zh-TW": "zh-TW", "ja": "ja", "ko": "ko", "en": "en",
	"es": "es", "fr": "fr", "de": "de", "it": "it", "pt": "pt",
	"ru": "ru", "ar": "ar", "hi": "hi", "th": "th", "vi": "vi",
}

// DeepL codes are upper case and only cover part of the list.
var DeepL = Table{
	"en": "EN", "zh-CN": "ZH", "zh-TW": "ZH", "ja": "JA", "ko": "KO",
	"es": "ES", "fr": "FR", "de": "DE", "it": "IT", "pt": "PT-PT",
	"ru": "RU",
}

// Remap returns the dialect code for code, or code itself when the table has
// no entry.
func (t Table) Remap(code string) string {
	if mapped, ok := t[code]; ok {
		return mapped
	}
	return code
}

// IsChinese reports whether code names a Chinese variant.
func IsChinese(code string) bool {
	return strings.HasPrefix(code, "zh")
}

// Label returns the display label for code, or code itself.
func Label(code string) string {
	if code == Auto {
		return "Auto Detect"
	}
	for _, o := range Supported {
		if o.Code == code {
			return o.Label
		}
	}
	return code
}

// Validate checks that code is "auto" (when allowAuto) or a well-formed BCP 47 tag.
func Validate(code string, allowAuto bool) error {
	if code == "" {
		return fmt.Errorf("language code is empty")
	}
	if code == Auto {
		if allowAuto {
			return nil
		}
		return fmt.Errorf("%q is only valid as a source language", Auto)
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return nil
}

// ParseChoice accepts either a bare code or a "code - Label" choice string as
// shown in selection lists.
func ParseChoice(choice string) string {
	if code, _, ok := strings.Cut(choice, " - "); ok {
		return strings.TrimSpace(code)
	}
	return strings.TrimSpace(choice)
}
