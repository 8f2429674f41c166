// Package i18n provides internationalization support for the bag pricing
// service. It translates user-facing error messages.
package i18n

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: defaultMessages,
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to
// DefaultLocale and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// SupportedLocales lists the locales with a message catalogue.
func SupportedLocales() []string {
	return []string{"en", "ru"}
}

// GetLocale returns the supported language with the highest Accept-Language
// weight, e.g. "ru" for "fr-FR,ru;q=0.9,en;q=0.8". Ties keep header order.
func GetLocale(c *gin.Context) string {
	best, bestQ := DefaultLocale, 0.0
	for _, part := range strings.Split(c.GetHeader(AcceptLanguageHeader), ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		lang, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(tag)), "-")
		if _, ok := defaultMessages[lang]; !ok {
			continue
		}
		q := 1.0
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				continue
			}
			q = parsed
		}
		if q > bestQ {
			best, bestQ = lang, q
		}
	}
	return best
}

var defaultMessages = map[string]map[string]string{
	"en": {
		ErrKeyInvalidRequest:     "Invalid request",
		ErrKeyInvalidRequestBody: "Invalid request body",
		ErrKeyInvalidOrder:       "Invalid order",
		ErrKeyInvalidConfig:      "Invalid pricing configuration",
		ErrKeyMissingFeatureRate: "A feature rate required by this order is not configured",
		ErrKeyCalculationFailed:  "Price calculation failed",
		ErrKeyExportFailed:       "Export failed",
		ErrKeyInternalError:      "An unexpected error occurred",
		ErrKeyUnauthorized:       "Unauthorized",
		ErrKeyAPIKeyRequired:     "API key is required",
		ErrKeyInvalidAPIKey:      "Invalid API key",
		ErrKeyForbidden:          "Forbidden",
		ErrKeyNotFound:           "Not found",
		ErrKeyRateLimitExceeded:  "Too many requests, please try again later",
		ErrKeyInvalidToken:       "Invalid or expired token",
		ErrKeyTokenRequired:      "Authentication token is required",
		ErrKeyTimeout:            "Request timeout",
	},
	"ru": {
		ErrKeyInvalidRequest:     "Некорректный запрос",
		ErrKeyInvalidRequestBody: "Некорректное тело запроса",
		ErrKeyInvalidOrder:       "Некорректные параметры заказа",
		ErrKeyInvalidConfig:      "Некорректная конфигурация цен",
		ErrKeyMissingFeatureRate: "Не задан тариф для выбранной опции",
		ErrKeyCalculationFailed:  "Ошибка расчета цены",
		ErrKeyExportFailed:       "Ошибка выгрузки",
		ErrKeyInternalError:      "Произошла непредвиденная ошибка",
		ErrKeyUnauthorized:       "Требуется авторизация",
		ErrKeyAPIKeyRequired:     "Требуется API-ключ",
		ErrKeyInvalidAPIKey:      "Неверный API-ключ",
		ErrKeyForbidden:          "Доступ запрещен",
		ErrKeyNotFound:           "Не найдено",
		ErrKeyRateLimitExceeded:  "Слишком много запросов, повторите позже",
		ErrKeyInvalidToken:       "Недействительный или просроченный токен",
		ErrKeyTokenRequired:      "Требуется токен авторизации",
		ErrKeyTimeout:            "Превышено время ожидания",
	},
}
