package api

import (
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/hofix-app/hofix-api/utils"
)

// localizerForRequest picks a localizer from the Accept-Language header.
func localizerForRequest(c *gin.Context) *i18n.Localizer {
	lang := c.GetHeader("Accept-Language")
	if lang == "" {
		lang = "en"
	}
	return utils.NewLocalizer(lang)
}

func localize(loc *i18n.Localizer, id string, data interface{}) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		log.WithError(err).WithField("id", id).Warn("missing localized message")
		return ""
	}
	return msg
}

func newRequestCopy(loc *i18n.Localizer, category, description string) (string, string) {
	data := map[string]interface{}{
		"Category":    category,
		"Description": description,
	}
	return localize(loc, "notifications.new_request.title", data),
		localize(loc, "notifications.new_request.message", data)
}

func quoteSelectedCopy(loc *i18n.Localizer, title string) (string, string) {
	data := map[string]interface{}{"Title": title}
	return localize(loc, "notifications.quote_selected.title", data),
		localize(loc, "notifications.quote_selected.message", data)
}

func requestCancelledCopy(loc *i18n.Localizer, title string) (string, string) {
	data := map[string]interface{}{"Title": title}
	return localize(loc, "notifications.request_cancelled.title", data),
		localize(loc, "notifications.request_cancelled.message", data)
}

func quoteCancelledCopy(loc *i18n.Localizer, providerName, title string) (string, string) {
	data := map[string]interface{}{
		"ProviderName": providerName,
		"Title":        title,
	}
	return localize(loc, "notifications.quote_cancelled.title", data),
		localize(loc, "notifications.quote_cancelled.message", data)
}

func newQuoteCopy(loc *i18n.Localizer, title string) (string, string) {
	data := map[string]interface{}{"Title": title}
	return localize(loc, "notifications.new_quote.title", data),
		localize(loc, "notifications.new_quote.message", data)
}

func pushLine(loc *i18n.Localizer, id string) string {
	return localize(loc, "push."+id, nil)
}
