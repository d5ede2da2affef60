package background

import (
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/hofix-app/hofix-api/messaging"
	"github.com/hofix-app/hofix-api/utils"
)

// Expiry task names
const (
	TaskExpireServiceRequests = "expire-service-requests"
	TaskExpireQuotes          = "expire-quotes"
)

// ExpireServiceRequests closes every request whose expiry has passed
// without a selected quote, then tells the open feeds to drop them.
func (m *BackgroundManager) ExpireServiceRequests() error {
	logger := log.WithField("task", TaskExpireServiceRequests)
	loc := utils.NewLocalizer("en")

	requests, err := m.mongoStore.ExpireServiceRequests(time.Now())
	if err != nil {
		logger.WithError(err).Error("fail to expire service requests")
		return err
	}

	reason := localized(loc, "push.expired")
	for _, request := range requests {
		event := messaging.RequestCancelledEvent{
			RequestID: request.ID.Hex(),
			Title:     request.Title,
			Reason:    reason,
		}
		m.push.NotifyRequestCancelled(messaging.AllProvidersTopic{}, event)
		m.push.NotifyRequestCancelled(messaging.UserTopic(request.UserID.Hex()), event)
	}

	if len(requests) > 0 {
		logger.WithField("count", len(requests)).Info("expired overdue service requests")
	}

	return nil
}

// ExpireQuotes marks overdue submitted quotes as expired.
func (m *BackgroundManager) ExpireQuotes() error {
	logger := log.WithField("task", TaskExpireQuotes)

	count, err := m.mongoStore.ExpireQuotes(time.Now())
	if err != nil {
		logger.WithError(err).Error("fail to expire quotes")
		return err
	}

	if count > 0 {
		logger.WithField("count", count).Info("expired overdue quotes")
	}

	return nil
}

func localized(loc *i18n.Localizer, id string) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		log.WithError(err).WithField("id", id).Warn("missing localized message")
		return ""
	}
	return msg
}
