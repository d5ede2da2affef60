package messaging

import (
	"github.com/sirupsen/logrus"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "push")
}

// PushCenter emits the workflow's real-time events. Every method is
// fire-and-forget: a bus failure is logged and swallowed so that the
// persisted write it announces is never rolled back or re-raised.
type PushCenter interface {
	NotifyNewRequest(providerID string, event NewServiceRequestEvent)
	NotifyNewQuote(userID string, event NewQuoteReceivedEvent)
	NotifyQuoteSelected(providerID string, event QuoteSelectedEvent)
	NotifyUserQuoteSelected(userID string, event QuoteSelectedEvent)
	NotifyRequestAssignedToOther(providerID string, event RequestAssignedToOtherEvent)
	NotifyRequestCancelled(topic Topic, event RequestCancelledEvent)
	NotifyQuoteCancelled(userID string, event QuoteCancelledEvent)
}

// BusPushCenter emits events through a Bus.
type BusPushCenter struct {
	bus Bus
}

func NewBusPushCenter(bus Bus) *BusPushCenter {
	return &BusPushCenter{
		bus: bus,
	}
}

func (p *BusPushCenter) publish(topic Topic, event string, payload interface{}) {
	if err := p.bus.Publish(topic, event, payload); err != nil {
		log.WithError(err).WithField("room", topic.Room()).Warn("fail to publish push event")
	}
}

func (p *BusPushCenter) NotifyNewRequest(providerID string, event NewServiceRequestEvent) {
	p.publish(ProviderTopic(providerID), EventNewServiceRequest, event)
}

func (p *BusPushCenter) NotifyNewQuote(userID string, event NewQuoteReceivedEvent) {
	p.publish(UserTopic(userID), EventNewQuoteReceived, event)
}

func (p *BusPushCenter) NotifyQuoteSelected(providerID string, event QuoteSelectedEvent) {
	p.publish(ProviderTopic(providerID), EventQuoteSelected, event)
}

func (p *BusPushCenter) NotifyUserQuoteSelected(userID string, event QuoteSelectedEvent) {
	p.publish(UserTopic(userID), EventQuoteSelected, event)
}

func (p *BusPushCenter) NotifyRequestAssignedToOther(providerID string, event RequestAssignedToOtherEvent) {
	p.publish(ProviderTopic(providerID), EventRequestAssignedToOther, event)
}

func (p *BusPushCenter) NotifyRequestCancelled(topic Topic, event RequestCancelledEvent) {
	p.publish(topic, EventRequestCancelled, event)
}

func (p *BusPushCenter) NotifyQuoteCancelled(userID string, event QuoteCancelledEvent) {
	p.publish(UserTopic(userID), EventQuoteCancelled, event)
}
