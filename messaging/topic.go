package messaging

import "fmt"

// Topic is a named channel on the push bus. The rendered room strings are
// part of the client contract: connected clients join these rooms by name,
// so the formats must stay exactly as they are.
type Topic interface {
	Room() string
}

// ProviderTopic is a specific provider's private channel.
type ProviderTopic string

func (t ProviderTopic) Room() string {
	return fmt.Sprintf("provider_%s", string(t))
}

// UserTopic is a specific requester's private channel.
type UserTopic string

func (t UserTopic) Room() string {
	return fmt.Sprintf("user_%s", string(t))
}

// BookingTopic is the per-booking chat and status channel.
type BookingTopic string

func (t BookingTopic) Room() string {
	return fmt.Sprintf("booking_%s", string(t))
}

// AllProvidersTopic is the broadcast channel every provider client joins
// on connect.
type AllProvidersTopic struct{}

func (AllProvidersTopic) Room() string {
	return "all_providers"
}
