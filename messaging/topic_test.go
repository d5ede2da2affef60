package messaging

import "testing"

// the rendered room strings are a wire contract with the connected clients
func TestTopicRooms(t *testing.T) {
	cases := map[string]Topic{
		"provider_5f3e9a1b2c4d5e6f70819202": ProviderTopic("5f3e9a1b2c4d5e6f70819202"),
		"user_5f3e9a1b2c4d5e6f70819203":     UserTopic("5f3e9a1b2c4d5e6f70819203"),
		"booking_5f3e9a1b2c4d5e6f70819204":  BookingTopic("5f3e9a1b2c4d5e6f70819204"),
		"all_providers":                     AllProvidersTopic{},
	}

	for expected, topic := range cases {
		if topic.Room() != expected {
			t.Fatalf("room: got %s, expected %s", topic.Room(), expected)
		}
	}
}
