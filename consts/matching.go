package consts

import (
	"time"

	"github.com/spf13/viper"
)

// Product constants of the matching workflow. Each one can be overridden
// per deployment through configuration; the defaults are the documented
// contract values.
const (
	DefaultFanOutRadiusKm = 15.0
	DefaultBrowseRadiusKm = 50.0
	DefaultQuoteWindow    = 10 * time.Minute
	DefaultRequestExpiry  = 7 * 24 * time.Hour
)

// FanOutRadiusKm is the radius of the push fan-out for a new request. It is
// intentionally narrower than the browse radius to avoid flooding the push
// channel.
func FanOutRadiusKm() float64 {
	if v := viper.GetFloat64("matching.fanout_radius_km"); v > 0 {
		return v
	}
	return DefaultFanOutRadiusKm
}

// BrowseRadiusKm is the radius of the provider-facing actionable feed.
func BrowseRadiusKm() float64 {
	if v := viper.GetFloat64("matching.browse_radius_km"); v > 0 {
		return v
	}
	return DefaultBrowseRadiusKm
}

// QuoteWindow is how long a fresh request collects quotes.
func QuoteWindow() time.Duration {
	if v := viper.GetDuration("matching.quote_window"); v > 0 {
		return v
	}
	return DefaultQuoteWindow
}

// RequestExpiry is how long a request stays alive before the expiry sweep
// closes it.
func RequestExpiry() time.Duration {
	if v := viper.GetDuration("matching.request_expiry"); v > 0 {
		return v
	}
	return DefaultRequestExpiry
}
