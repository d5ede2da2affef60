package consts

import "github.com/spf13/viper"

const (
	DefaultMinimumDepositBalance = 500.0
	DefaultCommissionRate        = 10.0
)

// MinimumDepositBalance is the deposit a provider must hold to browse and
// act on open requests.
func MinimumDepositBalance() float64 {
	if v := viper.GetFloat64("deposit.minimum_balance"); v > 0 {
		return v
	}
	return DefaultMinimumDepositBalance
}

// CommissionRate is the marketplace commission, in percent of the booking
// price, deducted from the provider deposit on cash settlement.
func CommissionRate() float64 {
	if v := viper.GetFloat64("deposit.commission_rate"); v > 0 {
		return v
	}
	return DefaultCommissionRate
}
