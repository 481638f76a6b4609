package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINRGrouping(t *testing.T) {
	// en-IN groups by lakh/crore past the first thousand.
	assert.Equal(t, "₹1,000", Rupees(1000))
	assert.Equal(t, "₹2,50,000", Rupees(250000))
	assert.Equal(t, "₹1,500.50", RupeesExact(1500.5))
	assert.Equal(t, "₹0", Rupees(0))
}

func TestFormatUSDGrouping(t *testing.T) {
	assert.Equal(t, "$1,234.50", Dollars(1234.5))
	assert.Equal(t, "$0.00", Dollars(0))
}

func TestFormatClampsDecimals(t *testing.T) {
	assert.Equal(t, "₹10", Format(10.4, INR, -1))
	assert.Equal(t, "₹10.40", Format(10.4, INR, 5))
}

func TestFormatUnknownCurrencyFallsBack(t *testing.T) {
	assert.Equal(t, "₹5", Format(5, Currency("GBP"), 0))
}
