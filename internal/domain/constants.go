package domain

import "math"

// Defaults
const (
	DefaultOrderSource     = "pos"
	DefaultSalesReportType = SalesDaily
)

// Business validation constants
const (
	MaxNoteLength          = 500
	MaxCustomerNameLength  = 255
	MaxPhoneNumberLength   = 50
	MaxOrderNumberLength   = 100
	MaxPartySize           = 100
	MaxPaymentMethodLength = 50
	MaxSourceLength        = 50
	MaxItemNameLength      = 255
	MaxMenuNameLength      = 255
	MaxCategoryLength      = 100
	MaxUsernameLength      = 100
	MaxPasswordLength      = 255
	MaxRoleLength          = 50
)

// Column range limits
const (
	// MaxAmount is the largest value a NUMERIC(10,2) column holds
	MaxAmount = 99999999.99

	MaxTableNumber = math.MaxInt32
	MaxQuantity    = math.MaxInt32
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingTimeLayouts accepted layouts for booking start/end timestamps.
// Layouts without a zone are interpreted as UTC.
var BookingTimeLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// TransitionActions actions available on an order
var TransitionActions = []OrderAction{
	OrderActionPrepare,
	OrderActionApprove,
	OrderActionReject,
}
