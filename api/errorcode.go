package api

import "github.com/hofix-app/hofix-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid email or password",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrEmailTaken.Error(),
		1101: "account not found",
		1102: store.ErrProviderNotFound.Error(),
		1103: "account has no registered role for this API",

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrNotRequestOwner.Error(),
		1202: store.ErrRequestClosed.Error(),
		1203: "an earlier completed booking is awaiting payment",
		1204: store.ErrBookingNotFound.Error(),
		1205: store.ErrNotBookingProvider.Error(),
		1206: store.ErrBookingNotCompleted.Error(),
		1207: store.ErrBookingAlreadyPaid.Error(),
		1208: store.ErrMissingRequestFields.Error(),

		1300: store.ErrProviderNotVerified.Error(),
		1301: store.ErrQuoteAlreadySubmitted.Error(),
		1302: store.ErrProviderBusy.Error(),
		1303: store.ErrQuoteDeadlinePassed.Error(),
		1304: store.ErrInvalidPrice.Error(),
		1305: store.ErrEmptyDuration.Error(),
		1306: store.ErrQuoteNotFound.Error(),
		1307: store.ErrQuoteNotAvailable.Error(),
		1308: store.ErrQuoteNotWithdrawable.Error(),

		1400: store.ErrInsufficientDeposit.Error(),
		1401: store.ErrNotificationNotFound.Error(),

		1500: store.ErrInvalidAmount.Error(),
		1501: store.ErrInvalidTransactionType.Error(),
		1502: store.ErrInsufficientWalletBalance.Error(),
		1503: store.ErrTransactionProcessed.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmailTaken       = errorJSON(1100)
	errorAccountNotFound  = errorJSON(1101)
	errorProviderNotFound = errorJSON(1102)
	errorNotAProvider     = errorJSON(1103)

	errorRequestNotFound    = errorJSON(1200)
	errorNotRequestOwner    = errorJSON(1201)
	errorRequestClosed      = errorJSON(1202)
	errorOutstandingPayment = errorJSON(1203)
	errorBookingNotFound    = errorJSON(1204)
	errorNotBookingProvider = errorJSON(1205)
	errorBookingNotDone     = errorJSON(1206)
	errorBookingAlreadyPaid = errorJSON(1207)
	errorMissingFields      = errorJSON(1208)

	errorProviderNotVerified   = errorJSON(1300)
	errorQuoteAlreadySubmitted = errorJSON(1301)
	errorProviderBusy          = errorJSON(1302)
	errorQuoteDeadlinePassed   = errorJSON(1303)
	errorInvalidPrice          = errorJSON(1304)
	errorEmptyDuration         = errorJSON(1305)
	errorQuoteNotFound         = errorJSON(1306)
	errorQuoteNotAvailable     = errorJSON(1307)
	errorQuoteNotWithdrawable  = errorJSON(1308)

	errorInsufficientDeposit  = errorJSON(1400)
	errorNotificationNotFound = errorJSON(1401)

	errorInvalidAmount             = errorJSON(1500)
	errorInvalidTransactionType    = errorJSON(1501)
	errorInsufficientWalletBalance = errorJSON(1502)
	errorTransactionProcessed      = errorJSON(1503)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
