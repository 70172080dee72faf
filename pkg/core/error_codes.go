package core

// Exchange error codes returned in the code field of an error body.
const (
	CodeUnknown            = -1000
	CodeDisconnected       = -1001
	CodeUnauthorized       = -1002
	CodeTooManyRequests    = -1003
	CodeUnexpectedResponse = -1006
	CodeTimeout            = -1007
	CodeServerBusy         = -1008
	CodeTooManyOrders      = -1015
	CodeInvalidTimestamp   = -1021
	CodeInvalidSignature   = -1022

	CodeIllegalChars       = -1100
	CodeTooManyParameters  = -1101
	CodeMandatoryParam     = -1102
	CodeUnknownParam       = -1103
	CodeUnreadParameters   = -1104
	CodeParamEmpty         = -1105
	CodeParamNotRequired   = -1106
	CodeBadPrecision       = -1111
	CodeInvalidTimeInForce = -1115
	CodeInvalidOrderType   = -1116
	CodeInvalidSide        = -1117
	CodeBadSymbol          = -1121
	CodeInvalidRecvWindow  = -1131

	CodeNewOrderRejected         = -2010
	CodeCancelRejected           = -2011
	CodeNoSuchOrder              = -2013
	CodeBadAPIKeyFormat          = -2014
	CodeRejectedAPIKey           = -2015
	CodeCancelReplacePartialFail = -2021
	CodeCancelReplaceFailed      = -2022
)

// ErrorTypeFromCode maps an exchange error code to its category.
func ErrorTypeFromCode(code int) ErrorType {
	switch code {
	case CodeTooManyRequests, CodeTooManyOrders:
		return ErrorTypeRateLimit
	case CodeUnauthorized, CodeInvalidSignature, CodeBadAPIKeyFormat, CodeRejectedAPIKey:
		return ErrorTypeAuthentication
	case CodeTimeout:
		return ErrorTypeTimeout
	case CodeUnknown, CodeDisconnected, CodeUnexpectedResponse, CodeServerBusy:
		return ErrorTypeServerError
	case CodeNoSuchOrder:
		return ErrorTypeNotFound
	}

	switch {
	case code <= -1000 && code > -2000:
		return ErrorTypeBadRequest
	case code <= -2000 && code > -2100:
		return ErrorTypeInvalidOrder
	}
	return ErrorTypeUnknown
}

// IsAPIErrorCode checks whether err carries the given exchange error code.
func IsAPIErrorCode(err error, code int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Code == code
}
