package app

// ErrorType represents a generic category of error used as descriptor
// to clarify the nature of a failure that occurred in dependencies.
type ErrorType struct {
	s string
}

var (
	ErrorTypeProviderFailure   = ErrorType{"provider-failure"}
	ErrorTypeAuthorization     = ErrorType{"authorization"}
	ErrorTypeAccessForbidden   = ErrorType{"access-forbidden"}
	ErrorTypeIncorrectInput    = ErrorType{"incorrect-input"}
	ErrorTypeUnprocessable     = ErrorType{"unprocessable"}
	ErrorTypeNotFound          = ErrorType{"not-found"}
	ErrorTypeLimitExceeded     = ErrorType{"limit-exceeded"}
	ErrorTypeOperationTimeout  = ErrorType{"operation-timeout"}
	ErrorTypeRawDataProcessing = ErrorType{"raw-data-processing"}
)

// Error defines a generic application-layer error that is translated into
// a response for the requester.
//
// The err message may carry internal details and is meant for logs. The slug
// is the message returned to the requester.
type Error struct {
	err       string
	slug      string
	errorType ErrorType
}

func (e Error) Slug() string         { return e.slug }
func (e Error) IsZero() bool         { return e == Error{} }
func (e Error) Error() string        { return e.err }
func (e Error) ErrorType() ErrorType { return e.errorType }

// NewIncorrectInputError returns an error for request data that fails validation.
func NewIncorrectInputError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeIncorrectInput,
	}
}

// NewUnprocessableError returns an error for well-formed requests that cannot be satisfied,
// such as values that admit no compliant form.
func NewUnprocessableError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeUnprocessable,
	}
}

// NewNotFoundError returns an error for a resource unknown to the data providers.
func NewNotFoundError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeNotFound,
	}
}

// NewLimitExceededError returns an error for a resource too large to be processed.
func NewLimitExceededError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeLimitExceeded,
	}
}

// NewProviderFailureError returns an error that handles service dependency failures,
// unavailability, connection problems, or other issues that should not be exposed to the requester.
func NewProviderFailureError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeProviderFailure,
	}
}

// NewAuthorizationError returns an error for missing or malformed credentials.
func NewAuthorizationError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeAuthorization,
	}
}

// NewAccessForbiddenError returns an error for credentials that are present but not accepted.
func NewAccessForbiddenError(err, slug string) Error {
	return Error{
		slug:      slug,
		err:       err,
		errorType: ErrorTypeAccessForbidden,
	}
}

// NewRawDataProcessingError returns an error for request content that could not be parsed.
func NewRawDataProcessingError(err, slug string) Error {
	return Error{
		slug:      slug,
		errorType: ErrorTypeRawDataProcessing,
		err:       err,
	}
}

// NewContextCancellationError returns an error indicating that the request exceeded the context timeout
// or that a context cancellation signal was emitted.
func NewContextCancellationError() Error {
	const msg = "The submitted request context has been canceled or exceeds the timeout limit."
	return Error{
		errorType: ErrorTypeOperationTimeout,
		err:       msg,
		slug:      msg,
	}
}
