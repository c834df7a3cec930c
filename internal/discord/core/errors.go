package core

// internalMessage is shown when a handler fails for a reason the user
// cannot act on
const internalMessage = "Something went wrong while handling that. Please try again later."

// HandlerError is a handler failure with the copy to show the user. A nil
// Err marks bad input, which is not worth an error log.
type HandlerError struct {
	Err         error
	UserMessage string
}

func (e *HandlerError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.UserMessage
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// Reply wraps err with the message shown to the user
func Reply(err error, userMessage string) *HandlerError {
	return &HandlerError{Err: err, UserMessage: userMessage}
}

// Invalid rejects malformed input with userMessage
func Invalid(userMessage string) *HandlerError {
	return &HandlerError{UserMessage: userMessage}
}

// Internal hides err behind a generic apology
func Internal(err error) *HandlerError {
	return &HandlerError{Err: err, UserMessage: internalMessage}
}
