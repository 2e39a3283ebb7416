package response

const (
	// MessageSuccess is the default message for successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal detail from callers on 500s.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for unexpected faults.
	InternalServerErrorCode = 500
)

const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
