package response

const (
	MessageSuccess  = "Success"
	MessageAccepted = "Accepted"

	InternalServerErrorCode = 500
	DefaultErrorMessage     = "Something went wrong"

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
