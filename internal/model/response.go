package model

// Response is the uniform envelope returned by every API handler
type Response struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message,omitempty"`
	Error    string            `json:"error,omitempty"`
	Data     interface{}       `json:"data,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
	PhotoURL string            `json:"photoUrl,omitempty"`
}

// NewSuccessResponse builds a success envelope
func NewSuccessResponse(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// NewErrorResponse builds a failure envelope with an optional detail string
func NewErrorResponse(message, detail string) Response {
	return Response{Success: false, Message: message, Error: detail}
}

// NewValidationErrorResponse builds a failure envelope carrying a
// field name -> first error message map
func NewValidationErrorResponse(errors map[string]string) Response {
	return Response{Success: false, Errors: errors}
}
