package core

type ResponseBase[T any] struct {
	Status  string `json:"status"`
	Content T      `json:"content"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse is the body written by the central error handler
type ErrorResponse struct {
	Status    string        `json:"status"`
	Error     string        `json:"error"`
	RequestID string        `json:"requestId,omitempty"`
	Details   []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

func NewResponse[T any](content T) ResponseBase[T] {
	return ResponseBase[T]{Status: "ok", Content: content}
}
