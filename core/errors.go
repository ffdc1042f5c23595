package core

type ErrorNotFound struct {
}

func (e ErrorNotFound) Error() string {
	return "Not Found"
}

func NewErrorNotFound() ErrorNotFound {
	return ErrorNotFound{}
}

type ErrorAlreadyExists struct {
}

func (e ErrorAlreadyExists) Error() string {
	return "Already Exists"
}

func NewErrorAlreadyExists() ErrorAlreadyExists {
	return ErrorAlreadyExists{}
}

// ErrorInvalidArgument is returned when a request is well-formed but refers to
// something that cannot be used (unknown relation, bad filter, ...)
type ErrorInvalidArgument struct {
	Message string
}

func (e ErrorInvalidArgument) Error() string {
	if e.Message == "" {
		return "Invalid Argument"
	}
	return "Invalid Argument: " + e.Message
}

func NewErrorInvalidArgument(message string) ErrorInvalidArgument {
	return ErrorInvalidArgument{Message: message}
}
