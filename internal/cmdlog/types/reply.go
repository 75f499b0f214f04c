package types

import "fmt"

const (
	OK_REPLY  = "OK"
	NIL_REPLY = "nil"
)

// Reply is the single line of output produced for one command.
type Reply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   error  `json:"error,omitempty"`
}

func NewSuccessReply(message string) Reply {
	return Reply{
		Success: true,
		Message: message,
		Error:   nil,
	}
}

func NewOkReply() Reply {
	return NewSuccessReply(OK_REPLY)
}

func NewErrorReply(err error) Reply {
	return Reply{
		Success: false,
		Message: fmt.Sprintf("ERR %v", err),
		Error:   err,
	}
}

func (reply Reply) ToString() string {
	return reply.Message + "\n"
}
