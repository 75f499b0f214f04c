package types

type CommandName string

const (
	SET   CommandName = "SET"
	GET   CommandName = "GET"
	DEL   CommandName = "DEL"
	INCR  CommandName = "INCR"
	FLUSH CommandName = "FLUSH"
)

// Command is one parsed instruction of the command log.
// The set of variants is closed: only the types below implement it.
type Command interface {
	Name() CommandName
	isCommand()
}

type SetCommand struct {
	Key   string
	Value string
}

type GetCommand struct {
	Key string
}

type DelCommand struct {
	Key string
}

type IncrCommand struct {
	Key string
}

type FlushCommand struct{}

func (SetCommand) Name() CommandName   { return SET }
func (GetCommand) Name() CommandName   { return GET }
func (DelCommand) Name() CommandName   { return DEL }
func (IncrCommand) Name() CommandName  { return INCR }
func (FlushCommand) Name() CommandName { return FLUSH }

func (SetCommand) isCommand()   {}
func (GetCommand) isCommand()   {}
func (DelCommand) isCommand()   {}
func (IncrCommand) isCommand()  {}
func (FlushCommand) isCommand() {}

// Returns the key a command operates on, or an empty string for FLUSH
func CommandKey(command Command) string {
	switch c := command.(type) {
	case SetCommand:
		return c.Key
	case GetCommand:
		return c.Key
	case DelCommand:
		return c.Key
	case IncrCommand:
		return c.Key
	default:
		return ""
	}
}
