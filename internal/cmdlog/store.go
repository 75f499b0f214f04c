package cmdlog

import (
	"cmdlog/internal/cmdlog/errors"
	"cmdlog/internal/cmdlog/types"
	"cmdlog/pkg/utils"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/samber/lo"
)

// Store is the key-value mapping the command log is applied to.
// It is owned by a single run and is not safe for concurrent use.
type Store struct {
	data map[string]string
}

func NewStore() *Store {
	return &Store{
		data: make(map[string]string),
	}
}

// Apply executes one command and returns its reply.
// A command either takes full effect or, when an error is returned, none at all.
func (store *Store) Apply(command types.Command) (types.Reply, error) {
	switch c := command.(type) {
	case types.SetCommand:
		return store.handleSetCommand(c), nil
	case types.GetCommand:
		return store.handleGetCommand(c), nil
	case types.DelCommand:
		return store.handleDelCommand(c), nil
	case types.IncrCommand:
		return store.handleIncrCommand(c)
	case types.FlushCommand:
		return store.handleFlushCommand(), nil
	default:
		return types.Reply{}, fmt.Errorf("%w: %T", errors.ErrorUnknownCommand, command)
	}
}

func (store *Store) handleSetCommand(command types.SetCommand) types.Reply {
	store.data[command.Key] = command.Value
	return types.NewOkReply()
}

func (store *Store) handleGetCommand(command types.GetCommand) types.Reply {
	value, ok := store.data[command.Key]
	return types.NewSuccessReply(lo.Ternary(ok, value, types.NIL_REPLY))
}

func (store *Store) handleDelCommand(command types.DelCommand) types.Reply {
	delete(store.data, command.Key)
	return types.NewOkReply()
}

// A missing key counts as "0"
func (store *Store) handleIncrCommand(command types.IncrCommand) (types.Reply, error) {
	current := lo.ValueOr(store.data, command.Key, "0")

	number, err := utils.FromStringToInt64(current)
	if err != nil {
		return types.Reply{}, &errors.IncrTypeError{
			Key:   command.Key,
			Value: current,
			Cause: errors.ErrorValueNotInteger,
		}
	}

	if number == math.MaxInt64 {
		return types.Reply{}, &errors.IncrTypeError{
			Key:   command.Key,
			Value: current,
			Cause: errors.ErrorValueOverflow,
		}
	}

	store.data[command.Key] = strconv.FormatInt(number+1, 10)
	return types.NewOkReply(), nil
}

func (store *Store) handleFlushCommand() types.Reply {
	clear(store.data)
	return types.NewOkReply()
}

// Len returns the number of keys currently held.
func (store *Store) Len() int {
	return len(store.data)
}

// Keys returns the stored keys in ascending order.
func (store *Store) Keys() []string {
	keys := lo.Keys(store.data)
	sort.Strings(keys)
	return keys
}
