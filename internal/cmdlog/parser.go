package cmdlog

import (
	"cmdlog/internal/cmdlog/errors"
	"cmdlog/internal/cmdlog/types"
	"strings"

	"github.com/samber/lo"
)

const COMMAND_RULE = "command"

// cursor walks a single line; every grammar rule advances it or fails at its offset.
type cursor struct {
	line   string
	offset int
}

type grammarRule struct {
	name    string
	keyword types.CommandName
	parse   func(input *cursor) (types.Command, *errors.ParseError)
}

// Tried in order, the first rule whose keyword and arguments match wins
var commandRules = []grammarRule{
	{name: "parse-get", keyword: types.GET, parse: parseGet},
	{name: "parse-set", keyword: types.SET, parse: parseSet},
	{name: "parse-delete", keyword: types.DEL, parse: parseDelete},
	{name: "parse-flush", keyword: types.FLUSH, parse: parseFlush},
	{name: "parse-incr", keyword: types.INCR, parse: parseIncr},
}

var expectedKeywords = "one of " + strings.Join(
	lo.Map(commandRules, func(rule grammarRule, _ int) string {
		return string(rule.keyword)
	}),
	", ",
)

// Parse turns one line of the command log (without its newline) into a Command.
// Input left over after a complete match is ignored, so "GET a b" reads as GET a.
func Parse(line string) (types.Command, error) {
	var firstFailure *errors.ParseError

	for _, rule := range commandRules {
		input := &cursor{line: line}
		if !input.tag(string(rule.keyword)) {
			continue
		}

		command, err := rule.parse(input)
		if err != nil {
			if firstFailure == nil {
				firstFailure = err.WithContext(rule.name)
			}
			continue
		}

		return command, nil
	}

	if firstFailure != nil {
		return nil, firstFailure.WithContext(COMMAND_RULE)
	}

	return nil, (&cursor{line: line}).fail(expectedKeywords).WithContext(COMMAND_RULE)
}

func parseGet(input *cursor) (types.Command, *errors.ParseError) {
	key, err := input.spacedToken("key")
	if err != nil {
		return nil, err
	}
	return types.GetCommand{Key: key}, nil
}

func parseSet(input *cursor) (types.Command, *errors.ParseError) {
	key, err := input.spacedToken("key")
	if err != nil {
		return nil, err
	}

	value, err := input.spacedToken("value")
	if err != nil {
		return nil, err
	}
	return types.SetCommand{Key: key, Value: value}, nil
}

func parseDelete(input *cursor) (types.Command, *errors.ParseError) {
	key, err := input.spacedToken("key")
	if err != nil {
		return nil, err
	}
	return types.DelCommand{Key: key}, nil
}

func parseFlush(_ *cursor) (types.Command, *errors.ParseError) {
	return types.FlushCommand{}, nil
}

func parseIncr(input *cursor) (types.Command, *errors.ParseError) {
	key, err := input.spacedToken("key")
	if err != nil {
		return nil, err
	}
	return types.IncrCommand{Key: key}, nil
}

func (input *cursor) fail(expected string) *errors.ParseError {
	return &errors.ParseError{
		Line:     input.line,
		Offset:   input.offset,
		Expected: expected,
	}
}

func (input *cursor) rest() string {
	return input.line[input.offset:]
}

// Consumes keyword when the remaining input starts with it, case-sensitively
func (input *cursor) tag(keyword string) bool {
	if !strings.HasPrefix(input.rest(), keyword) {
		return false
	}
	input.offset += len(keyword)
	return true
}

// Consumes one or more spaces or tabs
func (input *cursor) space1() *errors.ParseError {
	width := len(input.rest()) - len(strings.TrimLeft(input.rest(), " \t"))
	if width == 0 {
		return input.fail("space")
	}
	input.offset += width
	return nil
}

// Consumes one or more ASCII letters or digits
func (input *cursor) alphanumeric1(name string) (string, *errors.ParseError) {
	rest := input.rest()
	width := strings.IndexFunc(rest, func(r rune) bool {
		return !isAlphanumeric(r)
	})
	if width == -1 {
		width = len(rest)
	}
	if width == 0 {
		return "", input.fail("alphanumeric " + name)
	}

	input.offset += width
	return rest[:width], nil
}

func (input *cursor) spacedToken(name string) (string, *errors.ParseError) {
	if err := input.space1(); err != nil {
		return "", err
	}
	return input.alphanumeric1(name)
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
