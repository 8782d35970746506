package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeFilter Type = "filter"
	TypeSort   Type = "sort"
	TypeToggle Type = "toggle"
	TypeDelete Type = "delete"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs holds raw field text; the form validates it.
type AddArgs struct {
	Title    string
	Due      string
	Priority string
}

type FilterArgs struct {
	Filter string
}

type SortArgs struct {
	Key string
}

type TargetArgs struct {
	ID string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Filter *FilterArgs
	Sort   *SortArgs
	Toggle *TargetArgs
	Delete *TargetArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeFilter, "show":
		return parseFilter(input, args)
	case TypeSort:
		return parseSort(input, args)
	case TypeToggle, "done":
		return parseTarget(input, TypeToggle, args)
	case TypeDelete, "rm":
		return parseTarget(input, TypeDelete, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd splits "add <title words> due:<date> prio:<priority>". Title words
// and options may appear in any order.
func parseAdd(raw string, args []string) (Command, error) {
	out := AddArgs{}
	title := make([]string, 0, len(args))
	for _, arg := range args {
		lower := strings.ToLower(arg)
		switch {
		case strings.HasPrefix(lower, "due:"):
			out.Due = strings.TrimSpace(arg[len("due:"):])
		case strings.HasPrefix(lower, "prio:"):
			out.Priority = strings.TrimSpace(arg[len("prio:"):])
		case strings.HasPrefix(lower, "priority:"):
			out.Priority = strings.TrimSpace(arg[len("priority:"):])
		default:
			title = append(title, arg)
		}
	}
	out.Title = strings.TrimSpace(strings.Join(title, " "))
	return Command{Type: TypeAdd, Raw: raw, Add: &out}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires all, active or completed"}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Filter: strings.ToLower(args[0])}}, nil
}

func parseSort(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sort requires priority or due"}
	}
	return Command{Type: TypeSort, Raw: raw, Sort: &SortArgs{Key: args[0]}}, nil
}

func parseTarget(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires exactly one task id", typ)}
	}
	target := &TargetArgs{ID: args[0]}
	cmd := Command{Type: typ, Raw: raw}
	if typ == TypeToggle {
		cmd.Toggle = target
	} else {
		cmd.Delete = target
	}
	return cmd, nil
}
