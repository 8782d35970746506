// Package form implements the add-task entry form as a pure state machine.
package form

import (
	"errors"
	"strings"

	"github.com/sandeepkv93/taskdash/internal/model"
	"github.com/sandeepkv93/taskdash/internal/store"
)

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is matches any ValidationError with the same reason.
func (e *ValidationError) Is(target error) bool {
	var other *ValidationError
	if !errors.As(target, &other) {
		return false
	}
	return other.Reason == e.Reason
}

var (
	ErrTitleRequired   = &ValidationError{Reason: "title required"}
	ErrDueDateRequired = &ValidationError{Reason: "due date required"}
	ErrDueDateInvalid  = &ValidationError{Reason: "due date invalid"}
)

// Draft is the unsaved form content. DueDate holds the raw YYYY-MM-DD text.
type Draft struct {
	Title       string
	Description string
	Priority    model.Priority
	DueDate     string
}

func NewDraft() Draft {
	return Draft{Priority: model.PriorityMedium}
}

// Validate checks the title before the due date and returns the trimmed
// input for the store.
func Validate(d Draft) (store.Input, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return store.Input{}, ErrTitleRequired
	}
	rawDue := strings.TrimSpace(d.DueDate)
	if rawDue == "" {
		return store.Input{}, ErrDueDateRequired
	}
	due, err := model.ParseDate(rawDue)
	if err != nil {
		return store.Input{}, ErrDueDateInvalid
	}
	priority := d.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.IsValid() {
		parsed, err := model.ParsePriority(string(priority))
		if err != nil {
			return store.Input{}, &ValidationError{Reason: "priority invalid"}
		}
		priority = parsed
	}
	return store.Input{
		Title:       title,
		Description: strings.TrimSpace(d.Description),
		Priority:    priority,
		DueDate:     due,
	}, nil
}
