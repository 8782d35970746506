package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFilter  = errors.New("model: invalid filter")
	ErrInvalidSortKey = errors.New("model: invalid sort key")
)

type Filter string

const (
	FilterAll       Filter = "All"
	FilterActive    Filter = "Active"
	FilterCompleted Filter = "Completed"
)

var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

func (f Filter) IsValid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	default:
		return false
	}
}

func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

func ParseFilter(raw string) (Filter, error) {
	for _, f := range Filters {
		if strings.EqualFold(strings.TrimSpace(raw), string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFilter, raw)
}

type SortKey string

const (
	SortByPriority SortKey = "priority"
	SortByDueDate  SortKey = "dueDate"
)

var SortKeys = []SortKey{SortByPriority, SortByDueDate}

func (k SortKey) IsValid() bool {
	return k == SortByPriority || k == SortByDueDate
}

func (k SortKey) Next() SortKey {
	if k == SortByPriority {
		return SortByDueDate
	}
	return SortByPriority
}

// Label is the human name shown in the sort bar.
func (k SortKey) Label() string {
	switch k {
	case SortByPriority:
		return "Priority"
	case SortByDueDate:
		return "Due Date"
	default:
		return string(k)
	}
}

// ParseSortKey accepts "priority", "dueDate", "due", "due-date" and "due_date".
func ParseSortKey(raw string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "priority", "prio":
		return SortByPriority, nil
	case "duedate", "due", "due-date", "due_date":
		return SortByDueDate, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, raw)
	}
}
