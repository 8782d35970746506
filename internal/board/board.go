// Package board is the in-process surface the TUI talks to: the task store
// plus the current filter and sort selection.
package board

import (
	"github.com/sandeepkv93/taskdash/internal/form"
	"github.com/sandeepkv93/taskdash/internal/model"
	"github.com/sandeepkv93/taskdash/internal/projection"
	"github.com/sandeepkv93/taskdash/internal/store"
)

type Board struct {
	store   *store.Store
	filter  model.Filter
	sortKey model.SortKey
}

func New(s *store.Store) *Board {
	if s == nil {
		s = store.New(nil)
	}
	return &Board{
		store:   s,
		filter:  model.FilterAll,
		sortKey: model.SortByPriority,
	}
}

// Tasks returns the full collection in insertion order.
func (b *Board) Tasks() []model.Task {
	return b.store.Tasks()
}

func (b *Board) Get(id string) (model.Task, bool) {
	return b.store.Get(id)
}

func (b *Board) ProjectedView(filter model.Filter, sortKey model.SortKey) []model.Task {
	return projection.Project(b.store.Tasks(), filter, sortKey)
}

// View projects with the current selection.
func (b *Board) View() []model.Task {
	return b.ProjectedView(b.filter, b.sortKey)
}

func (b *Board) Summary() projection.Summary {
	return projection.Summarize(b.store.Tasks())
}

// AddTask validates d and appends it. The only error returned is a
// *form.ValidationError.
func (b *Board) AddTask(d form.Draft) (model.Task, error) {
	in, err := form.Validate(d)
	if err != nil {
		return model.Task{}, err
	}
	return b.store.Add(in), nil
}

// Append stores input that already passed form validation.
func (b *Board) Append(in store.Input) model.Task {
	return b.store.Add(in)
}

func (b *Board) ToggleComplete(id string) {
	b.store.ToggleComplete(id)
}

func (b *Board) DeleteTask(id string) {
	b.store.Delete(id)
}

func (b *Board) Filter() model.Filter {
	return b.filter
}

func (b *Board) SortKey() model.SortKey {
	return b.sortKey
}

func (b *Board) SetFilter(f model.Filter) {
	b.filter = f
}

func (b *Board) SetSortKey(k model.SortKey) {
	b.sortKey = k
}

// Version changes whenever the underlying collection does.
func (b *Board) Version() uint64 {
	return b.store.Version()
}
