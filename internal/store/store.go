// Package store holds the dashboard's task collection.
//
// Every mutation builds a new slice and swaps it in, so a snapshot handed out
// by Tasks is never changed afterwards. The store is not safe for concurrent
// use; callers serialize access through the UI event loop.
package store

import (
	"slices"

	"github.com/sandeepkv93/taskdash/internal/model"
)

// Input carries the fields a caller supplies for a new task.
type Input struct {
	Title       string
	Description string
	Priority    model.Priority
	DueDate     model.Date
}

type Store struct {
	ids     IDGenerator
	issued  map[string]bool
	tasks   []model.Task
	version uint64
}

func New(ids IDGenerator, seed ...model.Task) *Store {
	if ids == nil {
		ids = NewSequence(1)
	}
	issued := make(map[string]bool, len(seed))
	for _, t := range seed {
		issued[t.ID] = true
	}
	return &Store{
		ids:    ids,
		issued: issued,
		tasks:  slices.Clone(seed),
	}
}

// Tasks returns the collection in insertion order.
func (s *Store) Tasks() []model.Task {
	return slices.Clone(s.tasks)
}

func (s *Store) Len() int {
	return len(s.tasks)
}

// Version increments on every effective mutation.
func (s *Store) Version() uint64 {
	return s.version
}

func (s *Store) Get(id string) (model.Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return model.Task{}, false
	}
	return s.tasks[idx], true
}

// Add appends a new, not yet completed task and returns it. Input is not
// validated here.
func (s *Store) Add(in Input) model.Task {
	task := model.Task{
		ID:          s.freshID(),
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}
	next := make([]model.Task, 0, len(s.tasks)+1)
	next = append(next, s.tasks...)
	next = append(next, task)
	s.replace(next)
	return task
}

// ToggleComplete flips the completed flag of the task with id. An unknown id
// is ignored and reported as false.
func (s *Store) ToggleComplete(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	next := slices.Clone(s.tasks)
	next[idx].Completed = !next[idx].Completed
	s.replace(next)
	return true
}

// Delete removes the task with id. An unknown id is ignored and reported as
// false.
func (s *Store) Delete(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	next := make([]model.Task, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:idx]...)
	next = append(next, s.tasks[idx+1:]...)
	s.replace(next)
	return true
}

func (s *Store) replace(next []model.Task) {
	s.tasks = next
	s.version++
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}

// freshID skips any id this store has already seen, including seeded and
// deleted tasks.
func (s *Store) freshID() string {
	for {
		id := s.ids.NextID()
		if !s.issued[id] {
			s.issued[id] = true
			return id
		}
	}
}
