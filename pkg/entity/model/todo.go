package model

import (
	"bytes"
	"encoding/json"
)

// Todo is the model entity for the todos table.
type Todo struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Done        bool    `json:"done"`
}

// CreateTodoInput represents the input for creating todos.
// The identifier is always assigned by the store.
type CreateTodoInput struct {
	Title       string
	Description *string
	Done        bool
}

// UpdateTodoInput replaces every mutable field of an existing todo.
type UpdateTodoInput struct {
	ID          int
	Title       string
	Description *string
	Done        bool
}

// PatchTodoInput overwrites only the fields that were supplied.
type PatchTodoInput struct {
	ID          int
	Title       *string
	Description OptionalString
	Done        *bool
}

// IsEmpty reports whether no field was supplied.
func (p PatchTodoInput) IsEmpty() bool {
	return p.Title == nil && !p.Description.Set && p.Done == nil
}

// Apply returns a copy of t with the supplied fields overwritten.
func (p PatchTodoInput) Apply(t Todo) Todo {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description.Set {
		t.Description = p.Description.Value
	}
	if p.Done != nil {
		t.Done = *p.Done
	}
	return t
}

// OptionalString tells an omitted JSON field apart from an explicit null.
// Set is true whenever the key was present, Value is nil for null.
type OptionalString struct {
	Set   bool
	Value *string
}

// NewOptionalString returns a set OptionalString holding s.
func NewOptionalString(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

// NullOptionalString returns a set OptionalString holding null.
func NullOptionalString() OptionalString {
	return OptionalString{Set: true}
}

// UnmarshalJSON is only invoked when the key exists, including for null.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// Pagination is an offset/limit window over todos ordered by id.
type Pagination struct {
	Skip  int
	Limit int
}

// Default pagination window.
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// NewPagination returns the default window.
func NewPagination() Pagination {
	return Pagination{Skip: DefaultSkip, Limit: DefaultLimit}
}
