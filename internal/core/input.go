package core

import (
	"time"
	"unicode/utf8"
)

const dueDateLayout = "2006-01-02"

// RegisterUserInput is the payload for user registration.
type RegisterUserInput struct {
	Name string `json:"name"`
}

func (in *RegisterUserInput) Validate() error {
	if n := utf8.RuneCountInString(in.Name); n < 3 || n > 20 {
		return &ValidationError{Field: "name", Reason: "must be between 3 and 20 characters"}
	}

	return nil
}

// CreateTodoInput is the payload for todo creation. Nil optional fields take
// their defaults.
type CreateTodoInput struct {
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	DueDate     *string   `json:"due_date"`
	Priority    *Priority `json:"priority"`
}

func (in *CreateTodoInput) Validate() error {
	if err := validateTitle(in.Title); err != nil {
		return err
	}

	if in.Description != nil {
		if err := validateDescription(*in.Description); err != nil {
			return err
		}
	}

	if in.DueDate != nil && *in.DueDate != "" {
		if err := validateDueDate(*in.DueDate); err != nil {
			return err
		}
	}

	if in.Priority != nil && !in.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: "must be one of low, medium, high"}
	}

	return nil
}

// UpdateTodoInput is the payload for a partial update. Nil means the field
// was omitted and keeps its stored value; a present empty description or
// due date clears it.
type UpdateTodoInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	DueDate     *string   `json:"due_date"`
	Priority    *Priority `json:"priority"`
	Status      *Status   `json:"status"`
}

// Empty reports whether no field is present. An empty update is valid and
// must leave the record untouched.
func (in *UpdateTodoInput) Empty() bool {
	return in.Title == nil &&
		in.Description == nil &&
		in.DueDate == nil &&
		in.Priority == nil &&
		in.Status == nil
}

func (in *UpdateTodoInput) Validate() error {
	if in.Title != nil {
		if err := validateTitle(*in.Title); err != nil {
			return err
		}
	}

	if in.Description != nil {
		if err := validateDescription(*in.Description); err != nil {
			return err
		}
	}

	if in.DueDate != nil && *in.DueDate != "" {
		if err := validateDueDate(*in.DueDate); err != nil {
			return err
		}
	}

	if in.Priority != nil && !in.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: "must be one of low, medium, high"}
	}

	if in.Status != nil && !in.Status.Valid() {
		return &ValidationError{Field: "status", Reason: "must be one of pending, in_progress, completed"}
	}

	return nil
}

func validateTitle(title string) error {
	if n := utf8.RuneCountInString(title); n < 1 || n > 100 {
		return &ValidationError{Field: "title", Reason: "must be between 1 and 100 characters"}
	}

	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > 500 {
		return &ValidationError{Field: "description", Reason: "must be at most 500 characters"}
	}

	return nil
}

func validateDueDate(dueDate string) error {
	if _, err := time.Parse(dueDateLayout, dueDate); err != nil {
		return &ValidationError{Field: "due_date", Reason: "must be a date in YYYY-MM-DD format"}
	}

	return nil
}
