package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/timada-org/todos/internal/core"
)

func (s *Store) CreateTodo(owner string, input *core.CreateTodoInput) (*core.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.UserExists(owner)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, core.ErrOwnerNotFound
	}

	todo := core.Todo{
		Title:    input.Title,
		Priority: core.PriorityMedium,
		Status:   core.StatusPending,
		UserName: owner,
	}

	if input.Description != nil {
		todo.Description = *input.Description
	}

	if input.DueDate != nil {
		todo.DueDate = *input.DueDate
	}

	if input.Priority != nil {
		todo.Priority = *input.Priority
	}

	if err := s.db.Create(&todo).Error; err != nil {
		return nil, storeErr(err)
	}

	return &todo, nil
}

// GetTodo is scoped by both id and owner: the same error comes back whether
// the id never existed or belongs to another user.
func (s *Store) GetTodo(owner string, id uint64) (*core.Todo, error) {
	var todo core.Todo

	err := s.db.Where("id = ? AND user_name = ?", id, owner).First(&todo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrTodoNotFound
		}

		return nil, storeErr(err)
	}

	return &todo, nil
}

func (s *Store) ListTodos(owner string) ([]core.Todo, error) {
	exists, err := s.UserExists(owner)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, core.ErrOwnerNotFound
	}

	var todos []core.Todo
	if err := s.db.Where("user_name = ?", owner).Order("id").Find(&todos).Error; err != nil {
		return nil, storeErr(err)
	}

	core.SortTodos(todos)

	return todos, nil
}

// UpdateTodo applies only the fields present in input. An empty input
// returns the stored record without touching the database.
func (s *Store) UpdateTodo(owner string, id uint64, input *core.UpdateTodoInput) (*core.Todo, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	todo, err := s.GetTodo(owner, id)
	if err != nil {
		return nil, err
	}

	if input.Empty() {
		return todo, nil
	}

	updates := make(map[string]any)

	if input.Title != nil {
		updates["title"] = *input.Title
		todo.Title = *input.Title
	}

	if input.Description != nil {
		updates["description"] = *input.Description
		todo.Description = *input.Description
	}

	if input.DueDate != nil {
		updates["due_date"] = *input.DueDate
		todo.DueDate = *input.DueDate
	}

	if input.Priority != nil {
		updates["priority"] = *input.Priority
		todo.Priority = *input.Priority
	}

	if input.Status != nil {
		updates["status"] = *input.Status
		todo.Status = *input.Status
	}

	err = s.db.Model(&core.Todo{}).
		Where("id = ? AND user_name = ?", id, owner).
		Updates(updates).Error
	if err != nil {
		return nil, storeErr(err)
	}

	return todo, nil
}

func (s *Store) DeleteTodo(owner string, id uint64) error {
	result := s.db.Where("id = ? AND user_name = ?", id, owner).Delete(&core.Todo{})
	if result.Error != nil {
		return storeErr(result.Error)
	}

	if result.RowsAffected == 0 {
		return core.ErrTodoNotFound
	}

	return nil
}
