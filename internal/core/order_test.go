package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timada-org/todos/internal/core"
)

func todo(id uint64, status core.Status, priority core.Priority, due string) core.Todo {
	return core.Todo{
		ID:       id,
		Title:    "task",
		Status:   status,
		Priority: priority,
		DueDate:  due,
		UserName: "alice",
	}
}

func ids(todos []core.Todo) []uint64 {
	out := make([]uint64, 0, len(todos))
	for _, t := range todos {
		out = append(out, t.ID)
	}

	return out
}

func TestSortTodos(t *testing.T) {

	t.Run("status dominates priority and date", func(t *testing.T) {
		todos := []core.Todo{
			todo(3, core.StatusCompleted, core.PriorityHigh, "2023-01-01"),
			todo(2, core.StatusPending, core.PriorityHigh, "2024-02-01"),
			todo(1, core.StatusPending, core.PriorityHigh, "2024-01-01"),
		}

		core.SortTodos(todos)

		assert.Equal(t, []uint64{1, 2, 3}, ids(todos))
	})

	t.Run("priority before due date", func(t *testing.T) {
		todos := []core.Todo{
			todo(1, core.StatusPending, core.PriorityLow, "2023-01-01"),
			todo(2, core.StatusPending, core.PriorityHigh, "2025-01-01"),
			todo(3, core.StatusPending, core.PriorityMedium, "2024-01-01"),
		}

		core.SortTodos(todos)

		assert.Equal(t, []uint64{2, 3, 1}, ids(todos))
	})

	t.Run("no due date sorts after dated in same bucket", func(t *testing.T) {
		todos := []core.Todo{
			todo(1, core.StatusPending, core.PriorityMedium, ""),
			todo(2, core.StatusPending, core.PriorityMedium, "2024-01-01"),
		}

		core.SortTodos(todos)

		assert.Equal(t, []uint64{2, 1}, ids(todos))
	})

	t.Run("id breaks full ties", func(t *testing.T) {
		todos := []core.Todo{
			todo(9, core.StatusInProgress, core.PriorityMedium, "2024-05-01"),
			todo(4, core.StatusInProgress, core.PriorityMedium, "2024-05-01"),
			todo(7, core.StatusInProgress, core.PriorityMedium, "2024-05-01"),
		}

		core.SortTodos(todos)

		assert.Equal(t, []uint64{4, 7, 9}, ids(todos))
	})

	t.Run("repeated sorts return identical order", func(t *testing.T) {
		todos := []core.Todo{
			todo(5, core.StatusCompleted, core.PriorityLow, ""),
			todo(1, core.StatusPending, core.PriorityHigh, "2024-01-01"),
			todo(3, core.StatusPending, core.PriorityHigh, ""),
			todo(2, core.StatusInProgress, core.PriorityMedium, "2024-03-01"),
		}

		core.SortTodos(todos)
		first := ids(todos)

		core.SortTodos(todos)
		second := ids(todos)

		require.Equal(t, first, second)
		assert.Equal(t, []uint64{1, 3, 2, 5}, first)
	})
}
