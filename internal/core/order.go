package core

import "sort"

// SortTodos arranges a user's todos for listing: by status rank, then
// priority rank, then due date ascending. Todos without a due date come
// after dated ones in the same status/priority bucket. Id breaks remaining
// ties, so repeated calls over the same records yield the same order.
func SortTodos(todos []Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		a, b := &todos[i], &todos[j]

		if statusRank[a.Status] != statusRank[b.Status] {
			return statusRank[a.Status] < statusRank[b.Status]
		}

		if priorityRank[a.Priority] != priorityRank[b.Priority] {
			return priorityRank[a.Priority] < priorityRank[b.Priority]
		}

		if a.DueDate != b.DueDate {
			if a.DueDate == "" {
				return false
			}
			if b.DueDate == "" {
				return true
			}
			// ISO dates order lexicographically.
			return a.DueDate < b.DueDate
		}

		return a.ID < b.ID
	})
}
