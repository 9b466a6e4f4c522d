package core

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Rank tables for the list order. Lower sorts first: open work before done
// work, urgent before relaxed. Every enum member must appear here.
var statusRank = map[Status]int{
	StatusPending:    1,
	StatusInProgress: 2,
	StatusCompleted:  3,
}

var priorityRank = map[Priority]int{
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

type Todo struct {
	ID          uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description,omitempty" gorm:"size:500"`
	DueDate     string    `json:"due_date,omitempty"`
	Priority    Priority  `json:"priority" gorm:"size:16;default:medium;check:priority IN ('low','medium','high')"`
	Status      Status    `json:"status" gorm:"size:16;default:pending;check:status IN ('pending','in_progress','completed')"`
	CreatedAt   time.Time `json:"created_at"`
	UserName    string    `json:"-" gorm:"index;not null"`
}
