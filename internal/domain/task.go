package domain

import "time"

type Task struct {
	ID                string
	Title             string
	EstimatePomodoros int
	Note              string
	Status            TaskStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TaskPatch carries a partial task update. Nil fields are left untouched.
type TaskPatch struct {
	Title             *string
	EstimatePomodoros *int
	Note              *string
	Status            *TaskStatus
}

// Apply copies the set fields of the patch onto the task.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.EstimatePomodoros != nil {
		t.EstimatePomodoros = *p.EstimatePomodoros
	}
	if p.Note != nil {
		t.Note = *p.Note
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}
