package model

// Todo is the domain model for a todo entry.
// Values are never mutated in place; use WithDone to derive a new one.
type Todo struct {
	ID   int64  `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
	Done bool   `json:"done" yaml:"done"`
}

// WithDone returns a copy of t with its completion flag set to done.
func (t Todo) WithDone(done bool) Todo {
	t.Done = done
	return t
}

// Toggled returns a copy of t with its completion flag inverted.
func (t Todo) Toggled() Todo { return t.WithDone(!t.Done) }

// IndexOf returns the position of the todo with the given id, or -1.
func IndexOf(todos []Todo, id int64) int {
	for i, t := range todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Stats counts done and pending todos.
func Stats(todos []Todo) (done, pending int) {
	for _, t := range todos {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// MaxID returns the largest identifier in todos, or 0 for an empty list.
func MaxID(todos []Todo) int64 {
	var max int64
	for _, t := range todos {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}
