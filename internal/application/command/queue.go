package command

// Dispatcher accepts commands during render.
type Dispatcher interface {
	Dispatch(c Command)
}

// Queue collects one frame's commands in arrival order.
type Queue struct {
	items []Command
}

// NewQueue creates a queue with room for size commands.
func NewQueue(size int) *Queue {
	if size < 1 {
		size = 16
	}
	return &Queue{items: make([]Command, 0, size)}
}

// Dispatch appends c. Nil commands are dropped.
func (q *Queue) Dispatch(c Command) {
	if c == nil {
		return
	}
	q.items = append(q.items, c)
}

// Drain returns the queued commands in arrival order and empties the queue.
func (q *Queue) Drain() []Command {
	out := q.items
	q.items = make([]Command, 0, cap(out))
	return out
}

