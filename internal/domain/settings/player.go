package settings

import "fmt"

// PlayerKind tells whether a seat is controlled by a person or the computer.
type PlayerKind int

const (
	Human PlayerKind = iota
	CPU
)

// String returns the string representation of the player kind
func (k PlayerKind) String() string {
	switch k {
	case Human:
		return "Human"
	case CPU:
		return "CPU"
	default:
		return "Unknown"
	}
}

// Player is one configured seat.
type Player struct {
	Kind  PlayerKind
	Name  string
	Level int
	XP    int
}

// DefaultName is the name shown for an unnamed seat.
func DefaultName(index int) string {
	return fmt.Sprintf("PLAYER %d", index+1)
}

type roster struct {
	list []Player
}

func (r *roster) set(index, count int, p Player) error {
	if index < 0 || index >= count {
		return fmt.Errorf("%w: %d (players: %d)", ErrPlayerIndex, index, count)
	}
	for len(r.list) <= index {
		r.list = append(r.list, Player{Name: DefaultName(len(r.list)), Kind: CPU})
	}
	if p.Name == "" {
		p.Name = DefaultName(index)
	}
	r.list[index] = p
	return nil
}

func (r *roster) truncate(count int) {
	if len(r.list) > count {
		r.list = r.list[:count]
	}
}

func (r *roster) players() []Player {
	out := make([]Player, len(r.list))
	copy(out, r.list)
	return out
}
