package domain

// Lifecycle state of a Vehicle.
type State int

const (
	StateWaiting State = iota
	StateEnRoute
	StateArrived
	StateDestroyed
)

var stateNames = map[State]string{
	StateWaiting:   "WAITING",
	StateEnRoute:   "EN_ROUTE",
	StateArrived:   "ARRIVED",
	StateDestroyed: "DESTROYED",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}

// Event that may move a Vehicle between states.
type Trigger int

const (
	TriggerDepart Trigger = iota
	TriggerArrive
	TriggerLoseCrew
)

// Every legal move. A (state, trigger) pair with no row is a no-op, so the
// terminal states are terminal simply because they have no rows.
var transitions = map[State]map[Trigger]State{
	StateWaiting: {
		TriggerDepart:   StateEnRoute,
		TriggerLoseCrew: StateDestroyed,
	},
	StateEnRoute: {
		TriggerArrive:   StateArrived,
		TriggerLoseCrew: StateDestroyed,
	},
}

// Next state for trigger fired in s, and whether the table has such a move.
func next(s State, t Trigger) (State, bool) {
	to, ok := transitions[s][t]
	return to, ok
}
