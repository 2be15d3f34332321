package toast

import "fmt"

// ActionType identifies the kind of state transition a dispatched Action requests.
type ActionType int

const (
	ActionAdd ActionType = iota
	ActionUpdate
	ActionDismiss
	ActionRemove
)

func (t ActionType) String() string {
	switch t {
	case ActionAdd:
		return "add"
	case ActionUpdate:
		return "update"
	case ActionDismiss:
		return "dismiss"
	case ActionRemove:
		return "remove"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// Action is a state transition request. Use the constructor functions rather
// than building one by hand.
type Action struct {
	Type  ActionType
	Toast Toast  // ActionAdd
	Patch Patch  // ActionUpdate
	ID    string // ActionDismiss, ActionRemove; empty means every toast
}

// Add requests that t be prepended to the list.
func Add(t Toast) Action { return Action{Type: ActionAdd, Toast: t} }

// Update requests a shallow merge of p into the toast with p.ID.
func Update(p Patch) Action { return Action{Type: ActionUpdate, Patch: p} }

// Dismiss requests that the toast with id be closed. An empty id closes all.
func Dismiss(id string) Action { return Action{Type: ActionDismiss, ID: id} }

// Remove requests that the toast with id be deleted. An empty id clears the list.
func Remove(id string) Action { return Action{Type: ActionRemove, ID: id} }

// Reduce computes the next state for action. It never mutates state and never
// schedules work; removal timers are the Store's concern. A transition that
// targets an unknown id returns state unchanged.
func Reduce(state State, action Action, limit int) State {
	switch action.Type {
	case ActionAdd:
		n := len(state.Toasts) + 1
		if limit > 0 && n > limit {
			n = limit
		}
		next := make([]Toast, 0, n)
		next = append(next, action.Toast)
		for _, t := range state.Toasts {
			if len(next) == n {
				break
			}
			next = append(next, t)
		}
		return State{Toasts: next}

	case ActionUpdate:
		idx := indexOf(state.Toasts, action.Patch.ID)
		if idx < 0 {
			return state
		}
		next := state.clone()
		next.Toasts[idx] = action.Patch.apply(next.Toasts[idx])
		return next

	case ActionDismiss:
		if action.ID != "" {
			idx := indexOf(state.Toasts, action.ID)
			if idx < 0 {
				return state
			}
			next := state.clone()
			next.Toasts[idx].Open = false
			return next
		}
		if len(state.Toasts) == 0 {
			return state
		}
		next := state.clone()
		for i := range next.Toasts {
			next.Toasts[i].Open = false
		}
		return next

	case ActionRemove:
		if action.ID == "" {
			if len(state.Toasts) == 0 {
				return state
			}
			return State{Toasts: []Toast{}}
		}
		idx := indexOf(state.Toasts, action.ID)
		if idx < 0 {
			return state
		}
		next := make([]Toast, 0, len(state.Toasts)-1)
		next = append(next, state.Toasts[:idx]...)
		next = append(next, state.Toasts[idx+1:]...)
		return State{Toasts: next}
	}

	return state
}

func indexOf(toasts []Toast, id string) int {
	if id == "" {
		return -1
	}
	for i, t := range toasts {
		if t.ID == id {
			return i
		}
	}
	return -1
}
