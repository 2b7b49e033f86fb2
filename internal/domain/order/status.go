package order

import "github.com/Prawin5557/Uzhavar-Connect/internal/domain/user"

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Terminal reports whether no transition leads out of the status.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Action string

const (
	ActionAccept   Action = "accept"
	ActionReject   Action = "reject"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

func ParseAction(raw string) (Action, error) {
	switch Action(raw) {
	case ActionAccept, ActionReject, ActionCancel, ActionComplete:
		return Action(raw), nil
	default:
		return "", ErrUnknownAction
	}
}

type transitionKey struct {
	from   Status
	role   user.Role
	action Action
}

// transitions is the single place the lifecycle policy lives. Every
// (status, role, action) triple not listed here is rejected.
var transitions = map[transitionKey]Status{
	{StatusPending, user.RoleBuyer, ActionCancel}:     StatusCancelled,
	{StatusPending, user.RoleSeller, ActionAccept}:    StatusAccepted,
	{StatusPending, user.RoleSeller, ActionReject}:    StatusCancelled,
	{StatusAccepted, user.RoleSeller, ActionComplete}: StatusCompleted,
}

// NextStatus resolves the transition table. The rejection is an error
// value so callers can tell "nothing happened" apart from "succeeded".
func NextStatus(current Status, role user.Role, action Action) (Status, error) {
	next, ok := transitions[transitionKey{current, role, action}]
	if !ok {
		return current, ErrTransitionRejected
	}
	return next, nil
}
