package entities

// Transition tables are built once and only read afterwards; accessors hand
// out copies so callers cannot mutate them.
var (
	projectTransitions = map[ProjectStatus][]ProjectStatus{
		ProjectStatusPending:    {ProjectStatusInProgress, ProjectStatusCancelled},
		ProjectStatusInProgress: {ProjectStatusCompleted, ProjectStatusCancelled},
		ProjectStatusCompleted:  {},
		ProjectStatusCancelled:  {},
	}

	// A dispute is resolved by releasing the funds; released is terminal.
	escrowTransitions = map[EscrowStatus][]EscrowStatus{
		EscrowStatusPending:  {EscrowStatusFunded, EscrowStatusDisputed},
		EscrowStatusFunded:   {EscrowStatusReleased, EscrowStatusDisputed},
		EscrowStatusReleased: {},
		EscrowStatusDisputed: {EscrowStatusReleased},
	}

	projectStatusOrder = []ProjectStatus{ProjectStatusPending, ProjectStatusInProgress, ProjectStatusCompleted, ProjectStatusCancelled}
	escrowStatusOrder  = []EscrowStatus{EscrowStatusPending, EscrowStatusFunded, EscrowStatusReleased, EscrowStatusDisputed}

	// pending is only ever set on creation
	settableEscrowStatuses = []EscrowStatus{EscrowStatusFunded, EscrowStatusReleased, EscrowStatusDisputed}
)

// ProjectStatuses lists every project status in lifecycle order
func ProjectStatuses() []ProjectStatus {
	return append([]ProjectStatus(nil), projectStatusOrder...)
}

// EscrowStatuses lists every escrow status in lifecycle order
func EscrowStatuses() []EscrowStatus {
	return append([]EscrowStatus(nil), escrowStatusOrder...)
}

// SettableEscrowStatuses lists the targets accepted by a status update
func SettableEscrowStatuses() []EscrowStatus {
	return append([]EscrowStatus(nil), settableEscrowStatuses...)
}

// IsValid reports whether the status is part of the project lifecycle
func (s ProjectStatus) IsValid() bool {
	_, ok := projectTransitions[s]
	return ok
}

// AllowedNext lists the statuses reachable in one step. Unknown statuses have none.
func (s ProjectStatus) AllowedNext() []ProjectStatus {
	next := projectTransitions[s]
	out := make([]ProjectStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether next is reachable from s in one step
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, candidate := range projectTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s
func (s ProjectStatus) IsTerminal() bool {
	return len(projectTransitions[s]) == 0
}

// IsValid reports whether the status is part of the escrow lifecycle
func (s EscrowStatus) IsValid() bool {
	_, ok := escrowTransitions[s]
	return ok
}

// IsSettable reports whether the status may be requested through a status update
func (s EscrowStatus) IsSettable() bool {
	for _, candidate := range settableEscrowStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// AllowedNext lists the statuses reachable in one step. Unknown statuses have none.
func (s EscrowStatus) AllowedNext() []EscrowStatus {
	next := escrowTransitions[s]
	out := make([]EscrowStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether next is reachable from s in one step
func (s EscrowStatus) CanTransitionTo(next EscrowStatus) bool {
	for _, candidate := range escrowTransitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s
func (s EscrowStatus) IsTerminal() bool {
	return len(escrowTransitions[s]) == 0
}
