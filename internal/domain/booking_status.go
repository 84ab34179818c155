package domain

// BookingStatus is the booking lifecycle state.
type BookingStatus string

const (
	BookingPending     BookingStatus = "pending"
	BookingApproved    BookingStatus = "approved"
	BookingRescheduled BookingStatus = "rescheduled"
	BookingCancelled   BookingStatus = "cancelled"
	BookingCompleted   BookingStatus = "completed"
)

// BookingAction is an operation attempted against a booking.
type BookingAction string

const (
	ActionApprove    BookingAction = "approve"
	ActionCancel     BookingAction = "cancel"
	ActionReschedule BookingAction = "reschedule"
	ActionResubmit   BookingAction = "resubmit"
	ActionComplete   BookingAction = "complete"
)

// transitions maps current status -> action -> next status. Anything
// absent here is an illegal transition; cancelled and completed are
// terminal. A rescheduled booking re-enters approval via resubmit.
var transitions = map[BookingStatus]map[BookingAction]BookingStatus{
	BookingPending: {
		ActionApprove: BookingApproved,
		ActionCancel:  BookingCancelled,
	},
	BookingApproved: {
		ActionReschedule: BookingRescheduled,
		ActionCancel:     BookingCancelled,
		ActionComplete:   BookingCompleted,
	},
	BookingRescheduled: {
		ActionResubmit: BookingPending,
	},
}

// actionRoles guards which roles may perform each action.
var actionRoles = map[BookingAction][]Role{
	ActionApprove:    {RoleAdmin, RoleTeacher},
	ActionCancel:     {RoleAdmin, RoleTeacher, RoleStudent},
	ActionReschedule: {RoleAdmin, RoleTeacher, RoleStudent},
	ActionResubmit:   {RoleAdmin, RoleTeacher, RoleStudent},
	ActionComplete:   {RoleAdmin, RoleTeacher},
}

// NextStatus resolves the status an action leads to from the current
// one, without checking who is asking.
func NextStatus(current BookingStatus, action BookingAction) (BookingStatus, error) {
	byAction, ok := transitions[current]
	if !ok {
		return "", ConflictError{Resource: "booking", Msg: "status " + string(current) + " is terminal"}
	}
	next, ok := byAction[action]
	if !ok {
		return "", ConflictError{Resource: "booking", Msg: "cannot " + string(action) + " a " + string(current) + " booking"}
	}
	return next, nil
}

// CanTransition reports whether any action legally moves from -> to.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition applies an action with the actor's role guard. Illegal
// transitions return ConflictError; disallowed roles return PolicyError.
func Transition(current BookingStatus, action BookingAction, actor Actor) (BookingStatus, error) {
	allowed := false
	for _, r := range actionRoles[action] {
		if actor.Role == r {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", PolicyError{Actor: string(actor.Role), Action: string(action)}
	}
	return NextStatus(current, action)
}
