package domain

import "testing"

func TestLegalTransitions(t *testing.T) {
	cases := []struct {
		from   BookingStatus
		action BookingAction
		want   BookingStatus
	}{
		{BookingPending, ActionApprove, BookingApproved},
		{BookingPending, ActionCancel, BookingCancelled},
		{BookingApproved, ActionReschedule, BookingRescheduled},
		{BookingApproved, ActionCancel, BookingCancelled},
		{BookingApproved, ActionComplete, BookingCompleted},
		{BookingRescheduled, ActionResubmit, BookingPending},
	}
	for _, c := range cases {
		got, err := NextStatus(c.from, c.action)
		if err != nil {
			t.Fatalf("%s + %s: unexpected error %v", c.from, c.action, err)
		}
		if got != c.want {
			t.Fatalf("%s + %s = %s, want %s", c.from, c.action, got, c.want)
		}
	}
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	for _, from := range []BookingStatus{BookingCancelled, BookingCompleted} {
		for _, action := range []BookingAction{ActionApprove, ActionCancel, ActionReschedule, ActionResubmit, ActionComplete} {
			if _, err := NextStatus(from, action); !IsConflict(err) {
				t.Fatalf("%s + %s should be a conflict, got %v", from, action, err)
			}
		}
	}
}

func TestCompletedCannotBeApproved(t *testing.T) {
	if CanTransition(BookingCompleted, BookingApproved) {
		t.Fatalf("completed -> approved must be illegal")
	}
}

func TestStudentCannotApprove(t *testing.T) {
	_, err := Transition(BookingPending, ActionApprove, Actor{UserID: 1, Role: RoleStudent})
	if !IsPolicy(err) {
		t.Fatalf("expected policy error, got %v", err)
	}
}

func TestStudentMayCancel(t *testing.T) {
	got, err := Transition(BookingPending, ActionCancel, Actor{UserID: 1, Role: RoleStudent})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != BookingCancelled {
		t.Fatalf("got %s, want cancelled", got)
	}
}

func TestTeacherMayApprove(t *testing.T) {
	got, err := Transition(BookingPending, ActionApprove, Actor{UserID: 2, Role: RoleTeacher})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != BookingApproved {
		t.Fatalf("got %s, want approved", got)
	}
}

func TestRescheduledReentersApprovalOnly(t *testing.T) {
	if _, err := NextStatus(BookingRescheduled, ActionApprove); !IsConflict(err) {
		t.Fatalf("rescheduled booking must resubmit before approval, got %v", err)
	}
}
