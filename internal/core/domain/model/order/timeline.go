package order

import "time"

// Timeline holds the creation time and one optional stamp per transition.
// A nil stamp means the transition has not happened.
type Timeline struct {
	createdAt   time.Time
	acceptedAt  *time.Time
	readyAt     *time.Time
	assignedAt  *time.Time
	deliveredAt *time.Time
	paidAt      *time.Time
}

func (t Timeline) CreatedAt() time.Time {
	return t.createdAt
}

func (t Timeline) AcceptedAt() *time.Time {
	return copyTime(t.acceptedAt)
}

func (t Timeline) ReadyAt() *time.Time {
	return copyTime(t.readyAt)
}

func (t Timeline) AssignedAt() *time.Time {
	return copyTime(t.assignedAt)
}

func (t Timeline) DeliveredAt() *time.Time {
	return copyTime(t.deliveredAt)
}

func (t Timeline) PaidAt() *time.Time {
	return copyTime(t.paidAt)
}

// stampFor returns the slot written when transition fires; Reject has none.
func (t *Timeline) stampFor(transition Transition) **time.Time {
	switch transition {
	case TransitionAccept:
		return &t.acceptedAt
	case TransitionMarkReady:
		return &t.readyAt
	case TransitionAssign:
		return &t.assignedAt
	case TransitionDeliver:
		return &t.deliveredAt
	case TransitionSettle:
		return &t.paidAt
	case TransitionReject:
	}
	return nil
}

func (t Timeline) clone() Timeline {
	return Timeline{
		createdAt:   t.createdAt,
		acceptedAt:  copyTime(t.acceptedAt),
		readyAt:     copyTime(t.readyAt),
		assignedAt:  copyTime(t.assignedAt),
		deliveredAt: copyTime(t.deliveredAt),
		paidAt:      copyTime(t.paidAt),
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
