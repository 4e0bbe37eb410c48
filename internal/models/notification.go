package models

import (
	"time"

	"github.com/mwhitfield/caretrack/internal/constants"
)

// Notification is the payload attached to a scheduled trigger. It carries
// enough obligation identity that a quick action can resolve back to the
// obligation without a database round-trip.
type Notification struct {
	Title        string                     `json:"title"`
	Body         string                     `json:"body"`
	Kind         constants.NotificationKind `json:"kind"`
	ObligationID string                     `json:"obligation_id,omitempty"`
	Name         string                     `json:"name,omitempty"`
	Dosage       string                     `json:"dosage,omitempty"`
	Priority     int                        `json:"priority"` // higher fires louder; overdue alerts are elevated
}

// Trigger is one registered entry in the device-notifier registry: either a
// calendar-recurring trigger (hour/minute, repeats daily) or a one-time
// trigger at a fixed instant.
type Trigger struct {
	Handle    string                 `json:"handle"`
	Owner     constants.TriggerOwner `json:"owner"`
	Recurring bool                   `json:"recurring"`
	Hour      int                    `json:"hour"`
	Minute    int                    `json:"minute"`
	FireAt    time.Time              `json:"fire_at,omitempty"` // one-time triggers only
	Payload   Notification           `json:"payload"`
	CreatedAt time.Time              `json:"created_at"`
}

// Delivery records one fired notification so snooze and mark-done quick
// actions can be resolved later. Dispositions are independent per delivery.
type Delivery struct {
	ID          string       `json:"id"`
	Payload     Notification `json:"payload"`
	DeliveredAt time.Time    `json:"delivered_at"`
	Snoozed     bool         `json:"snoozed"`
	Dismissed   bool         `json:"dismissed"`
}
