package notification

import (
	"log"

	"gorm.io/gorm"

	"github.com/barberbook/booking-api/internal/metrics"
	"github.com/barberbook/booking-api/internal/models"
)

// Notification types emitted by the booking lifecycle.
const (
	TypeBookingCreated     = "booking_created"
	TypeBookingRescheduled = "booking_rescheduled"
	TypeStatusChanged      = "booking_status_changed"
)

type Event struct {
	UserID    uint
	Type      string
	Title     string
	Message   string
	BookingID *uint
}

// Dispatcher persists notifications off the request path. Delivery is
// best-effort: a full queue or a failed insert is logged and never fails
// the operation that produced the event.
type Dispatcher struct {
	db    *gorm.DB
	queue chan Event
}

func NewDispatcher(db *gorm.DB) *Dispatcher {
	d := &Dispatcher{
		db:    db,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		metrics.NotificationQueueLength.Set(float64(len(d.queue)))

		n := models.Notification{
			UserID:    ev.UserID,
			Type:      ev.Type,
			Title:     ev.Title,
			Message:   ev.Message,
			BookingID: ev.BookingID,
		}
		if err := d.db.Create(&n).Error; err != nil {
			log.Println("notification error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
		metrics.NotificationQueueLength.Set(float64(len(d.queue)))
	default:
		log.Println("notification queue full, dropping event")
	}
}
