package dto

import "time"

type BookingListDTO struct {
	ID          uint      `json:"id"`
	Date        time.Time `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
}
