package domain

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

type Language string

const (
	LanguageGerman  Language = "de"
	LanguageEnglish Language = "en"
)

type Appointment struct {
	ID           string            `json:"id"`
	Date         time.Time         `json:"date"`
	TimeSlot     string            `json:"time_slot"`
	PatientName  string            `json:"patient_name"`
	PatientEmail string            `json:"patient_email"`
	PatientPhone string            `json:"patient_phone"`
	Reason       *string           `json:"reason,omitempty"`
	Status       AppointmentStatus `json:"status"`
	CancelToken  string            `json:"-"`
	Language     Language          `json:"language"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type CreateAppointmentDTO struct {
	Date     string   `json:"date" binding:"required"`
	TimeSlot string   `json:"time_slot" binding:"required"`
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required"`
	Phone    string   `json:"phone" binding:"required"`
	Reason   *string  `json:"reason,omitempty"`
	Language Language `json:"language" binding:"omitempty,oneof=de en"`
}

// AdminCreateAppointmentDTO is the back-office variant: email is optional
// (phone bookings), the status may be set directly and the booking-window
// rules do not apply.
type AdminCreateAppointmentDTO struct {
	Date     string            `json:"date" binding:"required"`
	TimeSlot string            `json:"time_slot" binding:"required"`
	Name     string            `json:"name" binding:"required"`
	Email    string            `json:"email"`
	Phone    string            `json:"phone" binding:"required"`
	Reason   *string           `json:"reason,omitempty"`
	Status   AppointmentStatus `json:"status" binding:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

type UpdateAppointmentStatusDTO struct {
	Status AppointmentStatus `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
}

type CancelAppointmentDTO struct {
	Token string `json:"token" binding:"required"`
}

type AppointmentFilter struct {
	Date     *time.Time
	Status   *AppointmentStatus
	FromDate *time.Time
}

// DayAvailability is the availability partition for one calendar day. The
// slices keep generation order; AvailableSlots is always a subset of
// AllSlots and disjoint from BookedSlots.
type DayAvailability struct {
	Date           string   `json:"date"`
	AllSlots       []string `json:"allSlots"`
	BookedSlots    []string `json:"bookedSlots"`
	AvailableSlots []string `json:"availableSlots"`
}

// DashboardStats backs the admin dashboard header.
type DashboardStats struct {
	TodayAppointments   int `json:"today_appointments"`
	PendingAppointments int `json:"pending_appointments"`
	WeekAppointments    int `json:"week_appointments"`
	TotalPatients       int `json:"total_patients"`
}
