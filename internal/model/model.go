package model

import "time"

type Role string

const (
	RoleAdmin   Role = "Admin"
	RolePatient Role = "Patient"
	RoleDoctor  Role = "Doctor"
)

// Appointment lifecycle. Any status may move to any other status.
const (
	StatusPending  = "pending"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

type User struct {
	ID               string    `json:"id"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	DOB              string    `json:"dob"`
	Gender           string    `json:"gender"`
	PasswordHash     string    `json:"-"`
	Role             Role      `json:"role"`
	DoctorDepartment string    `json:"doctorDepartment,omitempty"`
	AvatarPublicID   string    `json:"-"`
	AvatarURL        string    `json:"docAvatar,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type Appointment struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	DOB             string `json:"dob"`
	Gender          string `json:"gender"`
	AppointmentDate string `json:"appointment_date"`
	Department      string `json:"department"`
	// Doctor names are snapshotted at booking time and are not kept in
	// sync with later changes to the doctor record.
	DoctorFirstName string    `json:"doctor_firstName"`
	DoctorLastName  string    `json:"doctor_lastName"`
	HasVisited      bool      `json:"hasVisited"`
	Address         string    `json:"address"`
	DoctorID        string    `json:"doctorId"`
	PatientID       string    `json:"patientId"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type Message struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
