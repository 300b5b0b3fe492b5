package handler

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"clinic-records-api/internal/model"
	"clinic-records-api/internal/upload"
)

// Store is the record-store contract the handlers consume. *store.Store
// satisfies it; tests swap in an in-memory fake.
type Store interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
	Doctors(ctx context.Context) ([]model.User, error)
	DoctorsByName(ctx context.Context, firstName, lastName, department string) ([]model.User, error)

	CreateAppointment(ctx context.Context, a *model.Appointment) error
	Appointments(ctx context.Context) ([]model.Appointment, error)
	AppointmentByID(ctx context.Context, id string) (*model.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id, status string) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error

	CreateMessage(ctx context.Context, m *model.Message) error
	Messages(ctx context.Context) ([]model.Message, error)
}

// Config carries the runtime knobs the handlers need.
type Config struct {
	Secret         string
	TokenTTL       time.Duration
	CookieTTL      time.Duration
	AllowedOrigins []string
}

type Handler struct {
	store    Store
	uploader upload.Uploader
	validate *validator.Validate
	cfg      Config
}

func New(st Store, up upload.Uploader, cfg Config) *Handler {
	return &Handler{
		store:    st,
		uploader: up,
		validate: validator.New(),
		cfg:      cfg,
	}
}
