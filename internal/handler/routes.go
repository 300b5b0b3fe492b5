package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"clinic-records-api/internal/httperr"
	"clinic-records-api/internal/middleware"
	"clinic-records-api/internal/model"
)

// Routes builds the full API router. rl throttles only the open
// credential endpoints.
func (h *Handler) Routes(rl *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}))

	admin := middleware.RequireRole(model.RoleAdmin, middleware.AdminCookie, h.store, h.cfg.Secret)
	patient := middleware.RequireRole(model.RolePatient, middleware.PatientCookie, h.store, h.cfg.Secret)
	limited := middleware.Limit(rl)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/message", func(r chi.Router) {
			r.Post("/send", httperr.Handler(h.sendMessage))
			r.With(admin).Get("/getall", httperr.Handler(h.getAllMessages))
		})

		r.Route("/user", func(r chi.Router) {
			r.With(limited).Post("/patient/register", httperr.Handler(h.patientRegister))
			r.With(limited).Post("/login", httperr.Handler(h.login))
			r.Post("/admin/addnew", httperr.Handler(h.addNewAdmin))
			r.With(admin).Post("/doctor/addnew", httperr.Handler(h.addNewDoctor))
			r.Get("/doctors", httperr.Handler(h.getAllDoctors))
			r.With(admin).Get("/admin/me", httperr.Handler(h.getUserDetails))
			r.With(patient).Get("/patient/me", httperr.Handler(h.getUserDetails))
			r.With(admin).Get("/admin/logout", httperr.Handler(h.logoutAdmin))
			r.With(patient).Get("/patient/logout", httperr.Handler(h.logoutPatient))
		})

		r.Route("/appointment", func(r chi.Router) {
			r.With(patient).Post("/post", httperr.Handler(h.postAppointment))
			r.With(admin).Get("/getall", httperr.Handler(h.getAllAppointments))
			r.With(admin).Put("/update/{id}", httperr.Handler(h.updateAppointmentStatus))
			r.With(admin).Delete("/delete/{id}", httperr.Handler(h.deleteAppointment))
		})
	})

	return r
}
