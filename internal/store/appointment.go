package store

import (
	"context"

	"clinic-records-api/internal/model"
)

const appointmentColumns = `id, first_name, last_name, email, phone, dob, gender,
	appointment_date, department, doctor_first_name, doctor_last_name,
	has_visited, address, doctor_id, patient_id, status, created_at, updated_at`

func scanAppointment(row interface{ Scan(...any) error }, a *model.Appointment) error {
	return row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.DOB,
		&a.Gender, &a.AppointmentDate, &a.Department, &a.DoctorFirstName,
		&a.DoctorLastName, &a.HasVisited, &a.Address, &a.DoctorID, &a.PatientID,
		&a.Status, &a.CreatedAt, &a.UpdatedAt)
}

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments (id, first_name, last_name, email, phone, dob, gender,
		   appointment_date, department, doctor_first_name, doctor_last_name,
		   has_visited, address, doctor_id, patient_id, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`,
		a.ID, a.FirstName, a.LastName, a.Email, a.Phone, a.DOB, a.Gender,
		a.AppointmentDate, a.Department, a.DoctorFirstName, a.DoctorLastName,
		a.HasVisited, a.Address, a.DoctorID, a.PatientID, a.Status,
	)
	return err
}

func (s *Store) Appointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := scanAppointment(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) AppointmentByID(ctx context.Context, id string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := scanAppointment(s.pool.QueryRow(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id), a)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) UpdateAppointmentStatus(ctx context.Context, id, status string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := scanAppointment(s.pool.QueryRow(ctx,
		`UPDATE appointments SET status = $1, updated_at = NOW()
		 WHERE id = $2
		 RETURNING `+appointmentColumns, status, id), a)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}
