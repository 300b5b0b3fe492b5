package store

import (
	"context"

	"clinic-records-api/internal/model"
)

const userColumns = `id, first_name, last_name, email, phone, dob, gender,
	password_hash, role, doctor_department, doc_avatar_public_id,
	doc_avatar_url, created_at, updated_at`

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, first_name, last_name, email, phone, dob, gender,
		   password_hash, role, doctor_department, doc_avatar_public_id, doc_avatar_url)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		u.ID, u.FirstName, u.LastName, u.Email, u.Phone, u.DOB, u.Gender,
		u.PasswordHash, u.Role, u.DoctorDepartment, u.AvatarPublicID, u.AvatarURL,
	)
	return err
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.DOB, &u.Gender,
		&u.PasswordHash, &u.Role, &u.DoctorDepartment, &u.AvatarPublicID,
		&u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.DOB, &u.Gender,
		&u.PasswordHash, &u.Role, &u.DoctorDepartment, &u.AvatarPublicID,
		&u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Store) Doctors(ctx context.Context) ([]model.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at`,
		model.RoleDoctor,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone,
			&u.DOB, &u.Gender, &u.PasswordHash, &u.Role, &u.DoctorDepartment,
			&u.AvatarPublicID, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// DoctorsByName matches doctors exactly on name and department. The
// caller decides what zero or multiple matches mean.
func (s *Store) DoctorsByName(ctx context.Context, firstName, lastName, department string) ([]model.User, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE role = $1 AND first_name = $2 AND last_name = $3 AND doctor_department = $4`,
		model.RoleDoctor, firstName, lastName, department,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone,
			&u.DOB, &u.Gender, &u.PasswordHash, &u.Role, &u.DoctorDepartment,
			&u.AvatarPublicID, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
