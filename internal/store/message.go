package store

import (
	"context"

	"clinic-records-api/internal/model"
)

func (s *Store) CreateMessage(ctx context.Context, m *model.Message) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO messages (id, first_name, last_name, email, phone, message)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		m.ID, m.FirstName, m.LastName, m.Email, m.Phone, m.Message,
	)
	return err
}

func (s *Store) Messages(ctx context.Context) ([]model.Message, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, first_name, last_name, email, phone, message, created_at
		 FROM messages ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone,
			&m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
