package repo

import (
	"context"
	"database/sql"
	"time"
)

type Project struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	Name       string    `json:"name"`
	ConfigJSON string    `json:"config"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Lead struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email"`
	ConfigJSON string    `json:"config"`
	TotalAUD   float64   `json:"total_aud"`
	Status     string    `json:"status"`
	Notified   bool      `json:"notified"`
	CreatedAt  time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)

	SaveProject(ctx context.Context, userID int, name, configJSON string) (int, error)
	ListProjects(ctx context.Context, userID int) ([]Project, error)
	GetProject(ctx context.Context, userID, id int) (Project, error)

	CreateLead(ctx context.Context, lead Lead) (int, error)
	ListUnnotifiedLeads(ctx context.Context) ([]Lead, error)
	MarkLeadNotified(ctx context.Context, id int) error
	UpdateLeadStatus(ctx context.Context, id int, status string) error
	GetLead(ctx context.Context, id int) (Lead, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveProject(ctx context.Context, userID int, name, configJSON string) (int, error) {
	var id int
	query := `INSERT INTO projects (user_id, name, config, updated_at)
	          VALUES ($1, $2, $3, now()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, name, configJSON).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListProjects(ctx context.Context, userID int) ([]Project, error) {
	query := `SELECT id, user_id, name, config, updated_at FROM projects
	          WHERE user_id=$1 ORDER BY updated_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.ConfigJSON, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetProject(ctx context.Context, userID, id int) (Project, error) {
	var p Project
	query := `SELECT id, user_id, name, config, updated_at FROM projects
	          WHERE id=$1 AND user_id=$2`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&p.ID, &p.UserID, &p.Name, &p.ConfigJSON, &p.UpdatedAt)
	return p, err
}

func (r *PostgresRepository) CreateLead(ctx context.Context, lead Lead) (int, error) {
	var id int
	query := `INSERT INTO leads (name, phone, email, config, total_aud, status, notified, created_at)
	          VALUES ($1, $2, $3, $4, $5, 'new', false, now()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, lead.Name, lead.Phone, lead.Email, lead.ConfigJSON, lead.TotalAUD).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListUnnotifiedLeads(ctx context.Context) ([]Lead, error) {
	query := `SELECT id, name, phone, email, config, total_aud, status, notified, created_at
	          FROM leads WHERE notified=false ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Lead
	for rows.Next() {
		var l Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Phone, &l.Email, &l.ConfigJSON, &l.TotalAUD, &l.Status, &l.Notified, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) MarkLeadNotified(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, "UPDATE leads SET notified=true WHERE id=$1", id)
	return err
}

func (r *PostgresRepository) UpdateLeadStatus(ctx context.Context, id int, status string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE leads SET status=$2 WHERE id=$1", id, status)
	return err
}

func (r *PostgresRepository) GetLead(ctx context.Context, id int) (Lead, error) {
	var l Lead
	query := `SELECT id, name, phone, email, config, total_aud, status, notified, created_at
	          FROM leads WHERE id=$1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&l.ID, &l.Name, &l.Phone, &l.Email, &l.ConfigJSON, &l.TotalAUD, &l.Status, &l.Notified, &l.CreatedAt)
	return l, err
}
