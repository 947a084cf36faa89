package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/invorya-panel/internal/domain/entity"
	"github.com/jhoicas/invorya-panel/internal/domain/repository"
)

var _ repository.LoginHistoryRepository = (*LoginHistoryRepo)(nil)

// LoginHistoryRepo adaptador append-only del historial de logins.
type LoginHistoryRepo struct {
	q Querier
}

// NewLoginHistoryRepository construye el adaptador.
func NewLoginHistoryRepository(q Querier) *LoginHistoryRepo {
	return &LoginHistoryRepo{q: q}
}

// Create agrega una entrada. Las entradas nunca se actualizan ni se borran.
func (r *LoginHistoryRepo) Create(entry *entity.LoginHistoryEntry) error {
	query := `
		INSERT INTO login_history (user_id, username, success, failure_reason, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		entry.UserID, entry.Username, entry.Success, nullIfEmpty(entry.FailureReason),
		nullIfEmpty(entry.IPAddress), nullIfEmpty(entry.UserAgent),
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert login history: %w", err)
	}
	return nil
}

// List devuelve las entradas más recientes primero, opcionalmente filtradas por usuario.
func (r *LoginHistoryRepo) List(userID *string, limit int) ([]*entity.LoginHistoryEntry, error) {
	query := `
		SELECT id, user_id, username, success, COALESCE(failure_reason, ''),
		       COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at
		FROM login_history`
	args := []any{limit}
	if userID != nil {
		query += ` WHERE user_id = $2`
		args = append(args, *userID)
	}
	query += ` ORDER BY created_at DESC LIMIT $1`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list login history: %w", err)
	}
	defer rows.Close()
	var list []*entity.LoginHistoryEntry
	for rows.Next() {
		var e entity.LoginHistoryEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Username, &e.Success, &e.FailureReason,
			&e.IPAddress, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan login history: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
