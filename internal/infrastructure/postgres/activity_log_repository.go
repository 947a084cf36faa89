package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/invorya-panel/internal/domain/entity"
	"github.com/jhoicas/invorya-panel/internal/domain/repository"
)

var _ repository.ActivityLogRepository = (*ActivityLogRepo)(nil)

// ActivityLogRepo adaptador append-only del log de actividad.
type ActivityLogRepo struct {
	q Querier
}

// NewActivityLogRepository construye el adaptador.
func NewActivityLogRepository(q Querier) *ActivityLogRepo {
	return &ActivityLogRepo{q: q}
}

// Create agrega una entrada al log de actividad.
func (r *ActivityLogRepo) Create(entry *entity.ActivityLogEntry) error {
	query := `
		INSERT INTO user_activity_log (user_id, username, action, resource_type, resource_id, details, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`
	err := r.q.QueryRow(context.Background(), query,
		entry.UserID, entry.Username, entry.Action,
		nullIfEmpty(entry.ResourceType), nullIfEmpty(entry.ResourceID), nullIfEmpty(entry.Details),
		nullIfEmpty(entry.IPAddress), nullIfEmpty(entry.UserAgent),
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert activity log: %w", err)
	}
	return nil
}

// List devuelve las entradas más recientes primero, opcionalmente filtradas por usuario.
func (r *ActivityLogRepo) List(userID *string, limit int) ([]*entity.ActivityLogEntry, error) {
	query := `
		SELECT id, user_id, username, action, COALESCE(resource_type, ''), COALESCE(resource_id, ''),
		       COALESCE(details, ''), COALESCE(ip_address, ''), COALESCE(user_agent, ''), created_at
		FROM user_activity_log`
	args := []any{limit}
	if userID != nil {
		query += ` WHERE user_id = $2`
		args = append(args, *userID)
	}
	query += ` ORDER BY created_at DESC LIMIT $1`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity log: %w", err)
	}
	defer rows.Close()
	var list []*entity.ActivityLogEntry
	for rows.Next() {
		var e entity.ActivityLogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Username, &e.Action, &e.ResourceType, &e.ResourceID,
			&e.Details, &e.IPAddress, &e.UserAgent, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
