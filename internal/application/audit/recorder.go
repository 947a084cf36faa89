// Package audit registra y consulta los rastros de auditoría del panel:
// historial de logins y log de actividad. Las escrituras son best-effort:
// un fallo del almacén se loguea para el operador y nunca se propaga al caller.
package audit

import (
	"github.com/jhoicas/invorya-panel/internal/application/dto"
	"github.com/jhoicas/invorya-panel/internal/domain/entity"
	"github.com/jhoicas/invorya-panel/internal/domain/repository"
	"github.com/jhoicas/invorya-panel/pkg/logger"
)

// DefaultListLimit límite por defecto para los listados de auditoría.
const DefaultListLimit = 50

// Recorder caso de uso de auditoría.
type Recorder struct {
	logins   repository.LoginHistoryRepository
	activity repository.ActivityLogRepository
	log      *logger.Logger
}

// NewRecorder construye el caso de uso.
func NewRecorder(logins repository.LoginHistoryRepository, activity repository.ActivityLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{logins: logins, activity: activity, log: log}
}

// LoginAttempt agrega una entrada al historial de logins. userID es nil cuando el
// lookup del usuario falló; failureReason va vacío en intentos exitosos.
func (r *Recorder) LoginAttempt(username string, success bool, userID *string, failureReason string, client dto.ClientInfo) {
	entry := &entity.LoginHistoryEntry{
		UserID:        userID,
		Username:      username,
		Success:       success,
		FailureReason: failureReason,
		IPAddress:     client.IPAddress,
		UserAgent:     client.UserAgent,
	}
	if err := r.logins.Create(entry); err != nil {
		r.log.Error().Err(err).Str("username", username).Msg("no se pudo registrar el intento de login")
	}
}

// Activity agrega una entrada al log de actividad del actor.
func (r *Recorder) Activity(actor dto.Actor, action, resourceType, resourceID, details string, client dto.ClientInfo) {
	entry := &entity.ActivityLogEntry{
		UserID:       actor.ID,
		Username:     actor.Username,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
		IPAddress:    client.IPAddress,
		UserAgent:    client.UserAgent,
	}
	if err := r.activity.Create(entry); err != nil {
		r.log.Error().Err(err).Str("action", action).Msg("no se pudo registrar la actividad")
	}
}

// LoginHistory lista el historial de logins, opcionalmente filtrado por usuario.
func (r *Recorder) LoginHistory(userID *string, limit int) ([]dto.LoginHistoryResponse, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	entries, err := r.logins.List(userID, limit)
	if err != nil {
		r.log.Error().Err(err).Msg("listar historial de logins")
		return nil, err
	}
	out := make([]dto.LoginHistoryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.LoginHistoryResponse{
			ID:            e.ID,
			UserID:        e.UserID,
			Username:      e.Username,
			Success:       e.Success,
			FailureReason: e.FailureReason,
			IPAddress:     e.IPAddress,
			UserAgent:     e.UserAgent,
			CreatedAt:     e.CreatedAt,
		})
	}
	return out, nil
}

// ActivityLogs lista el log de actividad, opcionalmente filtrado por usuario.
func (r *Recorder) ActivityLogs(userID *string, limit int) ([]dto.ActivityLogResponse, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	entries, err := r.activity.List(userID, limit)
	if err != nil {
		r.log.Error().Err(err).Msg("listar log de actividad")
		return nil, err
	}
	out := make([]dto.ActivityLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ActivityLogResponse{
			ID:           e.ID,
			UserID:       e.UserID,
			Username:     e.Username,
			Action:       e.Action,
			ResourceType: e.ResourceType,
			ResourceID:   e.ResourceID,
			Details:      e.Details,
			CreatedAt:    e.CreatedAt,
		})
	}
	return out, nil
}
