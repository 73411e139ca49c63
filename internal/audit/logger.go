package audit

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/awaleed99/bite-back0/internal/models"
)

type Event struct {
	UserID   *uuid.UUID
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Metadata any
}

// Recorder stores audit events. Recording never fails the caller.
type Recorder interface {
	Record(ctx context.Context, ev Event)
}

type Logger struct {
	db     *gorm.DB
	logger *slog.Logger
}

var _ Recorder = (*Logger)(nil)

func New(db *gorm.DB, logger *slog.Logger) *Logger {
	return &Logger{db: db, logger: logger}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

func (l *Logger) Record(ctx context.Context, ev Event) {
	if err := l.Log(ctx, ev); err != nil {
		l.logger.WarnContext(ctx, "audit write failed", "action", ev.Action, "error", err)
	}
}

type discard struct{}

func (discard) Record(context.Context, Event) {}

// Discard drops every event.
var Discard Recorder = discard{}

// Ptr is a convenience for the optional id fields of Event.
func Ptr(id uuid.UUID) *uuid.UUID {
	return &id
}
