package logger

import (
	"github.com/sirupsen/logrus"
)

// AuditLogger records every write that reaches storage.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogEntitySaved logs a create or full-row update.
func (al *AuditLogger) LogEntitySaved(entity, id string, created bool) {
	action := "updated"
	if created {
		action = "created"
	}
	al.WithFields(logrus.Fields{
		"entity":    entity,
		"entity_id": id,
		"action":    action,
	}).Info("Entity saved")
}

// LogEntityDeleted logs a delete and how many rows it removed.
func (al *AuditLogger) LogEntityDeleted(entity, id string, affected int64) {
	al.WithFields(logrus.Fields{
		"entity":    entity,
		"entity_id": id,
		"affected":  affected,
	}).Info("Entity deleted")
}

// LogRaceResultsPersisted logs the outcome of a race result batch.
func (al *AuditLogger) LogRaceResultsPersisted(raceID string, persisted, failed int) {
	entry := al.WithFields(logrus.Fields{
		"race_id":   raceID,
		"persisted": persisted,
		"failed":    failed,
	})
	if failed > 0 {
		entry.Warn("Race result batch partially persisted")
		return
	}
	entry.Info("Race result batch persisted")
}

// LogTeamDriversResolved logs how many requested drivers resolved to stored rows.
func (al *AuditLogger) LogTeamDriversResolved(teamID string, requested, resolved int) {
	entry := al.WithFields(logrus.Fields{
		"team_id":   teamID,
		"requested": requested,
		"resolved":  resolved,
	})
	if resolved < requested {
		entry.Warn("Unknown driver ids dropped from team")
		return
	}
	entry.Debug("Team drivers resolved")
}
