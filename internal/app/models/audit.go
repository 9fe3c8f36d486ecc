package models

import (
	"context"
	"time"
)

const (
	AuditActionClinicianRolesUpdated = "clinician.roles.updated"
	AuditActionReportGenerated       = "report.generated"
	AuditActionDataExported          = "user.data.exported"
)

type AuditEvent struct {
	ID        string            `json:"id"`
	Action    string            `json:"action"`
	Actor     string            `json:"actor"`
	Target    string            `json:"target"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
	Time      time.Time         `json:"time"`
}

// NewAuditEvent fills the actor from the identity on ctx. The publisher
// stamps the id, time and request id.
func NewAuditEvent(ctx context.Context, action, target string, details map[string]string) *AuditEvent {
	event := &AuditEvent{
		Action:  action,
		Target:  target,
		Details: details,
	}
	if identity, ok := IdentityFromContext(ctx); ok {
		event.Actor = identity.Email
	}
	return event
}
