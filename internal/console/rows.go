package console

import (
	"time"

	"github.com/noah-isme/hei-admin-console/internal/models"
	"github.com/noah-isme/hei-admin-console/pkg/display"
)

const rowDateLayout = "2006-01-02"

// EmployeeRow is an employee flattened for table rendering, optional fields
// replaced by the display placeholder.
type EmployeeRow struct {
	ID       string
	Code     string
	FullName string
	Title    string
	Status   string
	HiredAt  string
}

// EmployeeRows projects employees into display rows.
func EmployeeRows(items []models.Employee) []EmployeeRow {
	rows := make([]EmployeeRow, 0, len(items))
	for _, e := range items {
		rows = append(rows, EmployeeRow{
			ID:       e.ID,
			Code:     e.Code,
			FullName: e.FullName,
			Title:    display.OrDash(e.Title),
			Status:   display.OrDash(e.Status),
			HiredAt:  dateOrDash(e.HiredAt),
		})
	}
	return rows
}

// AuditRow is an audit entry flattened for table rendering.
type AuditRow struct {
	Action     string
	EntityType string
	EntityID   string
	Actor      string
	Detail     string
	OccurredAt string
}

// AuditRows projects audit entries into display rows.
func AuditRows(items []models.AuditEntry) []AuditRow {
	rows := make([]AuditRow, 0, len(items))
	for _, e := range items {
		rows = append(rows, AuditRow{
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Actor:      display.OrDash(e.Actor),
			Detail:     display.OrDash(e.Detail),
			OccurredAt: dateOrDash(e.OccurredAt),
		})
	}
	return rows
}

func dateOrDash(t *time.Time) string {
	if t == nil {
		return display.Placeholder
	}
	return t.Format(rowDateLayout)
}
