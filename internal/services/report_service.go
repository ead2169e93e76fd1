package services

import (
	"context"
	"errors"
	"fmt"

	"boleia/internal/domain/entities"
	"boleia/internal/storage"
	"boleia/pkg/utils"
)

var ErrReportNotFound = errors.New("report not found")

// ReportService owns the incident report register. Reports are kept
// most-recently-created first; after creation the only permitted mutation
// is the pending → resolved status change.
type ReportService struct {
	store storage.Store
	audit *AuditService
}

func NewReportService(store storage.Store, audit *AuditService) *ReportService {
	return &ReportService{
		store: store,
		audit: audit,
	}
}

// Reports returns all incident reports, newest first.
func (s *ReportService) Reports(ctx context.Context) ([]entities.IncidentReport, error) {
	var reports []entities.IncidentReport
	if err := s.store.ReadCollection(ctx, storage.CollectionReports, &reports); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	return reports, nil
}

// CreateReportInput carries an agent's field observation.
type CreateReportInput struct {
	AgentID     string                  `json:"agent_id"`
	Category    entities.ReportCategory `json:"category"`
	Description string                  `json:"description"`
	Location    string                  `json:"location"`
	Time        string                  `json:"time"`
}

// CreateReport assigns a fresh identifier and inserts the report at the
// head of the register. When a session is active the action is audited and
// attributed to the session holder — which may differ from the report's
// own author field.
func (s *ReportService) CreateReport(ctx context.Context, input CreateReportInput) (*entities.IncidentReport, error) {
	reports, err := s.Reports(ctx)
	if err != nil {
		return nil, err
	}

	report := entities.IncidentReport{
		ID:          utils.GenerateID(),
		AgentID:     input.AgentID,
		Category:    input.Category,
		Description: input.Description,
		Location:    input.Location,
		Time:        input.Time,
		Status:      entities.ReportPending,
	}

	reports = append([]entities.IncidentReport{report}, reports...)
	if err := s.store.WriteCollection(ctx, storage.CollectionReports, reports); err != nil {
		return nil, err
	}

	session, err := currentSession(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if session != nil {
		detail := fmt.Sprintf("Report created: %s", report.Category)
		if err := s.audit.Append(ctx, session.ID, entities.ActionCreateReport, report.ID, detail); err != nil {
			return nil, err
		}
	}

	return &report, nil
}

// ResolveReport marks a pending report as resolved. Resolving an already
// resolved report is a no-op that still returns the record.
func (s *ReportService) ResolveReport(ctx context.Context, reportID string) (*entities.IncidentReport, error) {
	reports, err := s.Reports(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range reports {
		if reports[i].ID == reportID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrReportNotFound
	}

	reports[index].Status = entities.ReportResolved
	if err := s.store.WriteCollection(ctx, storage.CollectionReports, reports); err != nil {
		return nil, err
	}

	session, err := currentSession(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if session != nil {
		if err := s.audit.Append(ctx, session.ID, entities.ActionResolveReport, reportID, "report marked resolved"); err != nil {
			return nil, err
		}
	}

	resolved := reports[index]
	return &resolved, nil
}
