package services

import (
	"context"
	"errors"
	"testing"

	"boleia/internal/domain/entities"
)

func TestReportService_CreateReport_NewestFirst(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	report, err := b.reports.CreateReport(ctx, CreateReportInput{
		AgentID:     "agent1",
		Category:    entities.ReportAccident,
		Description: "Collision at the roundabout",
		Location:    "EN1, Maxixe",
		Time:        "14:20",
	})
	if err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}
	if report.Status != entities.ReportPending {
		t.Errorf("Expected new report pending, got %s", report.Status)
	}

	all, err := b.reports.Reports(ctx)
	if err != nil {
		t.Fatalf("Reports failed: %v", err)
	}
	// Two seeded reports plus the new one at the head
	if len(all) != 3 {
		t.Fatalf("Expected 3 reports, got %d", len(all))
	}
	if all[0].ID != report.ID {
		t.Errorf("Expected newest report first, got %s", all[0].ID)
	}
}

func TestReportService_CreateReport_AttributesSessionHolder(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	// No session: no audit trace
	if _, err := b.reports.CreateReport(ctx, CreateReportInput{Category: entities.ReportOther}); err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}
	if n := auditCount(t, b, entities.ActionCreateReport); n != 0 {
		t.Errorf("Expected no CREATE_REPORT entry without session, got %d", n)
	}

	// The audit entry names the session holder, not the report's author
	if _, err := b.auth.Login(ctx, "admin@boleia.app", "123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if _, err := b.reports.CreateReport(ctx, CreateReportInput{AgentID: "agent1", Category: entities.ReportInfraction}); err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}

	entries, err := b.audit.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries failed: %v", err)
	}
	if entries[0].Action != entities.ActionCreateReport {
		t.Fatalf("Expected CREATE_REPORT at head, got %s", entries[0].Action)
	}
	if entries[0].ActorID != "admin1" {
		t.Errorf("Expected actor admin1 (session holder), got %s", entries[0].ActorID)
	}
}

func TestReportService_ResolveReport(t *testing.T) {
	b := setupBackend(t)
	ctx := context.Background()

	// Seeded report "1" starts pending
	report, err := b.reports.ResolveReport(ctx, "1")
	if err != nil {
		t.Fatalf("ResolveReport failed: %v", err)
	}
	if report.Status != entities.ReportResolved {
		t.Errorf("Expected resolved, got %s", report.Status)
	}

	all, err := b.reports.Reports(ctx)
	if err != nil {
		t.Fatalf("Reports failed: %v", err)
	}
	for _, r := range all {
		if r.ID == "1" && r.Status != entities.ReportResolved {
			t.Error("Expected resolution persisted")
		}
	}
}

func TestReportService_ResolveReport_NotFound(t *testing.T) {
	b := setupBackend(t)

	_, err := b.reports.ResolveReport(context.Background(), "missing")
	if !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("Expected ErrReportNotFound, got %v", err)
	}
}
