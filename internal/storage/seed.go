package storage

import (
	"context"
	"time"

	"boleia/internal/domain/entities"
)

// Seed locations around the Inhambane/Maxixe corridor. Distances between
// them are supplied by callers; nothing in the backend computes routes.
var seedLocations = []entities.Location{
	{ID: "1", Name: "Mercado Central Inhambane", Lat: -23.865, Lng: 35.383},
	{ID: "2", Name: "Praia do Tofo", Lat: -23.854, Lng: 35.545},
	{ID: "3", Name: "Maxixe Terminal", Lat: -23.859, Lng: 35.347},
	{ID: "4", Name: "Aeroporto Inhambane", Lat: -23.874, Lng: 35.399},
}

func seedAccounts() []entities.Account {
	return []entities.Account{
		{ID: "admin1", Name: "Administrador", Email: "admin@boleia.app", Secret: "123", Role: entities.RoleAdmin, Phone: "+258841234567", Settings: entities.DefaultSettings()},
		{ID: "agent1", Name: "Agente Carlos", Email: "agent@boleia.app", Secret: "123", Role: entities.RoleAgent, Phone: "+258849876543", Settings: entities.DefaultSettings()},
		{ID: "driver1", Name: "Joao Matola", Email: "driver@boleia.app", Secret: "123", Role: entities.RoleDriver, Phone: "+258841112223", Settings: entities.DefaultSettings()},
		{ID: "user1", Name: "Maria Passageira", Email: "user@boleia.app", Secret: "123", Role: entities.RolePassenger, Phone: "+258843334445", Settings: entities.DefaultSettings()},
	}
}

// DefaultDriverStats is the singleton driver profile written on first run.
// The rewards service also falls back to it if the collection goes missing.
func DefaultDriverStats() entities.Driver {
	return entities.Driver{
		ID:             "driver1",
		Name:           "Joao Matola",
		Rating:         4.8,
		RidesCompleted: 1240,
		VehiclePlate:   "ABC-123-MC",
		Avatar:         "https://picsum.photos/id/64/100/100",
		IsOnline:       false,
		Location:       seedLocations[0],
		Points:         450,
		Level:          entities.LevelBronze,
	}
}

func seedReports() []entities.IncidentReport {
	return []entities.IncidentReport{
		{ID: "1", AgentID: "agent1", Category: entities.ReportInfraction, Description: "Moto-taxi driver without helmet carrying two passengers.", Location: "Av. Eduardo Mondlane, Maxixe", Time: "10:30", Status: entities.ReportPending},
		{ID: "2", AgentID: "agent1", Category: entities.ReportRoadDamage, Description: "Large pothole near the central market.", Location: "Mercado Central, Inhambane", Time: "08:15", Status: entities.ReportResolved},
	}
}

func seedRides(now time.Time) []entities.Ride {
	tomorrow := now.Add(24 * time.Hour)
	return []entities.Ride{
		{
			ID:          "ride1",
			RiderID:     "user1",
			Pickup:      seedLocations[0],
			Dropoff:     seedLocations[1],
			Type:        entities.RideTypeQuick,
			Price:       250,
			DistanceKm:  12,
			Status:      entities.RideStatusScheduled,
			ScheduledAt: &tomorrow,
			CreatedAt:   now,
		},
	}
}

// Seed writes first-run fixtures for every collection that has never been
// written. Collections that already exist are left untouched, so a restart
// never clobbers accumulated state. The session singleton is never seeded.
func Seed(ctx context.Context, store Store) error {
	type fixture struct {
		name string
		data func() any
	}

	fixtures := []fixture{
		{CollectionAccounts, func() any { return seedAccounts() }},
		{CollectionRides, func() any { return seedRides(time.Now()) }},
		{CollectionReports, func() any { return seedReports() }},
		{CollectionDriverStats, func() any { return DefaultDriverStats() }},
		{CollectionAuditLog, func() any { return []entities.AuditEntry{} }},
		{CollectionWalletTxs, func() any { return []entities.WalletTransaction{} }},
	}

	for _, f := range fixtures {
		exists, err := store.Has(ctx, f.name)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		if err := store.WriteCollection(ctx, f.name, f.data()); err != nil {
			return err
		}
	}
	return nil
}
