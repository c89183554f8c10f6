package repositories

import (
	"testing"

	"vehicle-registry-api/models"
)

func TestSummarizeEmptyFleet(t *testing.T) {
	db := newTestDB(t)
	owner := registerOwner(t, db, "a@x.com")

	summary, err := NewStatsRepository(db).Summarize(owner)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.Total != 0 {
		t.Fatalf("total: %d", summary.Total)
	}
	if len(summary.CountByType) != 0 || len(summary.CountByStatus) != 0 {
		t.Fatalf("expected empty maps: %+v", summary)
	}
	if summary.AverageYear != 0 || summary.AverageMileage != 0 {
		t.Fatalf("expected zero averages: %+v", summary)
	}
}

func TestSummarizeAverages(t *testing.T) {
	db := newTestDB(t)
	vehicles := NewVehicleRepository(db)
	owner := registerOwner(t, db, "a@x.com")

	first := corolla()
	first.Year = 2018
	first.Mileage = intPtr(10000)
	if _, err := vehicles.Create(owner, first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	second := corolla()
	second.Plate = "xyz789"
	second.Year = 2022
	second.Mileage = intPtr(20000)
	if _, err := vehicles.Create(owner, second); err != nil {
		t.Fatalf("Create: %v", err)
	}

	summary, err := NewStatsRepository(db).Summarize(owner)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.Total != 2 {
		t.Fatalf("total: %d", summary.Total)
	}
	if summary.AverageYear != 2020 {
		t.Fatalf("average year: %d", summary.AverageYear)
	}
	if summary.AverageMileage != 15000 {
		t.Fatalf("average mileage: %d", summary.AverageMileage)
	}
}

func TestSummarizeCountsAndScope(t *testing.T) {
	db := newTestDB(t)
	vehicles := NewVehicleRepository(db)
	owner := registerOwner(t, db, "a@x.com")
	other := registerOwner(t, db, "b@x.com")

	inputs := []struct {
		plate string
		vtype string
	}{
		{"aaa111", models.TypeAutomobile},
		{"bbb222", models.TypeAutomobile},
		{"ccc333", models.TypeTruck},
	}
	for _, in := range inputs {
		input := corolla()
		input.Plate = in.plate
		input.Type = in.vtype
		if _, err := vehicles.Create(owner, input); err != nil {
			t.Fatalf("Create %s: %v", in.plate, err)
		}
	}
	// Mark one sold after creation; status defaults to active on create.
	sold, err := vehicles.List(owner, ListOptions{Limit: 1})
	if err != nil || len(sold.Vehicles) == 0 {
		t.Fatalf("List: %v", err)
	}
	status := models.StatusSold
	if _, err := vehicles.Update(owner, sold.Vehicles[0].ID, VehicleUpdate{Status: &status}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	// Another owner's fleet must not bleed into the summary.
	foreign := corolla()
	foreign.Plate = "zzz999"
	if _, err := vehicles.Create(other, foreign); err != nil {
		t.Fatalf("Create foreign: %v", err)
	}

	summary, err := NewStatsRepository(db).Summarize(owner)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.Total != 3 {
		t.Fatalf("total: %d", summary.Total)
	}
	if summary.CountByType[models.TypeAutomobile] != 2 || summary.CountByType[models.TypeTruck] != 1 {
		t.Fatalf("count by type: %+v", summary.CountByType)
	}
	if summary.CountByStatus[models.StatusActive] != 2 || summary.CountByStatus[models.StatusSold] != 1 {
		t.Fatalf("count by status: %+v", summary.CountByStatus)
	}
	// Only categories actually present appear.
	if _, ok := summary.CountByType[models.TypeVan]; ok {
		t.Fatalf("zero-filled category present")
	}
}
