package repositories

import (
	"math"

	"gorm.io/gorm"

	"vehicle-registry-api/models"
)

// StatsRepository computes summary statistics over one owner's fleet.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type FleetSummary struct {
	Total          int64            `json:"total"`
	CountByType    map[string]int64 `json:"count_by_type"`
	CountByStatus  map[string]int64 `json:"count_by_status"`
	AverageYear    int              `json:"average_year"`
	AverageMileage int              `json:"average_mileage"`
}

type groupCount struct {
	Key   string
	Count int64
}

type fleetTotals struct {
	Total      int64
	AvgYear    *float64
	AvgMileage *float64
}

// Summarize aggregates the owner's vehicles: total count, frequency maps by
// type and status, and averages rounded to the nearest integer. An empty
// fleet yields zero totals and empty maps, not an error.
func (r *StatsRepository) Summarize(ownerID string) (*FleetSummary, error) {
	summary := &FleetSummary{
		CountByType:   map[string]int64{},
		CountByStatus: map[string]int64{},
	}

	var totals fleetTotals
	err := r.db.Model(&models.Vehicle{}).Scopes(ownedBy(ownerID)).
		Select("COUNT(*) AS total, AVG(year) AS avg_year, AVG(mileage) AS avg_mileage").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	summary.Total = totals.Total
	if summary.Total == 0 {
		return summary, nil
	}
	if totals.AvgYear != nil {
		summary.AverageYear = int(math.Round(*totals.AvgYear))
	}
	if totals.AvgMileage != nil {
		summary.AverageMileage = int(math.Round(*totals.AvgMileage))
	}

	byType, err := r.groupCounts(ownerID, "type")
	if err != nil {
		return nil, err
	}
	summary.CountByType = byType

	byStatus, err := r.groupCounts(ownerID, "status")
	if err != nil {
		return nil, err
	}
	summary.CountByStatus = byStatus

	return summary, nil
}

func (r *StatsRepository) groupCounts(ownerID, column string) (map[string]int64, error) {
	var rows []groupCount
	err := r.db.Model(&models.Vehicle{}).Scopes(ownedBy(ownerID)).
		Select(column + " AS `key`, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}
