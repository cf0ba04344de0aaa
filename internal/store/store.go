package store

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"workspace-finder-backend/internal/dataset"
	"workspace-finder-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	// ReplaceDatasets swaps the persisted dataset tables for the contents
	// of a freshly loaded snapshot, in one transaction.
	ReplaceDatasets(ctx context.Context, bundle *dataset.Bundle) error
	// DB exposes the underlying gorm handle for handler-level queries.
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// ReplaceDatasets persists a snapshot. Dataset files are authoritative, so
// the tables are wiped and rebuilt rather than diffed; subscriptions are
// untouched.
func (s *gormStore) ReplaceDatasets(ctx context.Context, bundle *dataset.Bundle) error {
	spaces := make([]model.Space, 0, len(bundle.Spaces))
	for _, sp := range bundle.Spaces {
		spaces = append(spaces, toModelSpace(sp))
	}

	desks := make([]model.Desk, 0, len(bundle.Desks))
	for _, d := range bundle.Desks {
		desks = append(desks, toModelDesk(d))
	}

	forecasts := flattenForecast(bundle.Forecast)

	policies := make([]model.Policy, 0, len(bundle.Policies))
	for _, p := range bundle.Policies {
		policies = append(policies, model.Policy{
			ID:               p.ID,
			Description:      p.Description,
			ThresholdPercent: p.ThresholdPercent,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&model.Space{}, &model.Desk{}, &model.ForecastEntry{}, &model.Policy{}} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return fmt.Errorf("failed to clear dataset table: %w", err)
			}
		}

		if len(spaces) > 0 {
			if err := tx.Create(&spaces).Error; err != nil {
				return fmt.Errorf("failed to insert spaces: %w", err)
			}
		}
		if len(desks) > 0 {
			if err := tx.Create(&desks).Error; err != nil {
				return fmt.Errorf("failed to insert desks: %w", err)
			}
		}
		if len(forecasts) > 0 {
			if err := tx.Create(&forecasts).Error; err != nil {
				return fmt.Errorf("failed to insert forecast entries: %w", err)
			}
		}
		if len(policies) > 0 {
			if err := tx.Create(&policies).Error; err != nil {
				return fmt.Errorf("failed to insert policies: %w", err)
			}
		}
		return nil
	})
}

func toModelSpace(sp dataset.Space) model.Space {
	m := model.Space{
		ID:   sp.ID,
		Name: sp.Name,
		Type: sp.Type,
	}
	if sp.ParentID != "" {
		parent := sp.ParentID
		m.ParentID = &parent
	}
	return m
}

func toModelDesk(d dataset.Desk) model.Desk {
	return model.Desk{
		ID:                  d.ID,
		Type:                d.Type,
		Floor:               d.Floor,
		AreaID:              d.AreaID,
		Zone:                d.Zone,
		Status:              d.Status,
		VergesenseAreaID:    d.VergesenseAreaID,
		LocationDescription: d.LocationDescription,
		Features:            d.Features,
	}
}

// flattenForecast turns the nested per-area forecast into one row per
// area/slot. Rows come out sorted by area so inserts are deterministic.
func flattenForecast(forecast dataset.Forecast) []model.ForecastEntry {
	areaIDs := make([]string, 0, len(forecast))
	for areaID := range forecast {
		areaIDs = append(areaIDs, areaID)
	}
	sort.Strings(areaIDs)

	var entries []model.ForecastEntry
	for _, areaID := range areaIDs {
		day := forecast[areaID].NextDay
		for _, slot := range []struct {
			name  string
			value *int
		}{
			{"morning", day.Morning},
			{"afternoon", day.Afternoon},
			{"evening", day.Evening},
		} {
			if slot.value == nil {
				continue
			}
			entries = append(entries, model.ForecastEntry{
				AreaID:  areaID,
				Slot:    slot.name,
				Percent: *slot.value,
			})
		}
	}
	return entries
}
