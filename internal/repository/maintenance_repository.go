package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/medequip-service/internal/domain"
)

// MaintenanceRepository persists maintenance records. Records are append-only.
type MaintenanceRepository interface {
	Create(ctx context.Context, record *domain.MaintenanceRecord) error
	ListByEquipment(ctx context.Context, equipmentID string) ([]domain.MaintenanceRecord, error)
}

type maintenanceRepository struct {
	pool *pgxpool.Pool
}

// NewMaintenanceRepository constructs repository.
func NewMaintenanceRepository(pool *pgxpool.Pool) MaintenanceRepository {
	return &maintenanceRepository{pool: pool}
}

func (r *maintenanceRepository) Create(ctx context.Context, record *domain.MaintenanceRecord) error {
	const query = `
        INSERT INTO maintenance_records (id, equipment_id, maintenance_type, description, performed_by,
            performed_at, next_maintenance_date, cost, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := r.pool.Exec(ctx, query,
		record.ID,
		record.EquipmentID,
		record.MaintenanceType,
		record.Description,
		record.PerformedBy,
		record.PerformedAt,
		record.NextMaintenanceDate,
		record.Cost,
		record.Notes,
	)
	return translateError(err)
}

func (r *maintenanceRepository) ListByEquipment(ctx context.Context, equipmentID string) ([]domain.MaintenanceRecord, error) {
	const query = `
        SELECT id, equipment_id, maintenance_type, description, performed_by, performed_at,
               next_maintenance_date, cost, notes
        FROM maintenance_records WHERE equipment_id=$1
        ORDER BY performed_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, equipmentID, maxListSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.MaintenanceRecord{}
	for rows.Next() {
		var record domain.MaintenanceRecord
		if err := rows.Scan(
			&record.ID,
			&record.EquipmentID,
			&record.MaintenanceType,
			&record.Description,
			&record.PerformedBy,
			&record.PerformedAt,
			&record.NextMaintenanceDate,
			&record.Cost,
			&record.Notes,
		); err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, rows.Err()
}
