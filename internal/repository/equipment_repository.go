package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/medequip-service/internal/domain"
)

// EquipmentRepository encapsulates equipment persistence.
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *domain.Equipment) error
	GetByID(ctx context.Context, id string) (*domain.Equipment, error)
	List(ctx context.Context) ([]domain.Equipment, error)
	Update(ctx context.Context, id string, patch domain.EquipmentPatch, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, status *domain.EquipmentStatus) (int64, error)
}

type equipmentRepository struct {
	pool *pgxpool.Pool
}

// NewEquipmentRepository instantiates repository.
func NewEquipmentRepository(pool *pgxpool.Pool) EquipmentRepository {
	return &equipmentRepository{pool: pool}
}

const equipmentColumns = `id, name, model, manufacturer, serial_number, description, location, status,
               installation_date, removal_date, created_by, created_at, updated_at`

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	const query = `
        INSERT INTO equipment (id, name, model, manufacturer, serial_number, description, location, status,
            installation_date, removal_date, created_by, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err := r.pool.Exec(ctx, query,
		e.ID,
		e.Name,
		e.Model,
		e.Manufacturer,
		e.SerialNumber,
		e.Description,
		e.Location,
		e.Status,
		e.InstallationDate,
		e.RemovalDate,
		e.CreatedBy,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return translateError(err)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (*domain.Equipment, error) {
	const query = `SELECT ` + equipmentColumns + ` FROM equipment WHERE id=$1`
	e, err := scanEquipment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return e, nil
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY created_at DESC LIMIT $1`
	rows, err := r.pool.Query(ctx, query, maxListSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Equipment{}
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	return result, rows.Err()
}

func (r *equipmentRepository) Update(ctx context.Context, id string, patch domain.EquipmentPatch, updatedAt time.Time) error {
	query, args, err := equipmentUpdateQuery(id, patch, updatedAt)
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM equipment WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) Count(ctx context.Context, status *domain.EquipmentStatus) (int64, error) {
	builder := psql.Select("COUNT(*)").From("equipment")
	if status != nil {
		builder = builder.Where(sq.Eq{"status": *status})
	}
	return count(ctx, r.pool, builder)
}

// equipmentUpdateQuery sets only the provided fields plus updated_at.
func equipmentUpdateQuery(id string, patch domain.EquipmentPatch, updatedAt time.Time) (string, []any, error) {
	set := map[string]any{"updated_at": updatedAt}
	if v, ok := patch.Name.Get(); ok {
		set["name"] = v
	}
	if v, ok := patch.Model.Get(); ok {
		set["model"] = v
	}
	if v, ok := patch.Manufacturer.Get(); ok {
		set["manufacturer"] = v
	}
	if v, ok := patch.SerialNumber.Get(); ok {
		set["serial_number"] = v
	}
	if v, ok := patch.Description.Get(); ok {
		set["description"] = v
	}
	if v, ok := patch.Location.Get(); ok {
		set["location"] = v
	}
	if v, ok := patch.Status.Get(); ok {
		set["status"] = string(v)
	}
	if v, ok := patch.InstallationDate.Get(); ok {
		set["installation_date"] = v
	}
	if v, ok := patch.RemovalDate.Get(); ok {
		set["removal_date"] = v
	}
	return psql.Update("equipment").SetMap(set).Where(sq.Eq{"id": id}).ToSql()
}

func scanEquipment(row pgx.Row) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Model,
		&e.Manufacturer,
		&e.SerialNumber,
		&e.Description,
		&e.Location,
		&e.Status,
		&e.InstallationDate,
		&e.RemovalDate,
		&e.CreatedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
