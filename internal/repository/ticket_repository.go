package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/medequip-service/internal/domain"
)

// TicketFilter narrows ticket listings.
type TicketFilter struct {
	CreatedBy   *string
	EquipmentID *string
	Statuses    []domain.TicketStatus
	Limit       int
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	Update(ctx context.Context, id string, patch domain.TicketPatch, updatedAt time.Time) error
	CountByStatus(ctx context.Context, status domain.TicketStatus) (int64, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, equipment_id, title, description, status, priority, created_by, assigned_to,
               created_at, updated_at, resolved_at`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (id, equipment_id, title, description, status, priority, created_by, assigned_to,
            created_at, updated_at, resolved_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	_, err := r.pool.Exec(ctx, query,
		ticket.ID,
		ticket.EquipmentID,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.CreatedBy,
		ticket.AssignedTo,
		ticket.CreatedAt,
		ticket.UpdatedAt,
		ticket.ResolvedAt,
	)
	return translateError(err)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM tickets WHERE id=$1`
	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return ticket, nil
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	query, args, err := ticketListQuery(filter)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Ticket{}
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

func (r *ticketRepository) Update(ctx context.Context, id string, patch domain.TicketPatch, updatedAt time.Time) error {
	query, args, err := ticketUpdateQuery(id, patch, updatedAt)
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

func (r *ticketRepository) CountByStatus(ctx context.Context, status domain.TicketStatus) (int64, error) {
	return count(ctx, r.pool, psql.Select("COUNT(*)").From("tickets").Where(sq.Eq{"status": string(status)}))
}

func ticketListQuery(filter TicketFilter) (string, []any, error) {
	builder := psql.Select(ticketColumns).From("tickets")
	if filter.CreatedBy != nil {
		builder = builder.Where(sq.Eq{"created_by": *filter.CreatedBy})
	}
	if filter.EquipmentID != nil {
		builder = builder.Where(sq.Eq{"equipment_id": *filter.EquipmentID})
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		builder = builder.Where(sq.Eq{"status": statuses})
	}
	limit := filter.Limit
	if limit <= 0 || limit > maxListSize {
		limit = maxListSize
	}
	return builder.OrderBy("created_at DESC").Limit(uint64(limit)).ToSql()
}

// ticketUpdateQuery sets only the provided fields plus updated_at.
func ticketUpdateQuery(id string, patch domain.TicketPatch, updatedAt time.Time) (string, []any, error) {
	set := map[string]any{"updated_at": updatedAt}
	if v, ok := patch.Title.Get(); ok {
		set["title"] = v
	}
	if v, ok := patch.Description.Get(); ok {
		set["description"] = v
	}
	if v, ok := patch.Status.Get(); ok {
		set["status"] = string(v)
	}
	if v, ok := patch.Priority.Get(); ok {
		set["priority"] = v
	}
	if v, ok := patch.AssignedTo.Get(); ok {
		set["assigned_to"] = v
	}
	if v, ok := patch.ResolvedAt.Get(); ok {
		set["resolved_at"] = v
	}
	return psql.Update("tickets").SetMap(set).Where(sq.Eq{"id": id}).ToSql()
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := row.Scan(
		&ticket.ID,
		&ticket.EquipmentID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Status,
		&ticket.Priority,
		&ticket.CreatedBy,
		&ticket.AssignedTo,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.ResolvedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}
