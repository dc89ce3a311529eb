// Package resource implements the resource catalog repository using
// PostgreSQL. Dynamic filters and partial updates are built with squirrel;
// rows are scanned with scany.
package resource

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/feelhome/feelhome-backend/internal/adapter/postgres"
	"github.com/feelhome/feelhome-backend/internal/domain"
)

const table = "resources"

var columns = []string{"id", "name", "kind", "category", "content_ref", "disabled", "created_at"}

// Repo provides resource persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new resource repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// Create inserts a new resource and returns the stored row.
// The caller assigns the id; created_at comes from the database.
func (r *Repo) Create(ctx context.Context, res *domain.Resource) (*domain.Resource, error) {
	if res == nil {
		return nil, domain.NewValidationError("resource", "required")
	}
	if res.ID == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "name", "kind", "category", "content_ref", "disabled").
		Values(res.ID, res.Name, res.Kind, res.Category, res.ContentRef, res.Disabled).
		Suffix("RETURNING " + columnList())

	return r.one(ctx, query, "create resource")
}

// GetByID returns a resource by id; domain.ErrNotFound if absent.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Resource, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	return r.one(ctx, query, "get resource")
}

// Update applies the non-nil fields of in to the resource and returns the
// updated row. An empty update degenerates to a read.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, in domain.UpdateResourceInput) (*domain.Resource, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	if in.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	update := postgres.Builder().Update(table).Where(squirrel.Eq{"id": id})
	if in.Name != nil {
		update = update.Set("name", *in.Name)
	}
	if in.Kind != nil {
		update = update.Set("kind", *in.Kind)
	}
	if in.Category != nil {
		update = update.Set("category", *in.Category)
	}
	if in.ContentRef != nil {
		update = update.Set("content_ref", *in.ContentRef)
	}
	if in.Disabled != nil {
		update = update.Set("disabled", *in.Disabled)
	}
	update = update.Suffix("RETURNING " + columnList())

	return r.one(ctx, update, "update resource")
}

// SetDisabled sets the disabled flag. Setting the current value again is a
// no-op success: the row is returned either way.
func (r *Repo) SetDisabled(ctx context.Context, id uuid.UUID, disabled bool) (*domain.Resource, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	update := postgres.Builder().
		Update(table).
		Set("disabled", disabled).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columnList())

	return r.one(ctx, update, "set resource disabled")
}

// Delete removes a resource. References from emotion settings are left in
// place on purpose; the resolver filters them out.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete resource: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "delete resource")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete resource %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns resources matching the filter, ordered by created_at then id
// so identical state always yields identical output.
func (r *Repo) List(ctx context.Context, filter domain.ResourceFilter) ([]domain.Resource, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at ASC", "id ASC")

	if filter.Kind != nil {
		query = query.Where(squirrel.Eq{"kind": *filter.Kind})
	}
	if filter.Category != nil {
		query = query.Where(squirrel.Eq{"category": *filter.Category})
	}
	if !filter.IncludeDisabled {
		query = query.Where(squirrel.Eq{"disabled": false})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list resources: %w", err)
	}

	resources := []domain.Resource{}
	if err := pgxscan.Select(ctx, r.q(ctx), &resources, sql, args...); err != nil {
		return nil, postgres.MapError(err, "list resources")
	}
	return resources, nil
}

// ListEnabledByIDs returns the enabled resources among ids, in no particular
// order. Unknown and disabled ids are simply absent from the result.
func (r *Repo) ListEnabledByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Resource, error) {
	if len(ids) == 0 {
		return []domain.Resource{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"disabled": false}).
		Where("id = ANY(?)", ids).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list resources by ids: %w", err)
	}

	resources := []domain.Resource{}
	if err := pgxscan.Select(ctx, r.q(ctx), &resources, sql, args...); err != nil {
		return nil, postgres.MapError(err, "list resources by ids")
	}
	return resources, nil
}

func (r *Repo) one(ctx context.Context, query squirrel.Sqlizer, op string) (*domain.Resource, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	var res domain.Resource
	if err := pgxscan.Get(ctx, r.q(ctx), &res, sql, args...); err != nil {
		return nil, postgres.MapError(err, op)
	}
	return &res, nil
}

func columnList() string {
	out := columns[0]
	for _, c := range columns[1:] {
		out += ", " + c
	}
	return out
}
