package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/restomart/restomart/internal/domain/errors"
	"github.com/restomart/restomart/internal/domain/model"
)

type menuRepository struct {
	q querier
}

func (r *menuRepository) InsertItem(ctx context.Context, item *model.MenuItem) error {
	const query = `INSERT INTO menu_items (name, category_id, price, description, status, created_at, created_by, updated_at, updated_by)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	err := r.q.QueryRow(ctx, query,
		item.Name, item.CategoryID, item.Price, item.Description, item.Status,
		item.CreatedAt, item.CreatedBy, item.UpdatedAt, item.UpdatedBy,
	).Scan(&item.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// UpdateItem rewrites mutable columns. Created* columns are deliberately not
// in the statement, so a modify can never clobber creation stamps.
func (r *menuRepository) UpdateItem(ctx context.Context, item *model.MenuItem) error {
	const query = `UPDATE menu_items
                   SET name=$1, category_id=$2, price=$3, description=$4, status=$5, updated_at=$6, updated_by=$7
                   WHERE id=$8`
	tag, err := r.q.Exec(ctx, query,
		item.Name, item.CategoryID, item.Price, item.Description, item.Status,
		item.UpdatedAt, item.UpdatedBy, item.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *menuRepository) GetItem(ctx context.Context, id int64) (*model.MenuItem, error) {
	const query = `SELECT id, name, category_id, price, description, status, created_at, created_by, updated_at, updated_by
                   FROM menu_items WHERE id=$1`
	var item model.MenuItem
	err := r.q.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.CategoryID, &item.Price,
		&item.Description, &item.Status, &item.CreatedAt, &item.CreatedBy, &item.UpdatedAt, &item.UpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.MenuItem, error) {
	const query = `SELECT id, name, category_id, price, description, status, created_at, created_by, updated_at, updated_by
                   FROM menu_items WHERE category_id=$1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.CategoryID, &item.Price,
			&item.Description, &item.Status, &item.CreatedAt, &item.CreatedBy, &item.UpdatedAt, &item.UpdatedBy); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetStatuses locks the selected rows until the surrounding transaction ends.
func (r *menuRepository) GetStatuses(ctx context.Context, ids []int64) (map[int64]model.ItemStatus, error) {
	const query = `SELECT id, status FROM menu_items WHERE id = ANY($1) FOR UPDATE`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make(map[int64]model.ItemStatus, len(ids))
	for rows.Next() {
		var (
			id     int64
			status model.ItemStatus
		)
		if err := rows.Scan(&id, &status); err != nil {
			return nil, err
		}
		statuses[id] = status
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *menuRepository) ListComboAssociations(ctx context.Context, ids []int64) ([]model.ComboAssociation, error) {
	const query = `SELECT combo_id, item_id FROM combo_items WHERE item_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ComboAssociation
	for rows.Next() {
		var assoc model.ComboAssociation
		if err := rows.Scan(&assoc.ComboID, &assoc.ItemID); err != nil {
			return nil, err
		}
		result = append(result, assoc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuRepository) DeleteItems(ctx context.Context, ids []int64) error {
	const query = `DELETE FROM menu_items WHERE id = ANY($1)`
	_, err := r.q.Exec(ctx, query, ids)
	return err
}

func (r *menuRepository) InsertFlavors(ctx context.Context, flavors []model.Flavor) error {
	if len(flavors) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString(`INSERT INTO flavors (item_id, name, value) VALUES `)
	args := make([]any, 0, len(flavors)*3)
	for i, f := range flavors {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d)", i*3+1, i*3+2, i*3+3)
		args = append(args, f.ItemID, f.Name, f.Value)
	}

	_, err := r.q.Exec(ctx, sb.String(), args...)
	return err
}

func (r *menuRepository) ListFlavors(ctx context.Context, itemID int64) ([]model.Flavor, error) {
	const query = `SELECT id, item_id, name, value FROM flavors WHERE item_id=$1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Flavor
	for rows.Next() {
		var f model.Flavor
		if err := rows.Scan(&f.ID, &f.ItemID, &f.Name, &f.Value); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *menuRepository) DeleteFlavors(ctx context.Context, itemIDs []int64) error {
	const query = `DELETE FROM flavors WHERE item_id = ANY($1)`
	_, err := r.q.Exec(ctx, query, itemIDs)
	return err
}
