package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, price_takeout::text, price_delivery::text, is_combo
		FROM products
		ORDER BY position, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range products {
		if !products[i].IsCombo {
			continue
		}
		groups, err := r.loadGroups(ctx, products[i].ID)
		if err != nil {
			return nil, err
		}
		products[i].ComboGroups = groups
	}

	return products, nil
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id string) (*Product, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, price_takeout::text, price_delivery::text, is_combo
		FROM products
		WHERE id = $1
	`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if p.IsCombo {
		groups, err := r.loadGroups(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.ComboGroups = groups
	}

	return p, nil
}

func (r *PostgresRepository) loadGroups(ctx context.Context, productID string) ([]ComboGroup, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, kind, forced_quantity, max_quantity
		FROM combo_groups
		WHERE product_id = $1
		ORDER BY position, id
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load combo groups: %w", err)
	}
	defer rows.Close()

	type groupRow struct {
		dbID  int64
		group ComboGroup
	}

	var groupRows []groupRow
	for rows.Next() {
		var gr groupRow
		if err := rows.Scan(&gr.dbID, &gr.group.Name, &gr.group.Kind, &gr.group.ForcedQuantity, &gr.group.MaxQuantity); err != nil {
			return nil, err
		}
		groupRows = append(groupRows, gr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	groups := make([]ComboGroup, 0, len(groupRows))
	for _, gr := range groupRows {
		items, err := r.loadItems(ctx, gr.dbID)
		if err != nil {
			return nil, err
		}
		gr.group.Items = items
		groups = append(groups, gr.group)
	}

	return groups, nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, groupID int64) ([]ComboItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, label, extra_takeout::text, extra_delivery::text,
		       default_quantity, default_selected, badges
		FROM combo_items
		WHERE group_id = $1
		ORDER BY position, id
	`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to load combo items: %w", err)
	}
	defer rows.Close()

	var items []ComboItem
	for rows.Next() {
		var (
			item                        ComboItem
			extraTakeout, extraDelivery string
		)
		err := rows.Scan(
			&item.ID,
			&item.Label,
			&extraTakeout,
			&extraDelivery,
			&item.DefaultQuantity,
			&item.DefaultSelected,
			&item.Badges,
		)
		if err != nil {
			return nil, err
		}
		if item.ExtraTakeout, err = decimal.NewFromString(extraTakeout); err != nil {
			return nil, fmt.Errorf("bad extra_takeout for combo item %s: %w", item.ID, err)
		}
		if item.ExtraDelivery, err = decimal.NewFromString(extraDelivery); err != nil {
			return nil, fmt.Errorf("bad extra_delivery for combo item %s: %w", item.ID, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanProduct(row pgx.Row) (*Product, error) {
	var (
		p                           Product
		priceTakeout, priceDelivery string
	)
	err := row.Scan(&p.ID, &p.Name, &priceTakeout, &priceDelivery, &p.IsCombo)
	if err != nil {
		return nil, err
	}
	if p.PriceTakeout, err = decimal.NewFromString(priceTakeout); err != nil {
		return nil, fmt.Errorf("bad price_takeout for product %s: %w", p.ID, err)
	}
	if p.PriceDelivery, err = decimal.NewFromString(priceDelivery); err != nil {
		return nil, fmt.Errorf("bad price_delivery for product %s: %w", p.ID, err)
	}
	return &p, nil
}
