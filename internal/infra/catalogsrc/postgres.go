package catalogsrc

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nadira/tripstylist/internal/domain/catalog"
)

// PostgresProvider serves the catalog from a products table using pgx.
type PostgresProvider struct {
	pool *pgxpool.Pool
}

// NewPostgresProvider constructs the provider.
func NewPostgresProvider(pool *pgxpool.Pool) *PostgresProvider {
	return &PostgresProvider{pool: pool}
}

func (p *PostgresProvider) Products(ctx context.Context, query catalog.Query) ([]catalog.Product, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, name, description, picture, currency_code, price_units, price_nanos, categories
		FROM products
		WHERE ($1 = '' OR $1 = ANY(categories))
		ORDER BY id
	`, query.Category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []catalog.Product
	for rows.Next() {
		var product catalog.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Picture,
			&product.Price.CurrencyCode,
			&product.Price.Units,
			&product.Price.Nanos,
			&product.Categories,
		); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Category filtering happened in SQL; search is cheap enough locally.
	return catalog.FilterLocal(products, catalog.Query{Search: query.Search}), nil
}
