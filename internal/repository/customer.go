package repository

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/clientes/internal/model"
	"github.com/umalmyha/clientes/pkg/db/executor"
)

// CustomerRepository represents behavior of customer data source
type CustomerRepository interface {
	Create(context.Context, *model.CustomerFields) (*model.Customer, error)
	FindAll(context.Context) ([]*model.Customer, error)
	UpdateByID(context.Context, int64, *model.CustomerFields) (int64, error)
	DeleteByID(context.Context, int64) (int64, error)
}

type postgresCustomerRepository struct {
	provider executor.PgxExecutorProvider
}

// NewPostgresCustomerRepository builds customer repository backed by clientes table
func NewPostgresCustomerRepository(p executor.PgxExecutorProvider) CustomerRepository {
	return &postgresCustomerRepository{provider: p}
}

func (r *postgresCustomerRepository) Create(ctx context.Context, f *model.CustomerFields) (*model.Customer, error) {
	q := `INSERT INTO clientes(nombre, correo, telefono, direccion) VALUES($1, $2, $3, $4)
          RETURNING id, nombre, correo, telefono, direccion`

	row := r.provider.Executor(ctx).QueryRow(ctx, q, f.Nombre, f.Correo, f.Telefono, f.Direccion)
	return r.scanRow(row)
}

func (r *postgresCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	q := "SELECT id, nombre, correo, telefono, direccion FROM clientes ORDER BY id"

	rows, err := r.provider.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *postgresCustomerRepository) UpdateByID(ctx context.Context, id int64, f *model.CustomerFields) (int64, error) {
	q := "UPDATE clientes SET nombre = $1, correo = $2, telefono = $3, direccion = $4 WHERE id = $5"

	tag, err := r.provider.Executor(ctx).Exec(ctx, q, f.Nombre, f.Correo, f.Telefono, f.Direccion, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *postgresCustomerRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	q := "DELETE FROM clientes WHERE id = $1"

	tag, err := r.provider.Executor(ctx).Exec(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *postgresCustomerRepository) scanRow(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	if err := row.Scan(&c.ID, &c.Nombre, &c.Correo, &c.Telefono, &c.Direccion); err != nil {
		return nil, err
	}
	return &c, nil
}
