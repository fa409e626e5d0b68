package invoices

import (
	"context"
	"database/sql"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/drivers/database"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/exceptions"
	"dentaflow-service/internal/pkg/queries"
)

type invoicePostgresRepository struct {
	DB *sql.DB
}

func NewInvoicePostgresRepository(db *sql.DB) contracts.InvoiceRepository {
	return &invoicePostgresRepository{
		DB: db,
	}
}

// Create inserts the invoice and its items. Callers wrap it in a transaction.
func (repo *invoicePostgresRepository) Create(ctx context.Context, invoice *models.Invoice) (*models.Invoice, error) {
	executor := database.Executor(ctx, repo.DB)
	err := executor.QueryRowContext(ctx, queries.InsertInvoice,
		invoice.ClinicID,
		invoice.PatientID,
		invoice.InvoiceNumber,
		invoice.Currency,
		invoice.Total,
		invoice.Tax,
		invoice.Discount,
		invoice.DueDate,
		invoice.Notes,
	).Scan(&invoice.ID, &invoice.IssuedAt, &invoice.UpdatedAt)
	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	for i := range invoice.Items {
		item := &invoice.Items[i]
		item.InvoiceID = invoice.ID
		err := executor.QueryRowContext(ctx, queries.InsertInvoiceItem,
			invoice.ID,
			item.Description,
			item.Quantity,
			item.UnitPrice,
			i,
		).Scan(&item.ID)
		if err != nil {
			return nil, exceptions.ErrPostgresDBInsertData(err)
		}
	}
	return invoice, nil
}

func (repo *invoicePostgresRepository) FindByID(ctx context.Context, clinicID, invoiceID string) (*models.Invoice, error) {
	return repo.findByID(ctx, queries.GetInvoiceByID, clinicID, invoiceID)
}

// FindByIDForUpdate locks the invoice row until the surrounding transaction ends.
func (repo *invoicePostgresRepository) FindByIDForUpdate(ctx context.Context, clinicID, invoiceID string) (*models.Invoice, error) {
	return repo.findByID(ctx, queries.GetInvoiceByIDForUpdate, clinicID, invoiceID)
}

func (repo *invoicePostgresRepository) findByID(ctx context.Context, query, clinicID, invoiceID string) (*models.Invoice, error) {
	executor := database.Executor(ctx, repo.DB)

	var invoice models.Invoice
	err := scanInvoice(executor.QueryRowContext(ctx, query, clinicID, invoiceID), &invoice)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	items, err := repo.findItems(ctx, executor, invoice.ID)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return &invoice, nil
}

func (repo *invoicePostgresRepository) findItems(ctx context.Context, executor database.DBTX, invoiceID string) ([]models.InvoiceItem, error) {
	rows, err := executor.QueryContext(ctx, queries.GetInvoiceItemsByInvoiceID, invoiceID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	items := make([]models.InvoiceItem, 0)
	for rows.Next() {
		var item models.InvoiceItem
		if err := rows.Scan(
			&item.ID,
			&item.InvoiceID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
		); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return items, nil
}

// FindAll lists invoice headers without their items.
func (repo *invoicePostgresRepository) FindAll(ctx context.Context, clinicID string, limit, offset int) ([]models.Invoice, error) {
	rows, err := database.Executor(ctx, repo.DB).QueryContext(ctx, queries.ListInvoicesByClinicID, clinicID, limit, offset)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	invoices := make([]models.Invoice, 0)
	for rows.Next() {
		var invoice models.Invoice
		if err := scanInvoice(rows, &invoice); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		invoices = append(invoices, invoice)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return invoices, nil
}

func (repo *invoicePostgresRepository) Count(ctx context.Context, clinicID string) (int, error) {
	var total int
	err := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.CountInvoicesByClinicID, clinicID).Scan(&total)
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return total, nil
}

func (repo *invoicePostgresRepository) UpdatePayment(ctx context.Context, invoice *models.Invoice) error {
	err := database.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.UpdateInvoicePayment,
		invoice.ClinicID,
		invoice.ID,
		invoice.Paid,
		string(invoice.Status),
	).Scan(&invoice.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return exceptions.ErrResourceNotFound(err, "invoice", invoice.ID)
		}
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanInvoice(row scanner, invoice *models.Invoice) error {
	return row.Scan(
		&invoice.ID,
		&invoice.ClinicID,
		&invoice.PatientID,
		&invoice.PatientName,
		&invoice.InvoiceNumber,
		&invoice.Currency,
		&invoice.Total,
		&invoice.Tax,
		&invoice.Discount,
		&invoice.Paid,
		&invoice.Status,
		&invoice.DueDate,
		&invoice.Notes,
		&invoice.IssuedAt,
		&invoice.UpdatedAt,
	)
}
