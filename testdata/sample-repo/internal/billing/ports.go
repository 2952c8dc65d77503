package billing

import "context"

type Invoice struct {
	ID     string
	Amount int
}

type InvoiceRepositoryPort interface {
	Save(ctx context.Context, invoice Invoice) error
}

type NotifierPort interface {
	Notify(ctx context.Context, invoiceID string) error
}
