package orders

import "context"

type Order struct {
	ID    string
	Total int
}

type OrderRepositoryPort interface {
	Save(ctx context.Context, order Order) error
	FindByID(ctx context.Context, id string) (Order, error)
}

type NotifierPort interface {
	Notify(ctx context.Context, orderID string) error
}
