package repository

import "context"

// RepositoryFactory provides repositories bound to a single transaction so
// that multi-step writes share one unit of work.
type RepositoryFactory interface {
	UserRepo() UserRepository
	PaymentRepo() PaymentRepository
	BookingRepo() BookingRepository
}

// TransactionManager runs a function inside a database transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}
