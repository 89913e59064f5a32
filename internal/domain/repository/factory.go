package repository

import "context"

// Factory describes access to different domain repositories.
type Factory interface {
	Accounts() AccountRepository
	Addresses() AddressRepository
	Carts() CartRepository
	Menu() MenuRepository
	Orders() OrderRepository
	Shop() ShopRepository
}

// Atomic runs fn against a transaction-bound Factory. Either every write fn
// issues becomes visible or none does; fn returning an error rolls back all
// of them.
type Atomic interface {
	RunAtomic(ctx context.Context, fn func(Factory) error) error
}
