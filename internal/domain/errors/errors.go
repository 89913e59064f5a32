package errors

import "errors"

var (
	ErrAlreadyExists         = errors.New("already exists")
	ErrNotFound              = errors.New("not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrMissingActor          = errors.New("actor is not set in request context")
	ErrAddressMissing        = errors.New("delivery address not found")
	ErrCartEmpty             = errors.New("shopping cart is empty")
	ErrItemOnSale            = errors.New("menu item is on sale")
	ErrItemReferencedByCombo = errors.New("menu item is referenced by a combo")
	ErrInvalidQuantity       = errors.New("invalid quantity")
)
