package dto

// AddressRequest describes a new delivery address.
type AddressRequest struct {
	Consignee string `json:"consignee"`
	Phone     string `json:"phone"`
	Detail    string `json:"detail"`
	IsDefault bool   `json:"is_default,omitempty"`
}

// AddressResponse describes a stored delivery address.
type AddressResponse struct {
	ID        int64  `json:"id"`
	Consignee string `json:"consignee"`
	Phone     string `json:"phone"`
	Detail    string `json:"detail"`
	IsDefault bool   `json:"is_default"`
}

// ShopStatusResponse reports the shop open/closed flag.
type ShopStatusResponse struct {
	Status string `json:"status"`
}
