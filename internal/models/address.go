package models

// Address is the shipping address record. The store holds exactly one of
// these under a global key, shared by every account.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}
