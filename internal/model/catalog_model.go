package model

// CatalogItem mirrors one item from the similarity service. Image is a
// base64-encoded payload passed through to the frontend untouched.
type CatalogItem struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}

type CatalogPage struct {
	Items      []CatalogItem `json:"items"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
}
