package dto

// MetaResponse exposes the form catalogs callers need to build submissions
type MetaResponse struct {
	Schools          []string `json:"schools"`
	DeliverableTypes []string `json:"deliverableTypes"`
	Roles            []string `json:"roles"`
}
