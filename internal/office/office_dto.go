package office

type OfficeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
