package job

type JobResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
