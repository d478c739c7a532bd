package employee

// ListEmployeesQuery binds the directory query string. Status, job and office
// accept FilterAll or an empty value to mean "any".
type ListEmployeesQuery struct {
	Query  string `form:"query"`
	Status string `form:"status"`
	Job    string `form:"job"`
	Office string `form:"office"`
	Page   int    `form:"page" binding:"omitempty,min=1,max=1000000"`
}

type EmployeeResponse struct {
	ID          string                       `json:"id" yaml:"id"`
	FirstName   string                       `json:"first_name" yaml:"first_name"`
	LastName    string                       `json:"last_name" yaml:"last_name"`
	Email       string                       `json:"email" yaml:"email"`
	Selected    bool                         `json:"selected" yaml:"selected"`
	Status      string                       `json:"status" yaml:"status"`
	Image       string                       `json:"image,omitempty" yaml:"image,omitempty"`
	Job         *EmployeeJobResponse         `json:"job" yaml:"job"`
	Department  *EmployeeDepartmentResponse  `json:"department" yaml:"department"`
	Office      *EmployeeOfficeResponse      `json:"office" yaml:"office"`
	LineManager *EmployeeLineManagerResponse `json:"line_manager" yaml:"line_manager"`
}

type EmployeeJobResponse struct {
	Title string `json:"title" yaml:"title"`
}

type EmployeeDepartmentResponse struct {
	Name string `json:"name" yaml:"name"`
}

type EmployeeOfficeResponse struct {
	Name string `json:"name" yaml:"name"`
}

type EmployeeLineManagerResponse struct {
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
}

// EmployeePageResponse is one directory page. HTTP renders Items as data and
// the rest as pagination meta; the CLI prints it whole.
type EmployeePageResponse struct {
	Items      []EmployeeResponse `json:"items" yaml:"items"`
	Total      int64              `json:"total" yaml:"total"`
	Page       int                `json:"page" yaml:"page"`
	PageSize   int                `json:"page_size" yaml:"page_size"`
	TotalPages int                `json:"total_pages" yaml:"total_pages"`
}

type EmployeeCountResponse struct {
	Count      int64 `json:"count" yaml:"count"`
	TotalPages int   `json:"total_pages" yaml:"total_pages"`
	PageSize   int   `json:"page_size" yaml:"page_size"`
}

type FilterOptionsResponse struct {
	Statuses    []string `json:"statuses"`
	Jobs        []string `json:"jobs"`
	Offices     []string `json:"offices"`
	Departments []string `json:"departments"`
}
