package models

// Employee is one row of the employee master table.
// Skills is a semicolon-delimited free-text list with no canonical vocabulary.
type Employee struct {
	EmployeeID  int    `json:"employee_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	RoleID      string `json:"role_id"`
	JobTitle    string `json:"job_title"`
	Location    string `json:"location"`
	Skills      string `json:"skills"`
	LinkedInURL string `json:"linkedin_url"`
}

// Role maps a role identifier to the standardized role name and its
// known title variants.
type Role struct {
	RoleID            string `json:"role_id"`
	StandardRole      string `json:"standard_role"`
	RoleTitleVariants string `json:"role_title_variants"`
}

// Project is one row of the projects table, keyed by billing code.
type Project struct {
	BillingCode  string  `json:"billing_code"`
	ProjectName  string  `json:"project_name"`
	Client       string  `json:"client"`
	Industry     string  `json:"industry"`
	Technologies string  `json:"technologies"`
	DollarAmount float64 `json:"dollar_amount"`
	ProjectScope string  `json:"project_scope"`
}

// BillingEntry links an employee to a project for a given year.
type BillingEntry struct {
	BillingCode   string  `json:"billing_code"`
	EmployeeID    int     `json:"employee_id"`
	Year          int     `json:"year"`
	HoursBilled   float64 `json:"hours_billed"`
	RoleInProject string  `json:"role_in_project"`
}

// Resume holds the free-text resume fields for one employee.
type Resume struct {
	EmployeeID     int    `json:"employee_id"`
	Education      string `json:"education"`
	Experience     string `json:"experience"`
	Certifications string `json:"certifications"`
	Summary        string `json:"summary"`
}

// Deliverable is one delivered artifact for a project.
type Deliverable struct {
	BillingCode   string `json:"billing_code"`
	Deliverable   string `json:"deliverable"`
	DateCompleted string `json:"date_completed"`
	TopicArea     string `json:"topic_area"`
	Technologies  string `json:"technologies"`
	Client        string `json:"client"`
	Codebase      string `json:"codebase"`
}
