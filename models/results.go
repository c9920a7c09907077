package models

// DirectoryEntry is one row of the employee directory view (employees joined
// with roles, one row per employee).
type DirectoryEntry struct {
	EmployeeID   int    `json:"employee_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	JobTitle     string `json:"job_title"`
	Location     string `json:"location"`
	Skills       string `json:"skills"`
	StandardRole string `json:"standard_role"`
	LinkedInURL  string `json:"linkedin_url"`
}

// BillingByEmployeeRow is one billing record with employee and project
// details attached.
type BillingByEmployeeRow struct {
	EmployeeID    int     `json:"employee_id"`
	Name          string  `json:"name"`
	BillingCode   string  `json:"billing_code"`
	ProjectName   string  `json:"project_name"`
	Client        string  `json:"client"`
	Year          int     `json:"year"`
	HoursBilled   float64 `json:"hours_billed"`
	RoleInProject string  `json:"role_in_project"`
}

// BillingByProjectRow is one billing record oriented around the project team.
type BillingByProjectRow struct {
	BillingCode   string  `json:"billing_code"`
	ProjectName   string  `json:"project_name"`
	Client        string  `json:"client"`
	EmployeeID    int     `json:"employee_id"`
	Name          string  `json:"name"`
	JobTitle      string  `json:"job_title"`
	Year          int     `json:"year"`
	HoursBilled   float64 `json:"hours_billed"`
	RoleInProject string  `json:"role_in_project"`
}

// YearSummary aggregates billed hours per (year, client, industry, project).
type YearSummary struct {
	Year          int     `json:"year"`
	Client        string  `json:"client"`
	Industry      string  `json:"industry"`
	ProjectName   string  `json:"project_name"`
	TotalHours    float64 `json:"total_hours"`
	EmployeeCount int     `json:"employee_count"`
}

// ResumeProfile joins an employee with their resume record.
type ResumeProfile struct {
	EmployeeID     int    `json:"employee_id"`
	Name           string `json:"name"`
	JobTitle       string `json:"job_title"`
	Location       string `json:"location"`
	Skills         string `json:"skills"`
	Education      string `json:"education"`
	Experience     string `json:"experience"`
	Certifications string `json:"certifications"`
	Summary        string `json:"summary"`
	LinkedInURL    string `json:"linkedin_url"`
}

// DeliverableRecord is a deliverable joined with its project.
type DeliverableRecord struct {
	BillingCode  string  `json:"billing_code"`
	ProjectName  string  `json:"project_name"`
	Deliverable  string  `json:"deliverable"`
	DateCompleted string `json:"date_completed"`
	TopicArea    string  `json:"topic_area"`
	Technologies string  `json:"technologies"`
	Client       string  `json:"client"`
	Codebase     string  `json:"codebase"`
	Industry     string  `json:"industry"`
	DollarAmount float64 `json:"dollar_amount"`
}

// IndustrySummary aggregates billing activity per (industry, client).
type IndustrySummary struct {
	Industry      string  `json:"industry"`
	Client        string  `json:"client"`
	ProjectCount  int     `json:"project_count"`
	TotalHours    float64 `json:"total_hours"`
	EmployeeCount int     `json:"employee_count"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// SkillSummary counts employees per individual skill after exploding the
// semicolon-delimited skill lists.
type SkillSummary struct {
	Skill         string `json:"skill"`
	EmployeeCount int    `json:"employee_count"`
	Locations     string `json:"locations"`
}

// RoleSummary counts employees per standardized role.
type RoleSummary struct {
	StandardRole  string `json:"standard_role"`
	EmployeeCount int    `json:"employee_count"`
	Locations     string `json:"locations"`
}

// SearchResult is one employee row of the multi-table search, grouped per
// employee with client/industry history concatenated.
type SearchResult struct {
	EmployeeID       int     `json:"employee_id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	JobTitle         string  `json:"job_title"`
	Location         string  `json:"location"`
	Skills           string  `json:"skills"`
	StandardRole     string  `json:"standard_role"`
	Education        string  `json:"education"`
	Experience       string  `json:"experience"`
	Certifications   string  `json:"certifications"`
	ClientsWorked    string  `json:"clients_worked"`
	IndustriesWorked string  `json:"industries_worked"`
	TotalHoursBilled float64 `json:"total_hours_billed"`
}

// ProjectHistoryRow is one row of an employee's project history. The join
// against deliverables fans out per deliverable, so the same project can
// appear once per deliverable; callers de-duplicate for display.
type ProjectHistoryRow struct {
	Name          string  `json:"name"`
	JobTitle      string  `json:"job_title"`
	ProjectName   string  `json:"project_name"`
	Client        string  `json:"client"`
	Industry      string  `json:"industry"`
	Technologies  string  `json:"technologies"`
	Year          int     `json:"year"`
	HoursBilled   float64 `json:"hours_billed"`
	RoleInProject string  `json:"role_in_project"`
	Deliverable   string  `json:"deliverable"`
	DateCompleted string  `json:"date_completed"`
}

// Stats holds the dashboard headline numbers.
type Stats struct {
	TotalEmployees    int     `json:"total_employees"`
	TotalProjects     int     `json:"total_projects"`
	TotalBillingRows  int     `json:"total_billing_rows"`
	TotalDeliverables int     `json:"total_deliverables"`
	TotalRoles        int     `json:"total_roles"`
	TotalHoursBilled  float64 `json:"total_hours_billed"`
	TotalRevenue      float64 `json:"total_revenue"`
}

// StaffingCandidate is a directory entry decorated with the canned fit score
// used by the staffing matrix demo. Scores are looked up, never computed.
type StaffingCandidate struct {
	DirectoryEntry
	FitScore        int    `json:"fit_score"`
	RecommendedRole string `json:"recommended_role"`
	MatchRationale  string `json:"match_rationale"`
}

// CostLine is one role's share of the staffing cost estimate.
type CostLine struct {
	Role       string  `json:"role"`
	Name       string  `json:"name"`
	HourlyRate float64 `json:"hourly_rate"`
	Hours      int     `json:"hours"`
	Subtotal   float64 `json:"subtotal"`
}

// CostEstimate is the full staffing cost breakdown with margin applied.
type CostEstimate struct {
	Lines        []CostLine `json:"lines"`
	TotalHours   int        `json:"total_hours"`
	BaseCost     float64    `json:"base_cost"`
	ProfitMargin float64    `json:"profit_margin"`
	ProfitAmount float64    `json:"profit_amount"`
	BidPrice     float64    `json:"bid_price"`
}
