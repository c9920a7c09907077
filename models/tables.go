package models

import "strconv"

// Table is the export-facing shape of any query result: a header plus rows
// of stringified cells, in render order.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// DirectoryTable converts directory entries into an exportable table.
func DirectoryTable(entries []DirectoryEntry) Table {
	t := Table{Columns: []string{
		"Employee_ID", "Name", "Email", "Job_Title", "Location", "Skills",
		"Standard_Role", "LinkedIn_URL",
	}}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(e.EmployeeID), e.Name, e.Email, e.JobTitle,
			e.Location, e.Skills, e.StandardRole, e.LinkedInURL,
		})
	}
	return t
}

// ProjectTable converts project rows into an exportable table.
func ProjectTable(projects []Project) Table {
	t := Table{Columns: []string{
		"Billing_Code", "Project_Name", "Client", "Industry", "Technologies",
		"Dollar_Amount", "Project_Scope",
	}}
	for _, p := range projects {
		t.Rows = append(t.Rows, []string{
			p.BillingCode, p.ProjectName, p.Client, p.Industry,
			p.Technologies, formatFloat(p.DollarAmount), p.ProjectScope,
		})
	}
	return t
}

// BillingByEmployeeTable converts billing-by-employee rows into a table.
func BillingByEmployeeTable(rows []BillingByEmployeeRow) Table {
	t := Table{Columns: []string{
		"Employee_ID", "Name", "Billing_Code", "Project_Name", "Client",
		"Year", "Hours_Billed", "Role_in_Project",
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.EmployeeID), r.Name, r.BillingCode, r.ProjectName,
			r.Client, strconv.Itoa(r.Year), formatFloat(r.HoursBilled),
			r.RoleInProject,
		})
	}
	return t
}

// BillingByProjectTable converts billing-by-project rows into a table.
func BillingByProjectTable(rows []BillingByProjectRow) Table {
	t := Table{Columns: []string{
		"Billing_Code", "Project_Name", "Client", "Employee_ID", "Name",
		"Job_Title", "Year", "Hours_Billed", "Role_in_Project",
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.BillingCode, r.ProjectName, r.Client, strconv.Itoa(r.EmployeeID),
			r.Name, r.JobTitle, strconv.Itoa(r.Year),
			formatFloat(r.HoursBilled), r.RoleInProject,
		})
	}
	return t
}

// YearSummaryTable converts year summaries into a table.
func YearSummaryTable(rows []YearSummary) Table {
	t := Table{Columns: []string{
		"Year", "Client", "Industry", "Project_Name", "Total_Hours",
		"Employee_Count",
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.Year), r.Client, r.Industry, r.ProjectName,
			formatFloat(r.TotalHours), strconv.Itoa(r.EmployeeCount),
		})
	}
	return t
}

// DeliverableTable converts deliverable records into a table.
func DeliverableTable(rows []DeliverableRecord) Table {
	t := Table{Columns: []string{
		"Billing_Code", "Project_Name", "Deliverable", "Date_Completed",
		"Topic_Area", "Technologies", "Client", "Codebase", "Industry",
		"Dollar_Amount",
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.BillingCode, r.ProjectName, r.Deliverable, r.DateCompleted,
			r.TopicArea, r.Technologies, r.Client, r.Codebase, r.Industry,
			formatFloat(r.DollarAmount),
		})
	}
	return t
}

// SearchResultTable converts search results into a table.
func SearchResultTable(rows []SearchResult) Table {
	t := Table{Columns: []string{
		"Employee_ID", "Name", "Email", "Job_Title", "Location", "Skills",
		"Standard_Role", "Education", "Experience", "Certifications",
		"Clients_Worked", "Industries_Worked", "Total_Hours_Billed",
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.EmployeeID), r.Name, r.Email, r.JobTitle,
			r.Location, r.Skills, r.StandardRole, r.Education, r.Experience,
			r.Certifications, r.ClientsWorked, r.IndustriesWorked,
			formatFloat(r.TotalHoursBilled),
		})
	}
	return t
}

// StaffingTable converts staffing candidates into a table.
func StaffingTable(rows []StaffingCandidate) Table {
	t := Table{Columns: []string{
		"Employee_ID", "Name", "Job_Title", "Location", "Skills",
		"Fit_Score", "Recommended_Role", "Match_Rationale",
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.EmployeeID), r.Name, r.JobTitle, r.Location,
			r.Skills, strconv.Itoa(r.FitScore), r.RecommendedRole,
			r.MatchRationale,
		})
	}
	return t
}
