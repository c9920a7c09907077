package models

// Filter structs carry the optional query parameters for each operation.
// Zero values mean "no filter on that dimension". All string filters are
// case-insensitive substring matches; Skills and Technology filters are
// applied in-process against the semicolon-delimited list fields.

type DirectoryFilter struct {
	Skills   []string `json:"skills"`
	Role     string   `json:"role"`
	Location string   `json:"location"`
	Title    string   `json:"title"`
}

type ProjectFilter struct {
	Client     string  `json:"client"`
	Industry   string  `json:"industry"`
	Technology string  `json:"technology"`
	MinAmount  float64 `json:"min_amount" validate:"min=0"`
	MaxAmount  float64 `json:"max_amount" validate:"min=0"`
}

type DeliverableFilter struct {
	BillingCode string `json:"billing_code"`
	TopicArea   string `json:"topic_area"`
	Client      string `json:"client"`
	Technology  string `json:"technology"`
}

type SearchFilter struct {
	Skills             []string `json:"skills"`
	Location           string   `json:"location"`
	Role               string   `json:"role"`
	ClientExperience   string   `json:"client_experience"`
	IndustryExperience string   `json:"industry_experience"`
	MinYearsExp        int      `json:"min_years_exp" validate:"min=0"`
}
