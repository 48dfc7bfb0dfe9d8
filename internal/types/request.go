package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest represents the request to analyze a resume against a job
// description. Exactly one of ResumeText or ResumeURL, and exactly one of
// JobText or JobURL, must be provided. Weight optionally overrides the
// server's configured match/compensation blend for this request; zero
// means use the configured weight.
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text,omitempty" validate:"required_without=ResumeURL,excluded_with=ResumeURL"`
	ResumeURL  string `json:"resume_url,omitempty" validate:"omitempty,url"`
	JobText    string `json:"job_text,omitempty" validate:"required_without=JobURL,excluded_with=JobURL"`
	JobURL     string `json:"job_url,omitempty" validate:"omitempty,url"`

	SalaryMin     string `json:"salary_min,omitempty"`
	SalaryMax     string `json:"salary_max,omitempty"`
	RoleSalaryMin string `json:"role_salary_min,omitempty"`
	RoleSalaryMax string `json:"role_salary_max,omitempty"`

	Weight float64 `json:"weight,omitempty" validate:"omitempty,gt=0,lt=1"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
