package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     AnalyzeRequest
		wantErr bool
	}{
		{
			"valid with job text",
			AnalyzeRequest{ResumeText: "resume", JobText: "posting"},
			false,
		},
		{
			"valid with job url",
			AnalyzeRequest{ResumeText: "resume", JobURL: "https://example.com/jobs/1"},
			false,
		},
		{
			"missing resume",
			AnalyzeRequest{JobText: "posting"},
			true,
		},
		{
			"missing job source",
			AnalyzeRequest{ResumeText: "resume"},
			true,
		},
		{
			"both job sources",
			AnalyzeRequest{ResumeText: "resume", JobText: "posting", JobURL: "https://example.com/jobs/1"},
			true,
		},
		{
			"malformed job url",
			AnalyzeRequest{ResumeText: "resume", JobURL: "not a url"},
			true,
		},
		{
			"valid with resume url",
			AnalyzeRequest{ResumeURL: "https://example.com/cv", JobText: "posting"},
			false,
		},
		{
			"both resume sources",
			AnalyzeRequest{ResumeText: "resume", ResumeURL: "https://example.com/cv", JobText: "posting"},
			true,
		},
		{
			"malformed resume url",
			AnalyzeRequest{ResumeURL: "not a url", JobText: "posting"},
			true,
		},
		{
			"salary fields are free-form",
			AnalyzeRequest{ResumeText: "resume", JobText: "posting", SalaryMin: "$95,000", RoleSalaryMax: "circa 120k"},
			false,
		},
		{
			"valid weight override",
			AnalyzeRequest{ResumeText: "resume", JobText: "posting", Weight: 0.5},
			false,
		},
		{
			"weight at one",
			AnalyzeRequest{ResumeText: "resume", JobText: "posting", Weight: 1},
			true,
		},
		{
			"weight above one",
			AnalyzeRequest{ResumeText: "resume", JobText: "posting", Weight: 1.5},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
