package service

import (
	"context"
	"strings"
	"testing"

	"github.com/sahajranjan/jobportal/config"
	"github.com/sahajranjan/jobportal/internal/dto"
)

func TestCoverLetterFallsBackToTemplateWithoutAPIKey(t *testing.T) {
	svc, err := NewCoverLetterService(&config.Config{})
	if err != nil {
		t.Fatalf("NewCoverLetterService: %v", err)
	}

	resp, err := svc.Generate(context.Background(), dto.CoverLetterRequest{
		FullName:   "Ada Lovelace",
		JobTitle:   "Backend Engineer",
		Company:    "Acme",
		Skills:     []string{"Go", "PostgreSQL"},
		Experience: "4 years building APIs",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, want := range []string{"Ada Lovelace", "Backend Engineer", "Acme", "Go, PostgreSQL"} {
		if !strings.Contains(resp.CoverLetter, want) {
			t.Errorf("letter missing %q:\n%s", want, resp.CoverLetter)
		}
	}
}

func TestTemplateLetterOmitsEmptySections(t *testing.T) {
	letter := templateLetter(dto.CoverLetterRequest{
		FullName: "Ada Lovelace",
		JobTitle: "Backend Engineer",
		Company:  "Acme",
	})
	if strings.Contains(letter, "core skills") {
		t.Error("skills sentence should be omitted when no skills are given")
	}
	if strings.Contains(letter, "confident I can contribute") {
		t.Error("experience sentence should be omitted when no experience is given")
	}
}
