package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/sahajranjan/jobportal/config"
	"github.com/sahajranjan/jobportal/internal/dto"
	"google.golang.org/api/option"
)

// CoverLetterService drafts a cover letter with Gemini. Without an API key
// it falls back to a deterministic template so the endpoint keeps working
// in development.
type CoverLetterService interface {
	Generate(ctx context.Context, req dto.CoverLetterRequest) (*dto.CoverLetterResponse, error)
}

type coverLetterService struct {
	model *genai.GenerativeModel
}

func NewCoverLetterService(cfg *config.Config) (CoverLetterService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set; cover letters will use the built-in template")
		return &coverLetterService{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("initializing Gemini client: %w", err)
	}
	return &coverLetterService{model: client.GenerativeModel("gemini-1.5-flash")}, nil
}

func (s *coverLetterService) Generate(ctx context.Context, req dto.CoverLetterRequest) (*dto.CoverLetterResponse, error) {
	if s.model == nil {
		return &dto.CoverLetterResponse{CoverLetter: templateLetter(req)}, nil
	}

	prompt := fmt.Sprintf(
		"Write a concise, professional cover letter (under 250 words) for %s applying to the %s position at %s.",
		req.FullName, req.JobTitle, req.Company)
	if len(req.Skills) > 0 {
		prompt += fmt.Sprintf(" Key skills: %s.", strings.Join(req.Skills, ", "))
	}
	if req.Experience != "" {
		prompt += fmt.Sprintf(" Relevant experience: %s.", req.Experience)
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("jobTitle", req.JobTitle).Msg("Gemini cover letter generation failed")
		// Degrade to the template rather than surfacing an upstream error.
		return &dto.CoverLetterResponse{CoverLetter: templateLetter(req)}, nil
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	letter := strings.TrimSpace(sb.String())
	if letter == "" {
		letter = templateLetter(req)
	}
	return &dto.CoverLetterResponse{CoverLetter: letter}, nil
}

func templateLetter(req dto.CoverLetterRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Dear Hiring Manager,\n\n")
	fmt.Fprintf(&sb, "I am writing to express my interest in the %s position at %s.", req.JobTitle, req.Company)
	if req.Experience != "" {
		fmt.Fprintf(&sb, " With %s, I am confident I can contribute from day one.", req.Experience)
	}
	if len(req.Skills) > 0 {
		fmt.Fprintf(&sb, " My core skills include %s.", strings.Join(req.Skills, ", "))
	}
	fmt.Fprintf(&sb, "\n\nI would welcome the opportunity to discuss how my background fits your team.\n\nSincerely,\n%s", req.FullName)
	return sb.String()
}
