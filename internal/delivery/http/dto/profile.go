package dto

import (
	"time"

	"github.com/Chidwan3578/Veridex-Local/internal/usecase"
)

type UpdateProfileRequest struct {
	Name             *string  `json:"name"`
	CGPA             *float64 `json:"cgpa"`
	GithubUsername   *string  `json:"github_username"`
	LeetcodeUsername *string  `json:"leetcode_username"`
	LinkedinURL      *string  `json:"linkedin_url"`
	ResumeText       *string  `json:"resume_text"`
}

type ProfileResponse struct {
	UserID           string   `json:"user_id"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	CGPA             float64  `json:"cgpa"`
	OverallScore     float64  `json:"overall_score"`
	RiskLabel        string   `json:"risk_label"`
	DataCompleteness float64  `json:"data_completeness"`
	LastActiveDate   string   `json:"last_active_date"`
	GithubUsername   string   `json:"github_username,omitempty"`
	LeetcodeUsername string   `json:"leetcode_username,omitempty"`
	LeetcodeScore    *float64 `json:"leetcode_score,omitempty"`
	LeetcodeRank     *int     `json:"leetcode_rank,omitempty"`
	LinkedinURL      string   `json:"linkedin_url,omitempty"`
	ResumeText       string   `json:"resume_text,omitempty"`
	SkillCount       int      `json:"skill_count"`
}

func NewProfileResponse(v usecase.ProfileView) ProfileResponse {
	return ProfileResponse{
		UserID:           v.Profile.UserID.String(),
		Name:             v.User.Name,
		Email:            v.User.Email,
		CGPA:             v.Profile.CGPA,
		OverallScore:     v.Profile.OverallScore,
		RiskLabel:        v.Profile.RiskLabel,
		DataCompleteness: v.Profile.DataCompleteness,
		LastActiveDate:   v.Profile.LastActiveDate.UTC().Format(time.RFC3339),
		GithubUsername:   v.Profile.GithubUsername,
		LeetcodeUsername: v.Profile.LeetcodeUsername,
		LeetcodeScore:    v.Profile.LeetcodeScore,
		LeetcodeRank:     v.Profile.LeetcodeRank,
		LinkedinURL:      v.Profile.LinkedinURL,
		ResumeText:       v.Profile.ResumeText,
		SkillCount:       len(v.Skills),
	}
}
