package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"careerpilot/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "RecommendationSet", &RecommendationsTextFormatter{})
	registry.RegisterFormatter("markdown", "RecommendationSet", &RecommendationsMarkdownFormatter{})
	registry.RegisterFormatter("text", "CVAnalysis", &CVAnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "CVAnalysis", &CVAnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "ConnectLinkedInResponse", &ProfileTextFormatter{})
	registry.RegisterFormatter("markdown", "ConnectLinkedInResponse", &ProfileMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.RecommendationSet:
		return "RecommendationSet"
	case types.CVAnalysis:
		return "CVAnalysis"
	case types.ConnectLinkedInResponse:
		return "ConnectLinkedInResponse"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// RecommendationsTextFormatter handles text formatting for recommendation sets
type RecommendationsTextFormatter struct{}

func (rtf *RecommendationsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.RecommendationSet)
	if !ok {
		return "", fmt.Errorf("expected RecommendationSet, got %T", data)
	}

	var output strings.Builder

	if len(result.Courses) > 0 {
		output.WriteString("=== COURSES ===\n\n")
		for i, course := range result.Courses {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, course.Title))
			writeDetailLine(&output, "Description", course.Description)
			writeDetailLine(&output, "Duration", course.Duration)
			writeDetailLine(&output, "Price", course.Price)
			writeDetailLine(&output, "Format", course.Format)
			writeDetailLine(&output, "Link", course.Link)
			output.WriteString("\n")
		}
	}

	if len(result.Jobs) > 0 {
		output.WriteString("=== JOBS ===\n\n")
		for i, job := range result.Jobs {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, job.Title))
			writeDetailLine(&output, "Description", job.Description)
			writeDetailLine(&output, "Company", job.Company)
			writeDetailLine(&output, "Location", job.Location)
			writeDetailLine(&output, "Salary", job.Salary)
			writeDetailLine(&output, "Link", job.Link)
			output.WriteString("\n")
		}
	}

	if len(result.Events) > 0 {
		output.WriteString("=== EVENTS ===\n\n")
		for i, event := range result.Events {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, event.Title))
			writeDetailLine(&output, "Description", event.Description)
			writeDetailLine(&output, "Date", event.Date)
			writeDetailLine(&output, "Location", event.Location)
			writeDetailLine(&output, "Price", event.Price)
			writeDetailLine(&output, "Link", event.Link)
			output.WriteString("\n")
		}
	}

	if len(result.Workshops) > 0 {
		output.WriteString("=== WORKSHOPS ===\n\n")
		for i, workshop := range result.Workshops {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, workshop.Title))
			writeDetailLine(&output, "Description", workshop.Description)
			writeDetailLine(&output, "Duration", workshop.Duration)
			writeDetailLine(&output, "Price", workshop.Price)
			writeDetailLine(&output, "Spots", workshop.Spots)
			writeDetailLine(&output, "Link", workshop.Link)
			output.WriteString("\n")
		}
	}

	if output.Len() == 0 {
		output.WriteString("No recommendations available.\n")
	}

	return output.String(), nil
}

func writeDetailLine(output *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	output.WriteString("   ")
	output.WriteString(label)
	output.WriteString(": ")
	output.WriteString(value)
	output.WriteString("\n")
}

func (rtf *RecommendationsTextFormatter) SupportedType() string {
	return "RecommendationSet"
}

// RecommendationsMarkdownFormatter handles markdown formatting for recommendation sets
type RecommendationsMarkdownFormatter struct{}

func (rmf *RecommendationsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.RecommendationSet)
	if !ok {
		return "", fmt.Errorf("expected RecommendationSet, got %T", data)
	}

	var output strings.Builder
	output.WriteString("# Recommendations\n\n")

	if len(result.Courses) > 0 {
		output.WriteString("## Courses\n\n")
		for _, course := range result.Courses {
			output.WriteString(fmt.Sprintf("### %s\n\n", course.Title))
			if course.Description != "" {
				output.WriteString(course.Description)
				output.WriteString("\n\n")
			}
			writeMarkdownDetail(&output, "Duration", course.Duration)
			writeMarkdownDetail(&output, "Price", course.Price)
			writeMarkdownDetail(&output, "Format", course.Format)
			writeMarkdownDetail(&output, "Link", course.Link)
			output.WriteString("\n")
		}
	}

	if len(result.Jobs) > 0 {
		output.WriteString("## Jobs\n\n")
		for _, job := range result.Jobs {
			output.WriteString(fmt.Sprintf("### %s\n\n", job.Title))
			if job.Description != "" {
				output.WriteString(job.Description)
				output.WriteString("\n\n")
			}
			writeMarkdownDetail(&output, "Company", job.Company)
			writeMarkdownDetail(&output, "Location", job.Location)
			writeMarkdownDetail(&output, "Salary", job.Salary)
			writeMarkdownDetail(&output, "Link", job.Link)
			output.WriteString("\n")
		}
	}

	if len(result.Events) > 0 {
		output.WriteString("## Events\n\n")
		for _, event := range result.Events {
			output.WriteString(fmt.Sprintf("### %s\n\n", event.Title))
			if event.Description != "" {
				output.WriteString(event.Description)
				output.WriteString("\n\n")
			}
			writeMarkdownDetail(&output, "Date", event.Date)
			writeMarkdownDetail(&output, "Location", event.Location)
			writeMarkdownDetail(&output, "Price", event.Price)
			writeMarkdownDetail(&output, "Link", event.Link)
			output.WriteString("\n")
		}
	}

	if len(result.Workshops) > 0 {
		output.WriteString("## Workshops\n\n")
		for _, workshop := range result.Workshops {
			output.WriteString(fmt.Sprintf("### %s\n\n", workshop.Title))
			if workshop.Description != "" {
				output.WriteString(workshop.Description)
				output.WriteString("\n\n")
			}
			writeMarkdownDetail(&output, "Duration", workshop.Duration)
			writeMarkdownDetail(&output, "Price", workshop.Price)
			writeMarkdownDetail(&output, "Spots", workshop.Spots)
			writeMarkdownDetail(&output, "Link", workshop.Link)
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func writeMarkdownDetail(output *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	output.WriteString(fmt.Sprintf("- **%s:** %s\n", label, value))
}

func (rmf *RecommendationsMarkdownFormatter) SupportedType() string {
	return "RecommendationSet"
}

// CVAnalysisTextFormatter handles text formatting for CV analysis results
type CVAnalysisTextFormatter struct{}

func (ctf *CVAnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.CVAnalysis)
	if !ok {
		return "", fmt.Errorf("expected CVAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CV ANALYSIS ===\n\n")
	if result.ExperienceLevel != "" {
		output.WriteString(fmt.Sprintf("Experience Level: %s\n\n", result.ExperienceLevel))
	}

	if len(result.SkillsIdentified) > 0 {
		output.WriteString("Skills Identified:\n")
		for _, skill := range result.SkillsIdentified {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.RecommendedRoles) > 0 {
		output.WriteString("Recommended Roles:\n")
		for _, role := range result.RecommendedRoles {
			output.WriteString(fmt.Sprintf("- %s\n", role))
		}
		output.WriteString("\n")
	}

	if len(result.SkillGaps) > 0 {
		output.WriteString("Skill Gaps:\n")
		for _, gap := range result.SkillGaps {
			output.WriteString(fmt.Sprintf("- %s\n", gap))
		}
		output.WriteString("\n")
	}

	if len(result.RecommendedCourses) > 0 {
		output.WriteString("Recommended Courses:\n")
		for _, course := range result.RecommendedCourses {
			output.WriteString(fmt.Sprintf("- %s\n", course))
		}
	}

	return output.String(), nil
}

func (ctf *CVAnalysisTextFormatter) SupportedType() string {
	return "CVAnalysis"
}

// CVAnalysisMarkdownFormatter handles markdown formatting for CV analysis results
type CVAnalysisMarkdownFormatter struct{}

func (cmf *CVAnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.CVAnalysis)
	if !ok {
		return "", fmt.Errorf("expected CVAnalysis, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# CV Analysis\n\n")
	if result.ExperienceLevel != "" {
		output.WriteString(fmt.Sprintf("**Experience Level:** %s\n\n", result.ExperienceLevel))
	}

	writeMarkdownList(&output, "Skills Identified", result.SkillsIdentified)
	writeMarkdownList(&output, "Recommended Roles", result.RecommendedRoles)
	writeMarkdownList(&output, "Skill Gaps", result.SkillGaps)
	writeMarkdownList(&output, "Recommended Courses", result.RecommendedCourses)

	return output.String(), nil
}

func writeMarkdownList(output *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(fmt.Sprintf("## %s\n\n", heading))
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

func (cmf *CVAnalysisMarkdownFormatter) SupportedType() string {
	return "CVAnalysis"
}

// ProfileTextFormatter handles text formatting for connected profile results
type ProfileTextFormatter struct{}

func (ptf *ProfileTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ConnectLinkedInResponse)
	if !ok {
		return "", fmt.Errorf("expected ConnectLinkedInResponse, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== LINKEDIN PROFILE ===\n\n")
	writeProfileField(&output, "Name", result.ProfileData.Name)
	writeProfileField(&output, "Title", result.ProfileData.Title)
	writeProfileField(&output, "Company", result.ProfileData.Company)
	writeProfileField(&output, "Location", result.ProfileData.Location)
	if len(result.ProfileData.Skills) > 0 {
		output.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(result.ProfileData.Skills, ", ")))
	}
	output.WriteString("\n")

	if result.Suggestions.ProfileSummary != "" {
		output.WriteString("=== PROFILE SUMMARY ===\n")
		output.WriteString(result.Suggestions.ProfileSummary)
		output.WriteString("\n\n")
	}

	if result.Suggestions.CareerPath != "" {
		output.WriteString("Career Path: ")
		output.WriteString(result.Suggestions.CareerPath)
		output.WriteString("\n\n")
	}

	if len(result.Suggestions.SkillGaps) > 0 {
		output.WriteString("Skill Gaps:\n")
		for _, gap := range result.Suggestions.SkillGaps {
			output.WriteString(fmt.Sprintf("- %s\n", gap))
		}
		output.WriteString("\n")
	}

	if len(result.Suggestions.RecommendedQuestions) > 0 {
		output.WriteString("Questions to Explore:\n")
		for i, question := range result.Suggestions.RecommendedQuestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, question))
		}
	}

	return output.String(), nil
}

func writeProfileField(output *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	output.WriteString(label)
	output.WriteString(": ")
	output.WriteString(value)
	output.WriteString("\n")
}

func (ptf *ProfileTextFormatter) SupportedType() string {
	return "ConnectLinkedInResponse"
}

// ProfileMarkdownFormatter handles markdown formatting for connected profile results
type ProfileMarkdownFormatter struct{}

func (pmf *ProfileMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ConnectLinkedInResponse)
	if !ok {
		return "", fmt.Errorf("expected ConnectLinkedInResponse, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# LinkedIn Profile\n\n")
	if result.ProfileData.Name != "" {
		output.WriteString(fmt.Sprintf("**Name:** %s\n\n", result.ProfileData.Name))
	}
	if result.ProfileData.Title != "" {
		output.WriteString(fmt.Sprintf("**Title:** %s\n\n", result.ProfileData.Title))
	}
	if result.ProfileData.Company != "" {
		output.WriteString(fmt.Sprintf("**Company:** %s\n\n", result.ProfileData.Company))
	}
	if len(result.ProfileData.Skills) > 0 {
		output.WriteString(fmt.Sprintf("**Skills:** %s\n\n", strings.Join(result.ProfileData.Skills, ", ")))
	}

	if result.Suggestions.ProfileSummary != "" {
		output.WriteString("## Profile Summary\n\n")
		output.WriteString(result.Suggestions.ProfileSummary)
		output.WriteString("\n\n")
	}

	writeMarkdownList(&output, "Skill Gaps", result.Suggestions.SkillGaps)
	writeMarkdownList(&output, "Questions to Explore", result.Suggestions.RecommendedQuestions)

	if result.Suggestions.CareerPath != "" {
		output.WriteString("## Career Path\n\n")
		output.WriteString(result.Suggestions.CareerPath)
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (pmf *ProfileMarkdownFormatter) SupportedType() string {
	return "ConnectLinkedInResponse"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
