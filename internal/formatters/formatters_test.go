package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"careerpilot/internal/types"
)

func sampleSet() types.RecommendationSet {
	return types.RecommendationSet{
		Courses: []types.CourseItem{{
			Title:       "Leadership Fundamentals",
			Description: "Core skills for new leads",
			Duration:    "6 weeks",
			Price:       "$49.99",
			Format:      "Online",
		}},
		Jobs: []types.JobItem{{
			Title:    "Senior Software Engineer",
			Company:  "TechCorp",
			Location: "Remote",
			Salary:   "$140k-$180k",
		}},
	}
}

func TestFormatRecommendationsText(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleSet(), "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{
		"=== COURSES ===",
		"Leadership Fundamentals",
		"Duration: 6 weeks",
		"=== JOBS ===",
		"Company: TechCorp",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "=== EVENTS ===") {
		t.Error("empty events category rendered")
	}
}

func TestFormatRecommendationsMarkdown(t *testing.T) {
	out, err := GlobalRegistry.Format(sampleSet(), "markdown")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{
		"# Recommendations",
		"## Courses",
		"### Leadership Fundamentals",
		"- **Salary:** $140k-$180k",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\n%s", want, out)
		}
	}
}

func TestFormatEmptySetText(t *testing.T) {
	out, err := GlobalRegistry.Format(types.RecommendationSet{}, "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(out, "No recommendations available.") {
		t.Errorf("empty set output = %q", out)
	}
}

func TestFormatCVAnalysis(t *testing.T) {
	analysis := types.CVAnalysis{
		SkillsIdentified: []string{"Go", "SQL"},
		ExperienceLevel:  "Mid-Level",
		RecommendedRoles: []string{"Backend Engineer"},
	}

	text, err := GlobalRegistry.Format(analysis, "text")
	if err != nil {
		t.Fatalf("Format(text) error = %v", err)
	}
	if !strings.Contains(text, "Experience Level: Mid-Level") || !strings.Contains(text, "- Go") {
		t.Errorf("text output = %q", text)
	}

	md, err := GlobalRegistry.Format(analysis, "markdown")
	if err != nil {
		t.Fatalf("Format(markdown) error = %v", err)
	}
	if !strings.Contains(md, "## Skills Identified") {
		t.Errorf("markdown output = %q", md)
	}
}

func TestFormatProfile(t *testing.T) {
	resp := types.ConnectLinkedInResponse{
		ProfileData: types.ProfileData{
			Name:   "Jordan",
			Title:  "Engineer",
			Skills: []string{"Go", "Kubernetes"},
		},
		Suggestions: types.ProfileSuggestions{
			ProfileSummary:       "Experienced engineer.",
			RecommendedQuestions: []string{"What roles fit my skills?"},
		},
	}

	out, err := GlobalRegistry.Format(resp, "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	for _, want := range []string{"Name: Jordan", "Skills: Go, Kubernetes", "Questions to Explore"} {
		if !strings.Contains(out, want) {
			t.Errorf("profile output missing %q\n%s", want, out)
		}
	}
}

func TestJSONFallbackForAnyType(t *testing.T) {
	out, err := GlobalRegistry.Format(map[string]string{"hello": "world"}, "json")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]string
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["hello"] != "world" {
		t.Errorf("decoded = %v", decoded)
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleSet(), "xml"); err == nil {
		t.Error("Format() error = nil for unknown format")
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := GlobalRegistry.GetSupportedFormats()
	want := map[string]bool{"json": false, "text": false, "markdown": false}
	for _, f := range formats {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Errorf("format %q not registered", f)
		}
	}
}
