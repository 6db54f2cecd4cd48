package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"careerpilot/internal/config"
	"careerpilot/internal/errors"
	"careerpilot/internal/types"
)

func testClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	cfg := &config.BackendConfig{
		BaseURL:       serverURL,
		Timeout:       5 * time.Second,
		UploadTimeout: 5 * time.Second,
		MaxRetries:    0,
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled: false,
		},
	}

	client, err := NewClient(cfg, nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func samplePreferences() types.Preferences {
	return types.Preferences{
		Interests:         []string{"Technology", "Leadership"},
		CareerLevel:       "Mid-Level",
		Goal:              "advancement",
		Industry:          "All Industries",
		Location:          "Remote",
		Experience:        "3-5 years",
		LinkedInConnected: false,
	}
}

func TestChat(t *testing.T) {
	var gotReq types.ChatRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/chat" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if err := json.NewEncoder(w).Encode(types.ChatResponse{
			Response: "Here are some suggestions.",
			Status:   types.StatusSuccess,
		}); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	reply, err := client.Chat(context.Background(), "help me find a job", samplePreferences())
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "Here are some suggestions." {
		t.Errorf("Chat() = %q", reply)
	}
	if gotReq.Message != "help me find a job" {
		t.Errorf("request message = %q", gotReq.Message)
	}
	if gotReq.Preferences == nil || gotReq.Preferences.Goal != "advancement" {
		t.Errorf("request preferences = %+v", gotReq.Preferences)
	}
}

func TestChatBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadRequest)
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Chat(context.Background(), "hello", samplePreferences())
	if err == nil {
		t.Fatal("Chat() error = nil, want error")
	}

	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Code != errors.ErrCodeBackendStatus {
		t.Errorf("error code = %q, want %q", appErr.Code, errors.ErrCodeBackendStatus)
	}
}

func TestRecommendationsQueryEncoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/recommendations" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q["interests"]; len(got) != 2 || got[0] != "Technology" || got[1] != "Leadership" {
			t.Errorf("interests = %v", got)
		}
		if q.Get("career_level") != "Mid-Level" {
			t.Errorf("career_level = %q", q.Get("career_level"))
		}
		if q.Get("goal") != "advancement" {
			t.Errorf("goal = %q", q.Get("goal"))
		}

		if err := json.NewEncoder(w).Encode(types.RecommendationsResponse{
			Status: types.StatusSuccess,
			Recommendations: types.RecommendationSet{
				Courses: []types.CourseItem{{Title: "Go Deep Dive", Duration: "6 weeks"}},
				Jobs:    []types.JobItem{{Title: "Platform Engineer", Company: "Acme"}},
			},
		}); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	set, err := client.Recommendations(context.Background(), samplePreferences())
	if err != nil {
		t.Fatalf("Recommendations() error = %v", err)
	}
	if len(set.Courses) != 1 || set.Courses[0].Title != "Go Deep Dive" {
		t.Errorf("courses = %+v", set.Courses)
	}
	if len(set.Jobs) != 1 || set.Jobs[0].Company != "Acme" {
		t.Errorf("jobs = %+v", set.Jobs)
	}
}

func TestRecommendationsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewEncoder(w).Encode(types.RecommendationsResponse{Status: "error"}); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	if _, err := client.Recommendations(context.Background(), samplePreferences()); err == nil {
		t.Fatal("Recommendations() error = nil, want error")
	}
}

func TestConnectLinkedIn(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/connect-linkedin" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req types.ConnectLinkedInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.LinkedInURL != "https://linkedin.com/in/someone" {
			t.Errorf("linkedin_url = %q", req.LinkedInURL)
		}

		if err := json.NewEncoder(w).Encode(types.ConnectLinkedInResponse{
			Status: types.StatusSuccess,
			ProfileData: types.ProfileData{
				Name:   "Someone",
				Title:  "Engineer",
				Skills: []string{"Go", "Kubernetes"},
			},
		}); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	resp, err := client.ConnectLinkedIn(context.Background(), "https://linkedin.com/in/someone")
	if err != nil {
		t.Fatalf("ConnectLinkedIn() error = %v", err)
	}
	if resp.ProfileData.Name != "Someone" || len(resp.ProfileData.Skills) != 2 {
		t.Errorf("profile = %+v", resp.ProfileData)
	}
}

func TestUploadCV(t *testing.T) {
	dir := t.TempDir()
	cvPath := filepath.Join(dir, "resume.pdf")
	if err := os.WriteFile(cvPath, []byte("%PDF-1.4 fake resume"), 0o644); err != nil {
		t.Fatalf("writing cv fixture: %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/upload-cv" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parsing multipart form: %v", err)
		}
		file, header, err := r.FormFile("cv_file")
		if err != nil {
			t.Fatalf("cv_file field missing: %v", err)
		}
		defer file.Close()
		if header.Filename != "resume.pdf" {
			t.Errorf("filename = %q", header.Filename)
		}

		if err := json.NewEncoder(w).Encode(types.UploadCVResponse{
			Status: types.StatusSuccess,
			Analysis: types.CVAnalysis{
				SkillsIdentified: []string{"Go", "Python"},
				ExperienceLevel:  "Mid-Level",
			},
		}); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	resp, err := client.UploadCV(context.Background(), cvPath)
	if err != nil {
		t.Fatalf("UploadCV() error = %v", err)
	}
	if len(resp.Analysis.SkillsIdentified) != 2 {
		t.Errorf("skills = %v", resp.Analysis.SkillsIdentified)
	}
}

func TestUploadCVMissingFile(t *testing.T) {
	client := testClient(t, "http://127.0.0.1:0")
	_, err := client.UploadCV(context.Background(), "/nonexistent/resume.pdf")
	if err == nil {
		t.Fatal("UploadCV() error = nil, want error")
	}
	if !strings.Contains(err.Error(), errors.ErrCodeFileNotReadable) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeFileNotReadable)
	}
}

func TestRetryOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			http.Error(w, "try again", http.StatusServiceUnavailable)
			return
		}
		if err := json.NewEncoder(w).Encode(types.ChatResponse{
			Response: "recovered",
			Status:   types.StatusSuccess,
		}); err != nil {
			t.Errorf("encoding response: %v", err)
		}
	}))
	defer server.Close()

	cfg := &config.BackendConfig{
		BaseURL:        server.URL,
		Timeout:        5 * time.Second,
		UploadTimeout:  5 * time.Second,
		MaxRetries:     2,
		CircuitBreaker: config.CircuitBreakerConfig{Enabled: false},
	}
	client, err := NewClient(cfg, nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	reply, err := client.Chat(context.Background(), "hello", samplePreferences())
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if reply != "recovered" {
		t.Errorf("Chat() = %q", reply)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestNoRetryOnClientError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer server.Close()

	cfg := &config.BackendConfig{
		BaseURL:        server.URL,
		Timeout:        5 * time.Second,
		UploadTimeout:  5 * time.Second,
		MaxRetries:     3,
		CircuitBreaker: config.CircuitBreakerConfig{Enabled: false},
	}
	client, err := NewClient(cfg, nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	if _, err := client.Chat(context.Background(), "hello", samplePreferences()); err == nil {
		t.Fatal("Chat() error = nil, want error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := &config.BackendConfig{
		BaseURL:       server.URL,
		Timeout:       5 * time.Second,
		UploadTimeout: 5 * time.Second,
		MaxRetries:    0,
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          time.Minute,
			MinRequests:      3,
			FailureThreshold: 0.5,
		},
	}
	client, err := NewClient(cfg, nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	for range 3 {
		if _, err := client.Chat(context.Background(), "hello", samplePreferences()); err == nil {
			t.Fatal("Chat() error = nil, want error")
		}
	}

	if client.Healthy() {
		t.Error("Healthy() = true after repeated failures, want false")
	}

	_, err = client.Chat(context.Background(), "hello", samplePreferences())
	appErr, ok := err.(*errors.AppError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.AppError", err)
	}
	if appErr.Code != errors.ErrCodeCircuitOpen {
		t.Errorf("error code = %q, want %q", appErr.Code, errors.ErrCodeCircuitOpen)
	}
}
