package types

// Preferences is the wire form of the user's filter state, sent with
// chat and recommendation requests.
type Preferences struct {
	Interests         []string `json:"interests"`
	CareerLevel       string   `json:"career_level"`
	Goal              string   `json:"goal"`
	Industry          string   `json:"industry"`
	Location          string   `json:"location"`
	Experience        string   `json:"experience"`
	LinkedInConnected bool     `json:"linkedin_connected,omitempty"`
}

// ChatRequest is the body of POST /api/chat
type ChatRequest struct {
	Message     string       `json:"message"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// ChatResponse is the reply from POST /api/chat
type ChatResponse struct {
	Response string `json:"response"`
	Status   string `json:"status"`
}

// CourseItem is one entry of the courses category
type CourseItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	Format      string `json:"format"`
	Type        string `json:"type"`
	Link        string `json:"link,omitempty"`
}

// JobItem is one entry of the jobs category
type JobItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Company     string `json:"company"`
	Type        string `json:"type"`
	Link        string `json:"link,omitempty"`
}

// EventItem is one entry of the events category
type EventItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Price       string `json:"price"`
	Type        string `json:"type"`
	Link        string `json:"link,omitempty"`
}

// WorkshopItem is one entry of the workshops category
type WorkshopItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	Spots       string `json:"spots"`
	Type        string `json:"type"`
	Link        string `json:"link,omitempty"`
}

// RecommendationSet groups recommendation entries by category
type RecommendationSet struct {
	Courses   []CourseItem   `json:"courses"`
	Jobs      []JobItem      `json:"jobs"`
	Events    []EventItem    `json:"events"`
	Workshops []WorkshopItem `json:"workshops"`
}

// RecommendationsResponse is the reply from GET /api/recommendations
type RecommendationsResponse struct {
	Status          string            `json:"status"`
	Recommendations RecommendationSet `json:"recommendations"`
}

// ConnectLinkedInRequest is the body of POST /api/connect-linkedin
type ConnectLinkedInRequest struct {
	LinkedInURL string `json:"linkedin_url"`
}

// ProfileData describes the connected LinkedIn profile
type ProfileData struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Skills   []string `json:"skills"`
}

// ProfileSuggestions carries assistant guidance derived from the profile
type ProfileSuggestions struct {
	WelcomeMessage       string   `json:"welcome_message"`
	ProfileSummary       string   `json:"profile_summary"`
	RecommendedQuestions []string `json:"recommended_questions"`
	SkillGaps            []string `json:"skill_gaps"`
	CareerPath           string   `json:"career_path"`
}

// ConnectLinkedInResponse is the reply from POST /api/connect-linkedin
type ConnectLinkedInResponse struct {
	Status             string             `json:"status"`
	UpdatedPreferences Preferences        `json:"updated_preferences"`
	ProfileData        ProfileData        `json:"profile_data"`
	Suggestions        ProfileSuggestions `json:"suggestions"`
}

// CVAnalysis is the analysis block of the CV upload reply
type CVAnalysis struct {
	SkillsIdentified   []string `json:"skills_identified"`
	ExperienceLevel    string   `json:"experience_level"`
	RecommendedRoles   []string `json:"recommended_roles"`
	SkillGaps          []string `json:"skill_gaps"`
	RecommendedCourses []string `json:"recommended_courses"`
}

// UploadCVResponse is the reply from POST /api/upload-cv
type UploadCVResponse struct {
	Status   string     `json:"status"`
	Message  string     `json:"message"`
	Analysis CVAnalysis `json:"analysis"`
}

// StatusSuccess is the status value the backend sets on successful replies
const StatusSuccess = "success"
