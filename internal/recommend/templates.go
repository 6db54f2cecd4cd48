package recommend

import "strings"

// templateGroup pairs a keyword predicate with a full four-card
// template. Groups are evaluated in declaration order and every
// matching group assigns all four slots, so later matches overwrite
// earlier ones. That priority order is intentional: the last listed
// theme a query touches wins the surface.
type templateGroup struct {
	name     string
	keywords []string
	cards    [NumSlots]Card
}

func (g templateGroup) matches(query string) bool {
	lowered := strings.ToLower(query)
	for _, kw := range g.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// queryGroups is the fixed, ordered intent list: career advancement,
// executive development, job search, skill-building.
var queryGroups = []templateGroup{
	{
		name:     "advancement",
		keywords: []string{"advance", "lead"},
		cards: [NumSlots]Card{
			{
				Kind:        KindCourse,
				Title:       "LinkedIn Learning: Becoming a Tech Lead",
				Description: "Comprehensive course series for advancing to Tech Lead position",
				DisplayType: "COURSE",
				IconToken:   iconCourse,
				Details:     [3]string{"12 hours", "Free with LinkedIn Premium", "Online"},
				ActionLabel: actionCourse,
				ActionLink:  "https://www.linkedin.com/learning/paths/becoming-a-tech-lead",
			},
			{
				Kind:        KindJob,
				Title:       "Senior Trainee Program - Tech Leadership",
				Description: "Structured program for senior developers transitioning to leadership",
				DisplayType: "JOB",
				IconToken:   iconJob,
				Details:     [3]string{"Remote", "Training + Salary", "TechCorp"},
				ActionLabel: actionJob,
				ActionLink:  "https://www.linkedin.com/jobs/search/?keywords=senior%20trainee%20tech%20lead",
			},
			{
				Kind:        KindEvent,
				Title:       "Tech Leadership Practice Group",
				Description: "Join a community of aspiring tech leaders for practice and mentorship",
				DisplayType: "EVENT",
				IconToken:   iconEvent,
				Details:     [3]string{"Weekly", "Virtual Practice Sessions", "Free"},
				ActionLabel: actionWorkshop,
				ActionLink:  "https://www.linkedin.com/groups/tech-leadership-practice",
			},
			{
				Kind:        KindWorkshop,
				Title:       "LinkedIn Learning: Executive Leadership Program",
				Description: "Advanced leadership skills for senior professionals",
				DisplayType: "WORKSHOP",
				IconToken:   iconWorkshop,
				Details:     [3]string{"16 weeks", "Free with LinkedIn Premium", "Online"},
				ActionLabel: actionWorkshop,
				ActionLink:  "https://www.linkedin.com/learning/paths/executive-leadership-program",
			},
		},
	},
	{
		name:     "executive",
		keywords: []string{"director", "executive"},
		cards: [NumSlots]Card{
			{
				Kind:        KindCourse,
				Title:       "LinkedIn Learning: Executive Leadership Program",
				Description: "Advanced leadership skills for senior professionals",
				DisplayType: "COURSE",
				IconToken:   iconCourse,
				Details:     [3]string{"16 weeks", "Free with LinkedIn Premium", "Online"},
				ActionLabel: actionCourse,
				ActionLink:  "https://www.linkedin.com/learning/paths/executive-leadership-program",
			},
			{
				Kind:        KindJob,
				Title:       "Executive Trainee Program",
				Description: "Structured program for mid-level managers transitioning to executive roles",
				DisplayType: "JOB",
				IconToken:   iconJob,
				Details:     [3]string{"Hybrid", "Executive Training", "Fortune 500"},
				ActionLabel: actionJob,
				ActionLink:  "https://www.linkedin.com/jobs/search/?keywords=executive%20trainee%20program",
			},
			{
				Kind:        KindEvent,
				Title:       "Executive Leadership Practice Forum",
				Description: "Monthly practice sessions with current executives and board members",
				DisplayType: "EVENT",
				IconToken:   iconEvent,
				Details:     [3]string{"Monthly", "Virtual Executive Sessions", "Premium"},
				ActionLabel: actionEvent,
				ActionLink:  "https://www.linkedin.com/events/executive-leadership-forum",
			},
			{
				Kind:        KindWorkshop,
				Title:       "Strategic Leadership Workshop",
				Description: "Intensive workshop for developing strategic thinking and executive presence",
				DisplayType: "WORKSHOP",
				IconToken:   iconWorkshop,
				Details:     [3]string{"3 days", "Executive Coaching", "In-Person"},
				ActionLabel: actionWorkshop,
				ActionLink:  "https://www.linkedin.com/learning/courses/strategic-leadership-workshop",
			},
		},
	},
	{
		name:     "jobsearch",
		keywords: []string{"job", "opportunity", "remote"},
		cards: [NumSlots]Card{
			{
				Kind:        KindCourse,
				Title:       "LinkedIn Job Search Mastery Course",
				Description: "Learn effective job search strategies and LinkedIn optimization",
				DisplayType: "COURSE",
				IconToken:   iconCourse,
				Details:     [3]string{"4 hours", "Free with LinkedIn Premium", "Online"},
				ActionLabel: actionCourse,
				ActionLink:  "https://www.linkedin.com/learning/courses/job-search-mastery",
			},
			{
				Kind:        KindJob,
				Title:       "Senior Tech Lead - Remote",
				Description: "Leading development team in innovative tech company",
				DisplayType: "JOB",
				IconToken:   iconJob,
				Details:     [3]string{"Remote", "$140k-180k", "TechCorp"},
				ActionLabel: actionJob,
				ActionLink:  "https://www.linkedin.com/jobs/search/?keywords=tech%20lead%20remote",
			},
			{
				Kind:        KindEvent,
				Title:       "Tech Jobs Fair 2025",
				Description: "Virtual job fair with top tech companies hiring remote positions",
				DisplayType: "EVENT",
				IconToken:   iconEvent,
				Details:     [3]string{"Dec 20, 2025", "Virtual Job Fair", "Free"},
				ActionLabel: actionEvent,
				ActionLink:  "https://www.linkedin.com/company/tech-jobs-fair/",
			},
			{
				Kind:        KindWorkshop,
				Title:       "LinkedIn Networking Workshop",
				Description: "Learn how to network effectively on LinkedIn for job opportunities",
				DisplayType: "WORKSHOP",
				IconToken:   iconWorkshop,
				Details:     [3]string{"2 hours", "Networking Skills", "Virtual"},
				ActionLabel: actionWorkshop,
				ActionLink:  "https://www.linkedin.com/learning/courses/linkedin-networking-workshop",
			},
		},
	},
	{
		name:     "skills",
		keywords: []string{"workshop", "leadership", "skill"},
		cards: [NumSlots]Card{
			{
				Kind:        KindCourse,
				Title:       "LinkedIn Learning: Tech Leadership Course Series",
				Description: "Comprehensive leadership development for tech professionals",
				DisplayType: "COURSE",
				IconToken:   iconCourse,
				Details:     [3]string{"20 hours", "Free with LinkedIn Premium", "Online"},
				ActionLabel: actionCourse,
				ActionLink:  "https://www.linkedin.com/learning/paths/tech-leadership-course-series",
			},
			{
				Kind:        KindJob,
				Title:       "Leadership Practice Group",
				Description: "Join a community for practicing leadership skills and scenarios",
				DisplayType: "JOB",
				IconToken:   iconJob,
				Details:     [3]string{"Virtual", "Practice Sessions", "Community"},
				ActionLabel: actionWorkshop,
				ActionLink:  "https://www.linkedin.com/groups/leadership-practice-group",
			},
			{
				Kind:        KindEvent,
				Title:       "Leadership Learning Events Series",
				Description: "Monthly events featuring leadership experts and interactive workshops",
				DisplayType: "EVENT",
				IconToken:   iconEvent,
				Details:     [3]string{"Monthly", "Virtual Learning Events", "Free"},
				ActionLabel: actionEvent,
				ActionLink:  "https://www.linkedin.com/events/leadership-learning-series",
			},
			{
				Kind:        KindWorkshop,
				Title:       "LinkedIn Leadership Development Workshop",
				Description: "Interactive workshop for developing leadership skills",
				DisplayType: "WORKSHOP",
				IconToken:   iconWorkshop,
				Details:     [3]string{"8 hours", "Free with LinkedIn Premium", "Unlimited"},
				ActionLabel: actionWorkshop,
				ActionLink:  "https://www.linkedin.com/learning/courses/leadership-development-workshop",
			},
		},
	},
}

// ApplyQuery tests the query against every keyword group in priority
// order and applies each matching group's full template. Returns the
// number of groups that matched.
func (d *Deck) ApplyQuery(query string) int {
	matched := 0
	for _, group := range queryGroups {
		if !group.matches(query) {
			continue
		}
		matched++
		for _, card := range group.cards {
			d.Set(card)
		}
	}
	return matched
}

// ApplyDefaults fills the deck with the advancement template, shown
// at session start while the preferences are still unmodified.
func (d *Deck) ApplyDefaults() {
	for _, card := range queryGroups[0].cards {
		d.Set(card)
	}
}
