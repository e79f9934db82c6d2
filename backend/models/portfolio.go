package models

import "strings"

const fallbackGitHubUsername = "Niggo2k"

type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	Subtitle string `json:"subtitle"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
	Avatar   string `json:"avatar"`
}

type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company,omitempty"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Status      string   `json:"status"` // live, wip, archived, student-project
	Image       string   `json:"image"`
	Tags        []string `json:"tags,omitempty"`
	Year        string   `json:"year,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform"` // github, twitter, linkedin, email
	URL      string `json:"url"`
	Label    string `json:"label"`
}

type Company struct {
	Name        string `json:"name"`
	Role        string `json:"role,omitempty"`
	Period      string `json:"period,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Period      string `json:"period"`
	Location    string `json:"location,omitempty"`
}

var SiteProfile = Profile{
	Name:     "Nico Epp",
	Title:    "Full-Stack Developer & Co-Founder",
	Tagline:  "Crafting digital experiences from idea to scale.",
	Subtitle: "Full-Stack Developer & Co-Founder",
	Location: "Göppingen, Germany",
	Bio:      "I'm a full-stack developer passionate about building products that solve real problems. With experience across e-commerce platforms, data visualization tools, and IoT solutions, I focus on creating intuitive user experiences backed by solid engineering.",
	Avatar:   "images/avatar.jpg",
}

var SocialLinks = []SocialLink{
	{Platform: "github", URL: "https://github.com/Niggo2k", Label: "GitHub"},
	{Platform: "twitter", URL: "https://x.com/made_by_nico", Label: "Twitter/X"},
	{Platform: "linkedin", URL: "https://linkedin.com/in/nicoepp", Label: "LinkedIn"},
	{Platform: "email", URL: "mailto:hello@nico.dev", Label: "Email"},
}

var Projects = []Project{
	{
		ID:          "indie-wrapped",
		Title:       "IndieWrapped",
		Company:     "IndieWrapped",
		Description: "Year in review for indie hackers. Visualize your progress and celebrate your wins with AI-powered insights.",
		URL:         "https://indiewrapped.com",
		Status:      "live",
		Image:       "projects/indiewrapped/indiewrapped.jpg",
		Tags:        []string{"Next.js", "Grok AI", "Tailwind CSS"},
		Year:        "2025",
	},
	{
		ID:          "fast-domain",
		Title:       "FastDomain",
		Company:     "FastDomain",
		Description: "Real-time domain price comparison across multiple registrars. Find the best deals for your domain names.",
		URL:         "https://fastdomain.io",
		Status:      "wip",
		Image:       "projects/fastdomain/fastdomain-1.jpg",
		Tags:        []string{"Next.js", "Go", "PostgreSQL"},
		Year:        "2025",
	},
	{
		ID:          "paroot",
		Title:       "Paroot Cashback",
		Company:     "Paroot",
		Description: "Full-stack cashback platform with 270+ partner retailers.",
		URL:         "https://paroot.de",
		Status:      "archived",
		Image:       "projects/paroot/paroot.jpg",
		Tags:        []string{"E-Commerce", "Payments"},
		Year:        "2022",
	},
}

var PreviousCompanies = []Company{
	{
		Name:        "Paroot Cashback",
		Role:        "Co-Founder & Full-Stack Developer",
		Period:      "2022 - 2025",
		Description: "Built full-stack cashback platform with 270+ partner retailers",
	},
	{
		Name:        "hydra newmedia",
		Role:        "Working Student",
		Period:      "Sep. 2023 - Feb. 2024",
		Description: "Web development and client projects",
	},
}

var EducationHistory = []Education{
	{
		Institution: "Esslingen University of Applied Sciences",
		Degree:      "Bachelor of Engineering",
		Period:      "Oct. 2021 - Aug. 2025",
		Location:    "Esslingen, Germany",
	},
}

// GitHubUsername resolves the username for the contribution calendar from the
// github social link, falling back to a fixed default when the link is
// missing or has no path segment.
func GitHubUsername() string {
	for _, link := range SocialLinks {
		if link.Platform != "github" {
			continue
		}
		parts := strings.Split(link.URL, "/")
		if name := parts[len(parts)-1]; name != "" {
			return name
		}
		break
	}
	return fallbackGitHubUsername
}
