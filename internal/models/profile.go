package models

// Profile is the static portfolio document served by the content API.
type Profile struct {
	Name        string       `json:"name" yaml:"name"`
	Headline    string       `json:"headline" yaml:"headline"`
	Summary     string       `json:"summary" yaml:"summary"`
	Email       string       `json:"email" yaml:"email"`
	ResumeURL   string       `json:"resumeUrl,omitempty" yaml:"resumeUrl"`
	HeroTexts   []string     `json:"heroTexts" yaml:"heroTexts"`
	Navigation  []NavItem    `json:"navigation" yaml:"navigation"`
	SocialLinks []SocialLink `json:"socialLinks" yaml:"socialLinks"`
	Experiences []Experience `json:"experiences" yaml:"experiences"`
	Projects    []Project    `json:"projects" yaml:"projects"`
	Skills      []Skill      `json:"skills" yaml:"skills"`
	Education   []Education  `json:"education" yaml:"education"`
}

type Experience struct {
	ID               string   `json:"id" yaml:"id"`
	Title            string   `json:"title" yaml:"title"`
	Company          string   `json:"company" yaml:"company"`
	Location         string   `json:"location" yaml:"location"`
	Period           string   `json:"period" yaml:"period"`
	Projects         []string `json:"projects,omitempty" yaml:"projects"`
	Responsibilities []string `json:"responsibilities" yaml:"responsibilities"`
}

type Project struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	TechStack   []string `json:"techStack" yaml:"techStack"`
	GitHub      string   `json:"github,omitempty" yaml:"github"`
	Live        string   `json:"live,omitempty" yaml:"live"`
	Features    []string `json:"features" yaml:"features"`
}

type Skill struct {
	Category string   `json:"category" yaml:"category"`
	Items    []string `json:"items" yaml:"items"`
}

type Education struct {
	Degree      string `json:"degree" yaml:"degree"`
	Institution string `json:"institution" yaml:"institution"`
	Year        string `json:"year,omitempty" yaml:"year"`
}

type NavItem struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}

type SocialLink struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}
