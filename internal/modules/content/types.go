package content

// Project is a portfolio project entry.
type Project struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	ImageSrc    string          `json:"imageSrc"`
	GithubURL   string          `json:"githubUrl,omitempty"`
	LiveURL     string          `json:"liveUrl,omitempty"`
	Featured    bool            `json:"featured"`
	Details     *ProjectDetails `json:"details,omitempty"`
}

type ProjectDetails struct {
	Problem      string   `json:"problem,omitempty"`
	Solution     string   `json:"solution,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Role         string   `json:"role,omitempty"`
	Outcome      string   `json:"outcome,omitempty"`
}

// Skill describes one technology with a 0-10 proficiency level.
type Skill struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// Offering is a service offered through the site.
type Offering struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Benefits    []string `json:"benefits"`
	Featured    bool     `json:"featured"`
}
