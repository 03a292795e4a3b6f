package apidoc

// Project is the api_project.json metadata used for the document info block.
type Project struct {
	Title       string         `yaml:"title,omitempty" json:"title,omitempty"`
	Name        string         `yaml:"name,omitempty" json:"name,omitempty"`
	Version     string         `yaml:"version,omitempty" json:"version,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Header      *ProjectHeader `yaml:"header,omitempty" json:"header,omitempty"`
}

// ProjectHeader is the optional introduction page of a project.
type ProjectHeader struct {
	Title   string `yaml:"title,omitempty" json:"title,omitempty"`
	Content string `yaml:"content,omitempty" json:"content,omitempty"`
}

// DisplayTitle returns the title, falling back to the project name.
func (p *Project) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}
