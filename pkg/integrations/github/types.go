package github

// Repo is a repository summary from the organization listing endpoint.
type Repo struct {
	Name          string `json:"name"`
	HTMLURL       string `json:"html_url"`
	DefaultBranch string `json:"default_branch"`
}

// Branch returns the repository's default branch, falling back to "main"
// when the listing did not include one.
func (r Repo) Branch() string {
	if r.DefaultBranch == "" {
		return "main"
	}
	return r.DefaultBranch
}
