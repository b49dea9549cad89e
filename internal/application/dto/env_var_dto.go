package dto

// CreateEnvVarRequest represents the request to translate an environment variable
type CreateEnvVarRequest struct {
	Key         string   `json:"key" binding:"required"`
	Value       string   `json:"value" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=secret encrypted plain"`
	Target      []string `json:"target" binding:"omitempty,dive,oneof=production preview development"`
	GitBranch   *string  `json:"git_branch"`
	Description *string  `json:"description"`
}

// VercelPayload is the body shape for the deployment platform's
// create-environment-variable API. Nullable fields serialize as JSON null.
type VercelPayload struct {
	Key       string   `json:"key"`
	Value     string   `json:"value"`
	Type      string   `json:"type"`
	Target    []string `json:"target"`
	GitBranch *string  `json:"gitBranch"`
	Comment   *string  `json:"comment"`
}

// GitLabPayload is the body shape for the CI/CD platform's
// create-project-variable API
type GitLabPayload struct {
	Key              string  `json:"key"`
	Value            string  `json:"value"`
	VariableType     string  `json:"variable_type"`
	Protected        bool    `json:"protected"`
	Masked           bool    `json:"masked"`
	Raw              bool    `json:"raw"`
	EnvironmentScope string  `json:"environment_scope"`
	Description      *string `json:"description"`
}

// TranslationResponse carries both platform projections of one variable
type TranslationResponse struct {
	Vercel *VercelPayload `json:"vercel"`
	GitLab *GitLabPayload `json:"gitlab"`
}
