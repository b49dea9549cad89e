package service

import (
	"fmt"

	"envbridge-core/internal/application/dto"
	"envbridge-core/internal/domain/envvar"
)

// GitLabVariableType is the variable_type tag for CI/CD project variables
const GitLabVariableType = "env_var"

// TranslationService translates environment variable descriptions into
// the payload shapes of the downstream platforms
type TranslationService struct{}

// NewTranslationService creates a new translation service
func NewTranslationService() *TranslationService {
	return &TranslationService{}
}

// Translate constructs the domain record from the request and projects it
// into both platform payloads. Nothing is forwarded to either platform.
func (s *TranslationService) Translate(req *dto.CreateEnvVarRequest) (*dto.TranslationResponse, error) {
	v, err := envvar.NewEnvVar(
		req.Key,
		req.Value,
		req.Type,
		req.Target,
		req.GitBranch,
		req.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("invalid environment variable: %w", err)
	}

	return &dto.TranslationResponse{
		Vercel: toVercelPayload(v),
		GitLab: toGitLabPayload(v),
	}, nil
}

// toVercelPayload projects the variable into the deployment platform's
// creation body
func toVercelPayload(v *envvar.EnvVar) *dto.VercelPayload {
	return &dto.VercelPayload{
		Key:       v.Key(),
		Value:     v.Value(),
		Type:      v.Type().String(),
		Target:    v.Targets().Strings(),
		GitBranch: v.GitBranch(),
		Comment:   v.Description(),
	}
}

// toGitLabPayload projects the variable into the CI/CD platform's
// project-variable creation body
func toGitLabPayload(v *envvar.EnvVar) *dto.GitLabPayload {
	return &dto.GitLabPayload{
		Key:              v.Key(),
		Value:            v.Value(),
		VariableType:     GitLabVariableType,
		Protected:        v.Protected(),
		Masked:           v.Masked(),
		Raw:              v.Raw(),
		EnvironmentScope: v.EnvironmentScope(),
		Description:      v.Description(),
	}
}
