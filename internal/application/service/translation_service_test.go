package service_test

import (
	"testing"

	"envbridge-core/internal/application/dto"
	"envbridge-core/internal/application/service"
)

func strptr(s string) *string {
	return &s
}

func TestTranslate(t *testing.T) {
	svc := service.NewTranslationService()

	branch := strptr("main")
	desc := strptr("database password")

	resp, err := svc.Translate(&dto.CreateEnvVarRequest{
		Key:         "DB_PASSWORD",
		Value:       "hunter2",
		Type:        "secret",
		Target:      []string{"production"},
		GitBranch:   branch,
		Description: desc,
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	vercel := resp.Vercel
	if vercel.Key != "DB_PASSWORD" || vercel.Value != "hunter2" {
		t.Errorf("vercel payload key/value = %v/%v", vercel.Key, vercel.Value)
	}
	if vercel.Type != "secret" {
		t.Errorf("vercel type = %v, want secret", vercel.Type)
	}
	if len(vercel.Target) != 1 || vercel.Target[0] != "production" {
		t.Errorf("vercel target = %v, want [production]", vercel.Target)
	}
	if vercel.GitBranch == nil || *vercel.GitBranch != "main" {
		t.Errorf("vercel gitBranch = %v, want main", vercel.GitBranch)
	}
	if vercel.Comment == nil || *vercel.Comment != "database password" {
		t.Errorf("vercel comment = %v, want description text", vercel.Comment)
	}

	gitlab := resp.GitLab
	if gitlab.Key != "DB_PASSWORD" || gitlab.Value != "hunter2" {
		t.Errorf("gitlab payload key/value = %v/%v", gitlab.Key, gitlab.Value)
	}
	if gitlab.VariableType != service.GitLabVariableType {
		t.Errorf("gitlab variable_type = %v, want %v", gitlab.VariableType, service.GitLabVariableType)
	}
	if !gitlab.Protected {
		t.Error("gitlab protected = false, want true for production-only target")
	}
	if !gitlab.Masked {
		t.Error("gitlab masked = false, want true for secret type")
	}
	if !gitlab.Raw {
		t.Error("gitlab raw = false, want true")
	}
	if gitlab.EnvironmentScope != "*" {
		t.Errorf("gitlab environment_scope = %v, want *", gitlab.EnvironmentScope)
	}
	if gitlab.Description == nil || *gitlab.Description != "database password" {
		t.Errorf("gitlab description = %v, want description text", gitlab.Description)
	}
}

func TestTranslatePlainProductionOnly(t *testing.T) {
	svc := service.NewTranslationService()

	resp, err := svc.Translate(&dto.CreateEnvVarRequest{
		Key:    "A",
		Value:  "1",
		Type:   "plain",
		Target: []string{"production"},
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	if resp.GitLab.Masked {
		t.Error("masked = true, want false for plain type")
	}
	if !resp.GitLab.Protected {
		t.Error("protected = false, want true for production-only target")
	}
}

func TestTranslateSecretMultiTarget(t *testing.T) {
	svc := service.NewTranslationService()

	resp, err := svc.Translate(&dto.CreateEnvVarRequest{
		Key:    "B",
		Value:  "2",
		Type:   "secret",
		Target: []string{"production", "preview"},
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	if !resp.GitLab.Masked {
		t.Error("masked = false, want true for secret type")
	}
	if resp.GitLab.Protected {
		t.Error("protected = true, want false for multi-target")
	}
}

func TestTranslateDefaultsTargets(t *testing.T) {
	svc := service.NewTranslationService()

	resp, err := svc.Translate(&dto.CreateEnvVarRequest{
		Key:   "API_KEY",
		Value: "abc123",
		Type:  "encrypted",
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	if len(resp.Vercel.Target) != 3 {
		t.Errorf("vercel target length = %d, want 3 when target omitted", len(resp.Vercel.Target))
	}
	if resp.GitLab.Protected {
		t.Error("protected = true, want false for default targets")
	}
}

func TestTranslateNullableFields(t *testing.T) {
	svc := service.NewTranslationService()

	resp, err := svc.Translate(&dto.CreateEnvVarRequest{
		Key:   "API_KEY",
		Value: "abc123",
		Type:  "secret",
	})
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	if resp.Vercel.GitBranch != nil {
		t.Errorf("vercel gitBranch = %v, want nil", resp.Vercel.GitBranch)
	}
	if resp.Vercel.Comment != nil {
		t.Errorf("vercel comment = %v, want nil", resp.Vercel.Comment)
	}
	if resp.GitLab.Description != nil {
		t.Errorf("gitlab description = %v, want nil", resp.GitLab.Description)
	}
}

func TestTranslateInvalid(t *testing.T) {
	svc := service.NewTranslationService()

	tests := []struct {
		name string
		req  *dto.CreateEnvVarRequest
	}{
		{
			name: "invalid type",
			req:  &dto.CreateEnvVarRequest{Key: "A", Value: "1", Type: "hidden"},
		},
		{
			name: "invalid target",
			req:  &dto.CreateEnvVarRequest{Key: "A", Value: "1", Type: "secret", Target: []string{"staging"}},
		},
		{
			name: "empty key",
			req:  &dto.CreateEnvVarRequest{Key: "", Value: "1", Type: "secret"},
		},
		{
			name: "empty target list",
			req:  &dto.CreateEnvVarRequest{Key: "A", Value: "1", Type: "secret", Target: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Translate(tt.req)
			if err == nil {
				t.Error("Translate() error = nil, want validation error")
			}
			if resp != nil {
				t.Error("Translate() returned a response for invalid input")
			}
		})
	}
}
