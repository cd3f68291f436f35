package infra

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "8080")
	}
	if cfg.GeminiModel != "gemini-2.5-flash-image-preview" {
		t.Fatalf("GeminiModel mismatch: got %q", cfg.GeminiModel)
	}
	if cfg.CredentialConfigured() {
		t.Fatal("CredentialConfigured should be false without GEMINI_API_KEY")
	}
	if cfg.GenerateBodyMax != 1<<20 {
		t.Fatalf("GenerateBodyMax mismatch: got %d", cfg.GenerateBodyMax)
	}
	if cfg.EditBodyMax != 10<<20 {
		t.Fatalf("EditBodyMax mismatch: got %d", cfg.EditBodyMax)
	}
}

func TestLoadConfigMissingCredentialIsNotFatal(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.GeminiAPIKey != "" {
		t.Fatalf("GeminiAPIKey should be empty, got %q", cfg.GeminiAPIKey)
	}
}

func TestLoadConfigTrimsCredential(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "  key-123  ")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.GeminiAPIKey != "key-123" {
		t.Fatalf("GeminiAPIKey mismatch: got %q", cfg.GeminiAPIKey)
	}
	if !cfg.CredentialConfigured() {
		t.Fatal("CredentialConfigured should be true")
	}
}

func TestLoadConfigAllowedOriginsList(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("AllowedOrigins length mismatch: %#v", cfg.AllowedOrigins)
	}
	if cfg.AllowedOrigins[0] != "https://a.example.com" || cfg.AllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("AllowedOrigins mismatch: %#v", cfg.AllowedOrigins)
	}
}
