package config

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.AI.ActiveProvider != "titan" {
		t.Errorf("default provider = %q, want titan", cfg.AI.ActiveProvider)
	}
	if cfg.AI.MaxPromptChars != 3000 {
		t.Errorf("default max prompt chars = %d, want 3000", cfg.AI.MaxPromptChars)
	}

	titan, ok := cfg.AI.Providers["titan"]
	if !ok {
		t.Fatal("titan provider defaults missing")
	}
	if titan.Model != "amazon.titan-text-express-v1" {
		t.Errorf("titan model = %q", titan.Model)
	}
	if titan.MaxTokens != 4096 {
		t.Errorf("titan max tokens = %d, want 4096", titan.MaxTokens)
	}
	if titan.Temperature != 0.7 || titan.TopP != 1.0 {
		t.Errorf("titan sampling defaults = %v/%v", titan.Temperature, titan.TopP)
	}
}

func TestActiveUnknownProvider(t *testing.T) {
	ai := AIConfig{
		ActiveProvider: "typo",
		Providers:      map[string]ProviderSettings{"titan": {}},
	}
	if _, _, err := ai.Active(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestActiveResolvesSettings(t *testing.T) {
	ai := AIConfig{
		ActiveProvider: "azure",
		Providers: map[string]ProviderSettings{
			"azure": {Driver: "azure", Deployment: "gpt-4o"},
		},
	}
	name, settings, err := ai.Active()
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if name != "azure" || settings.Deployment != "gpt-4o" {
		t.Errorf("got %q %+v", name, settings)
	}
}
