package config

import "testing"

func validConfig() Config {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Backend: BackendConfig{BaseURL: "http://localhost:8081"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_PortRange(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestValidate_BackendURLRequired(t *testing.T) {
	cfg := validConfig()
	cfg.Backend.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing backend.base_url")
	}

	cfg.Backend.BaseURL = "localhost:8081"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for non-http backend.base_url")
	}
	expected := `backend.base_url must be an http(s) URL, got "localhost:8081"`
	if err.Error() != expected {
		t.Errorf("unexpected error message:\ngot:  %q\nwant: %q", err.Error(), expected)
	}
}

func TestValidate_PageSizes(t *testing.T) {
	cfg := validConfig()
	cfg.Parser.DefaultPageSize = 200
	cfg.Parser.MaxPageSize = 100
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when default page size exceeds max")
	}
}

func TestValidate_Synonyms(t *testing.T) {
	cfg := validConfig()
	cfg.Parser.Synonyms = map[string][]string{"physics": {"quantum", ""}}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty synonym")
	}

	cfg.Parser.Synonyms = map[string][]string{"physics": {"quantum", "relativity"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{
		HTTP:    HTTPConfig{Port: 8080},
		Backend: BackendConfig{BaseURL: "http://localhost:8081"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("ReadTimeoutSec = %d, want 10", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.Model.BaseURL == "" {
		t.Error("expected default model base URL")
	}
	if cfg.Model.Model == "" {
		t.Error("expected default model name")
	}
	if cfg.Parser.DefaultPageSize != 20 || cfg.Parser.MaxPageSize != 100 {
		t.Errorf("page size defaults = %d/%d, want 20/100",
			cfg.Parser.DefaultPageSize, cfg.Parser.MaxPageSize)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("SEARCHD_TEST_KEY", "secret")

	in := []byte("api_key: ${SEARCHD_TEST_KEY}\nmodel: ${SEARCHD_TEST_MODEL:-gpt-4o-mini}\n")
	out := string(expandEnvVars(in))

	want := "api_key: secret\nmodel: gpt-4o-mini\n"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}
