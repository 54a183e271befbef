package config

import (
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded and mock mode is
// selected when no credentials are present.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("SERVER_PORT")
	_ = os.Unsetenv("STATIC_DIR")
	_ = os.Unsetenv("ETSY_API_KEY")
	_ = os.Unsetenv("ETSY_SHOP_ID")
	_ = os.Unsetenv("ETSY_API_BASE_URL")
	_ = os.Unsetenv("ETSY_TIMEOUT_SECONDS")

	LoadConfig()

	if AppConfig.Server.Port != "8080" {
		t.Fatalf("expected default SERVER_PORT=8080, got %q", AppConfig.Server.Port)
	}
	if AppConfig.Server.StaticDir != "./web" {
		t.Fatalf("expected default STATIC_DIR=./web, got %q", AppConfig.Server.StaticDir)
	}
	if AppConfig.Etsy.BaseURL != "https://openapi.etsy.com" {
		t.Fatalf("unexpected base URL: %q", AppConfig.Etsy.BaseURL)
	}
	if AppConfig.Etsy.Timeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %v", AppConfig.Etsy.Timeout)
	}
	if AppConfig.Etsy.HasCredentials() {
		t.Fatalf("expected mock mode without credentials, got %+v", AppConfig.Etsy)
	}
}

func TestHasCredentials(t *testing.T) {
	cases := []struct {
		name string
		cfg  EtsyConfig
		want bool
	}{
		{"both set", EtsyConfig{APIKey: "k", ShopID: "1"}, true},
		{"missing key", EtsyConfig{ShopID: "1"}, false},
		{"missing shop", EtsyConfig{APIKey: "k"}, false},
		{"both empty", EtsyConfig{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.HasCredentials(); got != tc.want {
				t.Fatalf("HasCredentials()=%v, want %v", got, tc.want)
			}
		})
	}
}

// TestValidateConfig_Fatal uses a subprocess to assert that validateConfig triggers a fatal exit
// when required fields are missing.
func TestValidateConfig_Fatal(t *testing.T) {
	if os.Getenv("RUN_VALIDATE_FATAL") == "1" {
		// In child process: set empty AppConfig and call validateConfig() to trigger log.Fatalf (os.Exit)
		AppConfig = Config{}
		validateConfig()
		t.Fatalf("validateConfig should have exited the process")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run", "TestValidateConfig_Fatal")
	cmd.Env = append(os.Environ(), "RUN_VALIDATE_FATAL=1")
	err := cmd.Run()
	if err == nil {
		t.Fatalf("expected process to exit with error, got nil")
	}
}
