package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./gameshelf.db" {
			t.Errorf("expected database path ./gameshelf.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 4000 {
			t.Errorf("expected server port 4000, got %d", config.Server.Port)
		}

		if config.Catalog.APIURL != "https://api.igdb.com/v4" {
			t.Errorf("expected catalog api URL https://api.igdb.com/v4, got %s", config.Catalog.APIURL)
		}

		if config.Catalog.AuthURL != "https://id.twitch.tv/oauth2/token" {
			t.Errorf("expected catalog auth URL https://id.twitch.tv/oauth2/token, got %s", config.Catalog.AuthURL)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[server]
host = "127.0.0.1"
port = 8080

[catalog]
api_url = "http://localhost:9090/v4"
auth_url = "http://localhost:9090/oauth2/token"

[credentials.catalog]
client_id = "test_client_id"
client_secret = "test_secret"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected custom database path, got %s", config.Database.Path)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected port 8080, got %d", config.Server.Port)
		}

		if config.Credentials.Catalog.ClientID != "test_client_id" {
			t.Errorf("expected client id test_client_id, got %s", config.Credentials.Catalog.ClientID)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig("/nonexistent/config.toml"); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("CATALOG_CLIENT_ID", "env_client")
		t.Setenv("CATALOG_ACCESS_TOKEN", "env_token")

		config := DefaultConfig()

		if config.Credentials.Catalog.ClientID != "env_client" {
			t.Errorf("expected client id from environment, got %s", config.Credentials.Catalog.ClientID)
		}

		if config.Credentials.Catalog.AccessToken != "env_token" {
			t.Errorf("expected access token from environment, got %s", config.Credentials.Catalog.AccessToken)
		}
	})
}
