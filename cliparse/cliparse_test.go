// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.CatalogSource != SourceBuiltin {
		t.Errorf("expected builtin source, got %q", cfg.CatalogSource)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %q", cfg.DatabaseType)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("CATALOG_SOURCE", "database")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("SEED_DATABASE", "true")
	os.Setenv("CORS_ORIGIN", "https://quotes.example")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.CatalogSource != SourceDatabase || cfg.DatabaseURL != "postgres://test" {
		t.Errorf("unexpected database config: %+v", cfg)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if !cfg.SeedDatabase {
		t.Error("expected SeedDatabase from env")
	}
	if cfg.CORSOrigin != "https://quotes.example" {
		t.Errorf("unexpected CORS origin %q", cfg.CORSOrigin)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("CATALOG_SOURCE", "database")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-s", "file", "-f", "quotes.yaml"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.CatalogSource != SourceFile || cfg.CatalogFile != "quotes.yaml" {
		t.Errorf("CLI should override env: got %+v", cfg)
	}
}

func TestParseFlags_Validation(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown source", []string{"-s", "redis"}, nil},
		{"file without path", []string{"-s", "file"}, nil},
		{"database without url", []string{"-s", "database"}, nil},
		{"bad database type", []string{"-t", "mysql"}, nil},
		{"bad port env", nil, map[string]string{"PORT": "abc"}},
		{"bad seed env", nil, map[string]string{"SEED_DATABASE": "maybe"}},
		{"unknown flag", []string{"-x"}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tc.env {
				os.Setenv(k, v)
			}
			defer os.Clearenv()

			if _, err := ParseFlags(tc.args); err == nil {
				t.Errorf("expected error for %v", tc.args)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("PORT=7000\nCATALOG_SOURCE=builtin\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Already-set variables win over the file
	os.Setenv("CATALOG_SOURCE", "file")
	os.Setenv("CATALOG_FILE", "mine.yaml")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 7000 {
		t.Errorf("expected port from .env, got %d", cfg.Port)
	}
	if cfg.CatalogSource != SourceFile {
		t.Errorf(".env must not override existing env, got %q", cfg.CatalogSource)
	}
}
