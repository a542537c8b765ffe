package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// newTestViper는 기본값이 설정된 독립 viper 인스턴스를 만듭니다.
func newTestViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

// validConfig는 검증을 통과하는 설정을 반환합니다.
func validConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			CacheFile:       "/tmp/pokemon.txt",
			FastfetchConfig: "/tmp/config.jsonc",
		},
		PokeAPI: PokeAPIConfig{MaxID: 904, TimeoutSeconds: 30},
		Shiny:   ShinyConfig{Odds: 4},
		Logging: LoggingConfig{Level: "warn", Format: "text"},
	}
}

// TestLoadFrom_Defaults는 기본값 로드와 경로 확장을 테스트합니다.
func TestLoadFrom_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := LoadFrom(newTestViper())
	if err != nil {
		t.Fatalf("LoadFrom() 에러: %v", err)
	}

	if want := filepath.Join(home, ".cache", "pokemon.txt"); cfg.Paths.CacheFile != want {
		t.Errorf("CacheFile = %q, want %q", cfg.Paths.CacheFile, want)
	}
	if want := filepath.Join(home, ".config", "fastfetch", "config.jsonc"); cfg.Paths.FastfetchConfig != want {
		t.Errorf("FastfetchConfig = %q, want %q", cfg.Paths.FastfetchConfig, want)
	}
	if cfg.PokeAPI.MaxID != 904 {
		t.Errorf("MaxID = %d, want 904", cfg.PokeAPI.MaxID)
	}
	if cfg.PokeAPI.Timeout() != 30*time.Second {
		t.Errorf("PokeAPI.Timeout() = %s, want 30s", cfg.PokeAPI.Timeout())
	}
	if cfg.Shiny.Odds != 4 {
		t.Errorf("Shiny.Odds = %d, want 4", cfg.Shiny.Odds)
	}
	if cfg.Commands.Colorscripts != "pokemon-colorscripts" || cfg.Commands.Fastfetch != "fastfetch" {
		t.Errorf("Commands = %+v", cfg.Commands)
	}
	if cfg.Logging.File != "" {
		t.Errorf("Logging.File = %q, want 빈 문자열", cfg.Logging.File)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("기본 설정 Validate() 에러: %v", err)
	}
}

// TestLoadFrom_FileAndEnv는 설정 파일과 환경변수 우선순위를 테스트합니다.
func TestLoadFrom_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
pokeapi:
  max_id: 151
shiny:
  odds: 8
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("POKEFETCH_SHINY_ODDS", "2")

	v := newTestViper()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() 에러: %v", err)
	}

	cfg, err := LoadFrom(v)
	if err != nil {
		t.Fatalf("LoadFrom() 에러: %v", err)
	}
	if cfg.PokeAPI.MaxID != 151 {
		t.Errorf("MaxID = %d, want 151 (설정 파일)", cfg.PokeAPI.MaxID)
	}
	if cfg.Shiny.Odds != 2 {
		t.Errorf("Shiny.Odds = %d, want 2 (환경변수)", cfg.Shiny.Odds)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.PokeAPI.BaseURL != "https://pokeapi.co/api/v2" {
		t.Errorf("BaseURL = %q, want 기본값", cfg.PokeAPI.BaseURL)
	}
}

// TestConfig_Validate는 설정 검증을 테스트합니다.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "유효한 설정",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "캐시 경로 없음",
			mutate:  func(c *Config) { c.Paths.CacheFile = "" },
			wantErr: true,
		},
		{
			name:    "fastfetch 설정 경로 없음",
			mutate:  func(c *Config) { c.Paths.FastfetchConfig = "" },
			wantErr: true,
		},
		{
			name:    "max_id가 0",
			mutate:  func(c *Config) { c.PokeAPI.MaxID = 0 },
			wantErr: true,
		},
		{
			name:    "음수 타임아웃",
			mutate:  func(c *Config) { c.PokeAPI.TimeoutSeconds = -1 },
			wantErr: true,
		},
		{
			name:    "이로치 확률 0",
			mutate:  func(c *Config) { c.Shiny.Odds = 0 },
			wantErr: true,
		},
		{
			name:    "항상 이로치",
			mutate:  func(c *Config) { c.Shiny.Odds = 1 },
			wantErr: false,
		},
		{
			name:    "유효하지 않은 로그 레벨",
			mutate:  func(c *Config) { c.Logging.Level = "trace" },
			wantErr: true,
		},
		{
			name:    "유효하지 않은 로그 포맷",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestExpandPath는 홈 디렉토리 확장을 테스트합니다.
func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "빈 문자열", input: "", want: ""},
		{name: "절대 경로", input: "/etc/fastfetch.jsonc", want: "/etc/fastfetch.jsonc"},
		{name: "홈 경로", input: "~/.cache/pokemon.txt", want: filepath.Join(home, ".cache", "pokemon.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.want {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestDefaultConfigPath는 기본 설정 파일 경로를 테스트합니다.
func TestDefaultConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".config", "pokefetch", "config.yaml")
	if got := DefaultConfigPath(); got != want {
		t.Errorf("DefaultConfigPath() = %q, want %q", got, want)
	}

	if err := EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir() 에러: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("설정 디렉토리가 생성되지 않음: %v", err)
	}
}
