// Package config는 pokefetch의 설정 관리를 담당합니다.
// 설정 우선순위: 플래그 > 환경변수(POKEFETCH_) > 설정파일 > 기본값
package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix는 환경변수 접두사입니다.
const EnvPrefix = "POKEFETCH"

// Config는 전체 애플리케이션 설정을 나타냅니다.
type Config struct {
	Paths    PathsConfig    `mapstructure:"paths" yaml:"paths"`
	PokeAPI  PokeAPIConfig  `mapstructure:"pokeapi" yaml:"pokeapi"`
	Shiny    ShinyConfig    `mapstructure:"shiny" yaml:"shiny"`
	Commands CommandsConfig `mapstructure:"commands" yaml:"commands"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// PathsConfig는 파일 경로 설정입니다.
type PathsConfig struct {
	// CacheFile은 포켓몬 ANSI 아트를 저장할 캐시 파일입니다.
	CacheFile string `mapstructure:"cache_file" yaml:"cache_file"`
	// FastfetchConfig는 갱신할 fastfetch 설정 파일입니다.
	FastfetchConfig string `mapstructure:"fastfetch_config" yaml:"fastfetch_config"`
}

// PokeAPIConfig는 PokeAPI 연결 설정입니다.
type PokeAPIConfig struct {
	// BaseURL은 API 기본 주소입니다.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// MaxID는 무작위로 뽑을 최대 도감 번호입니다.
	MaxID int `mapstructure:"max_id" yaml:"max_id"`
	// TimeoutSeconds는 요청 타임아웃(초)입니다.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// ShinyConfig는 이로치 확률 설정입니다.
type ShinyConfig struct {
	// Odds는 1/Odds 확률로 이로치가 나옵니다. 1이면 항상 이로치입니다.
	Odds int `mapstructure:"odds" yaml:"odds"`
}

// CommandsConfig는 외부 실행 파일 설정입니다.
type CommandsConfig struct {
	// Colorscripts는 pokemon-colorscripts 바이너리 경로입니다.
	Colorscripts string `mapstructure:"colorscripts" yaml:"colorscripts"`
	// Fastfetch는 fastfetch 바이너리 경로입니다.
	Fastfetch string `mapstructure:"fastfetch" yaml:"fastfetch"`
	// TimeoutSeconds는 아트 생성 타임아웃(초)입니다.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// LoggingConfig는 로깅 설정입니다.
type LoggingConfig struct {
	// Level은 로그 레벨입니다 (debug, info, warn, error).
	Level string `mapstructure:"level" yaml:"level"`
	// Format은 로그 포맷입니다 (json, text).
	Format string `mapstructure:"format" yaml:"format"`
	// File은 로그 파일 경로입니다. 비어있으면 stderr로 출력합니다.
	File string `mapstructure:"file" yaml:"file"`
}

// SetDefaults는 v에 기본 설정값을 정의합니다.
func SetDefaults(v *viper.Viper) {
	// 경로 설정
	v.SetDefault("paths.cache_file", "~/.cache/pokemon.txt")
	v.SetDefault("paths.fastfetch_config", "~/.config/fastfetch/config.jsonc")

	// PokeAPI 설정
	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("pokeapi.max_id", 904)
	v.SetDefault("pokeapi.timeout_seconds", 30)

	// 이로치 확률 (1/4)
	v.SetDefault("shiny.odds", 4)

	// 외부 명령
	v.SetDefault("commands.colorscripts", "pokemon-colorscripts")
	v.SetDefault("commands.fastfetch", "fastfetch")
	v.SetDefault("commands.timeout_seconds", 15)

	// 로깅 설정 (stdout은 fastfetch 출력 전용)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
}

// Load는 전역 viper에서 설정을 로드합니다.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom은 v에서 설정을 로드하고 Config 구조체를 반환합니다.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("설정 파싱 실패: %w", err)
	}

	// 홈 디렉토리 경로 확장
	cfg.Paths.CacheFile = expandPath(cfg.Paths.CacheFile)
	cfg.Paths.FastfetchConfig = expandPath(cfg.Paths.FastfetchConfig)
	cfg.Logging.File = expandPath(cfg.Logging.File)

	return &cfg, nil
}

// Timeout은 PokeAPI 요청 타임아웃을 반환합니다.
func (p *PokeAPIConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// Timeout은 아트 생성 타임아웃을 반환합니다.
func (c *CommandsConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// IsAvailable은 바이너리를 PATH 또는 경로에서 찾을 수 있는지 확인합니다.
func IsAvailable(bin string) bool {
	if bin == "" {
		return false
	}
	_, err := exec.LookPath(bin)
	return err == nil
}

// Validate는 설정의 유효성을 검사합니다.
func (c *Config) Validate() error {
	if c.Paths.CacheFile == "" {
		return fmt.Errorf("paths.cache_file이 비어 있습니다")
	}
	if c.Paths.FastfetchConfig == "" {
		return fmt.Errorf("paths.fastfetch_config가 비어 있습니다")
	}

	if c.PokeAPI.MaxID < 1 {
		return fmt.Errorf("pokeapi.max_id는 1 이상이어야 합니다: %d", c.PokeAPI.MaxID)
	}
	if c.PokeAPI.TimeoutSeconds < 0 {
		return fmt.Errorf("pokeapi.timeout_seconds는 0 이상이어야 합니다 (0 = 기본값)")
	}
	if c.Shiny.Odds < 1 {
		return fmt.Errorf("shiny.odds는 1 이상이어야 합니다: %d", c.Shiny.Odds)
	}

	// 로그 레벨 검증
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("유효하지 않은 로그 레벨: %s (debug, info, warn, error 중 하나)", c.Logging.Level)
	}

	// 로그 포맷 검증
	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("유효하지 않은 로그 포맷: %s (json, text 중 하나)", c.Logging.Format)
	}

	return nil
}

// expandPath는 ~를 홈 디렉토리로 확장합니다.
func expandPath(path string) string {
	if path == "" {
		return ""
	}
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// ConfigDir는 pokefetch 설정 디렉토리를 반환합니다.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pokefetch")
}

// EnsureConfigDir는 설정 디렉토리가 존재하는지 확인하고 없으면 생성합니다.
func EnsureConfigDir() error {
	dir := ConfigDir()
	if dir == "" {
		return fmt.Errorf("홈 디렉토리를 찾을 수 없습니다")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("설정 디렉토리 생성 실패: %w", err)
	}
	return nil
}

// DefaultConfigPath는 기본 설정 파일 경로를 반환합니다.
func DefaultConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}
