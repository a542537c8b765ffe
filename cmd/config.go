// config.go는 설정 관리 명령을 구현합니다.

package cmd

import (
	"fmt"
	"os"

	"github.com/insajin/pokefetch/internal/branding"
	"github.com/insajin/pokefetch/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// configCmd는 설정 관리를 위한 상위 명령어입니다.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "설정을 관리합니다",
	Long: `설정 파일의 값을 조회합니다.

설정 파일 위치: ~/.config/pokefetch/config.yaml
환경변수(POKEFETCH_ 접두사)가 설정 파일보다 우선합니다.`,
}

// configGetCmd는 설정 값을 조회하는 명령어입니다.
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "설정 값을 조회합니다",
	Long: `설정에서 특정 키의 값을 조회합니다.

키는 점(.)으로 구분된 경로를 사용합니다.
예시:
  pokefetch config get paths.fastfetch_config
  pokefetch config get shiny.odds`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configListCmd는 전체 설정을 출력하는 명령어입니다.
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "전체 설정을 출력합니다",
	Long:  `현재 적용된 모든 설정을 YAML 포맷으로 출력하고, 외부 명령 설치 여부를 표시합니다.`,
	RunE:  runConfigList,
}

// configPathCmd는 설정 파일 경로를 출력하는 명령어입니다.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "설정 파일 경로를 출력합니다",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.DefaultConfigPath())
		return nil
	},
}

// configInitCmd는 기본 설정 파일을 생성하는 명령어입니다.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "기본 설정 파일을 생성합니다",
	Long: `기본 설정 파일을 ~/.config/pokefetch/config.yaml에 생성합니다.

이미 파일이 존재하면 덮어쓰지 않습니다.
강제로 덮어쓰려면 --force 플래그를 사용하세요.`,
	RunE: runConfigInit,
}

var forceInit bool

// defaultConfigYAML은 config init이 생성하는 파일 내용입니다.
const defaultConfigYAML = `# pokefetch 설정 파일
# 생성됨: pokefetch config init

paths:
  cache_file: "~/.cache/pokemon.txt"
  fastfetch_config: "~/.config/fastfetch/config.jsonc"

pokeapi:
  base_url: "https://pokeapi.co/api/v2"
  max_id: 904          # pokemon-colorscripts 지원 범위
  timeout_seconds: 30

shiny:
  odds: 4              # 1/4 확률로 이로치

commands:
  colorscripts: "pokemon-colorscripts"
  fastfetch: "fastfetch"
  timeout_seconds: 15

logging:
  level: "warn"        # debug, info, warn, error
  format: "text"       # json, text
  file: ""             # 비어있으면 stderr
`

func init() {
	rootCmd.AddCommand(configCmd)

	// 하위 명령 등록
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)

	// init 명령 플래그
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "기존 파일을 덮어씁니다")
}

// runConfigGet은 설정 값을 조회합니다.
func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	value := viper.Get(key)
	if value == nil {
		return fmt.Errorf("설정 키를 찾을 수 없습니다: %s", key)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, value)
	return nil
}

// runConfigList는 전체 설정을 출력합니다.
func runConfigList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	// 설정 파일 경로 출력
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		fmt.Fprintf(out, "# 설정 파일: %s\n", configFile)
	} else {
		fmt.Fprintf(out, "# 설정 파일: (기본값 사용 중)\n")
	}
	fmt.Fprintln(out)

	// YAML로 직렬화
	yamlData, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("YAML 직렬화 실패: %w", err)
	}
	fmt.Fprintln(out, string(yamlData))

	// 외부 명령 설치 상태 출력
	fmt.Fprintln(out, "# 외부 명령 상태:")
	printBinaryStatus(cmd, "pokemon-colorscripts", cfg.Commands.Colorscripts)
	printBinaryStatus(cmd, "fastfetch", cfg.Commands.Fastfetch)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(out, branding.MissingStyle.Render("# 검증 실패: "+err.Error()))
	}
	return nil
}

// runConfigInit은 기본 설정 파일을 생성합니다.
func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath := config.DefaultConfigPath()

	// 기존 파일 확인
	if !forceInit {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("설정 파일이 이미 존재합니다: %s\n--force 플래그로 덮어쓸 수 있습니다", configPath)
		}
	}

	// 설정 디렉토리 생성
	if err := config.EnsureConfigDir(); err != nil {
		return err
	}

	if err := os.WriteFile(configPath, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("설정 파일 생성 실패: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "설정 파일이 생성되었습니다: %s\n", configPath)
	return nil
}

// printBinaryStatus는 외부 명령 설치 상태를 출력합니다.
func printBinaryStatus(cmd *cobra.Command, displayName, bin string) {
	if config.IsAvailable(bin) {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s (%s)\n", displayName, branding.OKStyle.Render("설치됨"), bin)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s (%s)\n", displayName, branding.MissingStyle.Render("찾을 수 없음"), bin)
	}
}
