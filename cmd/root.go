// Package cmd는 pokefetch CLI의 명령어를 정의합니다.
package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/insajin/pokefetch/internal/config"
	"github.com/insajin/pokefetch/internal/logger"
	"github.com/insajin/pokefetch/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// 전역 플래그
	cfgFile string
	verbose bool

	// 루트 명령 플래그
	forceID    int
	forceShiny bool
	noRun      bool

	// 버전 정보 (main에서 주입)
	appVersion   string
	appCommit    string
	appBuildDate string

	// closeLogger는 로그 파일을 닫습니다.
	closeLogger = func() {}
)

// rootCmd는 CLI의 루트 명령어입니다. 인자 없이 실행하면 전체 파이프라인을 수행합니다.
var rootCmd = &cobra.Command{
	Use:   "pokefetch",
	Short: "무작위 포켓몬으로 fastfetch를 꾸밉니다",
	Long: `pokefetch는 무작위 포켓몬을 골라 pokemon-colorscripts 아트를 만들고,
아트에서 추출한 강조색으로 fastfetch 설정(logo, 색상, modules)을 다시 작성한 뒤
fastfetch를 실행합니다.

설정 파일: ~/.config/pokefetch/config.yaml
환경변수: POKEFETCH_ 접두사 (예: POKEFETCH_SHINY_ODDS=1)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 로거 초기화
		return initLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		closeLogger()
	},
	RunE: runRoot,
}

// Execute는 루트 명령어를 실행합니다. SIGINT/SIGTERM 시 컨텍스트가 취소됩니다.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// SetVersionInfo는 버전 정보를 설정합니다.
func SetVersionInfo(version, commit, buildDate string) {
	appVersion = version
	appCommit = commit
	appBuildDate = buildDate
}

// GetVersionInfo는 버전 정보를 반환합니다.
func GetVersionInfo() (version, commit, buildDate string) {
	return appVersion, appCommit, appBuildDate
}

func init() {
	cobra.OnInitialize(initConfig)

	// 전역 플래그 정의
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"설정 파일 경로 (기본값: ~/.config/pokefetch/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"상세 로그 출력 (debug 레벨)")

	rootCmd.Flags().IntVar(&forceID, "id", 0, "무작위 대신 사용할 도감 번호")
	rootCmd.Flags().BoolVar(&forceShiny, "shiny", false, "항상 이로치로 표시")
	rootCmd.Flags().BoolVar(&noRun, "no-run", false, "설정만 갱신하고 fastfetch는 실행하지 않음")
}

// initConfig는 설정 파일을 초기화합니다.
func initConfig() {
	if cfgFile != "" {
		// 명시적 설정 파일 사용
		viper.SetConfigFile(cfgFile)
	} else {
		dir := config.ConfigDir()
		if dir == "" {
			fmt.Fprintln(os.Stderr, "홈 디렉토리를 찾을 수 없습니다")
			os.Exit(1)
		}
		viper.AddConfigPath(dir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// 환경변수 자동 바인딩 (POKEFETCH_ 접두사)
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 기본값 설정
	config.SetDefaults(viper.GetViper())

	// 설정 파일 읽기 (없어도 오류 아님)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// 설정 파일이 있지만 읽기 실패한 경우만 오류
			fmt.Fprintf(os.Stderr, "설정 파일 읽기 실패: %v\n", err)
		}
	}
}

// initLogger는 로거를 초기화합니다.
func initLogger() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	// verbose 플래그가 설정되면 debug 레벨로 오버라이드
	if verbose {
		cfg.Logging.Level = "debug"
	}

	closeLogger = logger.Setup(cfg.Logging)
	return nil
}

// loadValidConfig는 설정을 로드하고 검증합니다.
func loadValidConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("설정 로드 실패: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("설정 검증 실패: %w", err)
	}
	return cfg, nil
}

// runRoot는 전체 파이프라인을 실행합니다.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidConfig()
	if err != nil {
		return err
	}

	choice := pipeline.Roll(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), cfg.PokeAPI.MaxID, cfg.Shiny.Odds)
	if forceID > 0 {
		choice.ID = forceID
	}
	if forceShiny {
		choice.Shiny = true
	}

	p := pipeline.New(cfg, appVersion)
	p.SkipFastfetch = noRun

	report, err := p.Run(cmd.Context(), choice)
	if err != nil {
		return err
	}

	if noRun {
		printReport(cmd, report)
	}
	return nil
}
