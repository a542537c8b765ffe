// Package logger는 구조화된 로깅을 제공합니다.
// stdout은 fastfetch 출력에 쓰이므로 로그는 stderr 또는 파일로만 기록합니다.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/insajin/pokefetch/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup은 로거를 초기화합니다. 열어 둔 로그 파일이 있으면 닫는 함수를 반환합니다.
func Setup(cfg config.LoggingConfig) func() {
	return SetupWriter(cfg, os.Stderr)
}

// SetupWriter는 기본 출력 대상을 지정해 로거를 초기화합니다.
func SetupWriter(cfg config.LoggingConfig, fallback io.Writer) func() {
	// 로그 레벨 설정
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	// 타임스탬프 포맷 설정 (RFC3339)
	zerolog.TimeFieldFormat = time.RFC3339

	closeFn := func() {}
	output := fallback
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			// 파일 열기 실패 시 기본 출력 사용
			log.Warn().Err(err).Str("file", cfg.File).Msg("로그 파일을 열 수 없어 stderr를 사용합니다")
		} else {
			output = file
			closeFn = func() { _ = file.Close() }
		}
	}

	if cfg.Format == "json" {
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	} else {
		// 콘솔 포맷 (기본값)
		consoleWriter := zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.File != "",
		}
		log.Logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
	}
	return closeFn
}

// parseLevel은 문자열 레벨을 zerolog.Level로 변환합니다.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

// WithRunID는 실행 ID를 컨텍스트에 추가한 로거를 반환합니다.
func WithRunID(runID string) zerolog.Logger {
	return log.With().Str("run_id", runID).Logger()
}
