// Package colorscript는 pokemon-colorscripts로 포켓몬 ANSI 아트를 생성해 캐시 파일에 저장합니다.
package colorscript

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/insajin/pokefetch/internal/fileutil"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultBinary는 기본 실행 파일 이름입니다.
	DefaultBinary = "pokemon-colorscripts"
	// DefaultTimeout은 아트 생성 기본 타임아웃입니다.
	DefaultTimeout = 15 * time.Second
	// MaxOutputBytes는 stdout/stderr 최대 캡처 크기입니다 (1MB).
	MaxOutputBytes = 1 * 1024 * 1024
)

var (
	// ErrEmptyOutput은 명령이 성공했지만 아무것도 출력하지 않았을 때 반환됩니다.
	ErrEmptyOutput = errors.New("pokemon-colorscripts 출력이 비어 있습니다")
	// ErrOutputTruncated는 출력이 MaxOutputBytes를 넘어 잘렸을 때 반환됩니다.
	ErrOutputTruncated = errors.New("pokemon-colorscripts 출력이 너무 큽니다")
)

// Renderer는 pokemon-colorscripts 실행기입니다.
type Renderer struct {
	binary    string
	timeout   time.Duration
	maxOutput int
}

// NewRenderer는 Renderer를 생성합니다. 비어 있는 값은 기본값을 사용합니다.
func NewRenderer(binary string, timeout time.Duration) *Renderer {
	if binary == "" {
		binary = DefaultBinary
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Renderer{binary: binary, timeout: timeout, maxOutput: MaxOutputBytes}
}

// Args는 실행 인자를 만듭니다.
func Args(name string, shiny bool) []string {
	args := []string{"-n", name, "--no-title"}
	if shiny {
		args = append(args, "-s")
	}
	return args
}

// Render는 아트를 생성해 cachePath에 원자적으로 기록합니다.
// 명령이 실패하거나 출력이 비어 있으면 기존 캐시를 건드리지 않습니다.
func (r *Renderer) Render(ctx context.Context, name string, shiny bool, cachePath string) error {
	cmdCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := Args(name, shiny)
	cmd := exec.CommandContext(cmdCtx, r.binary, args...)

	var stdout, stderr bytes.Buffer
	stdoutW := &limitedWriter{w: &stdout, limit: r.maxOutput}
	cmd.Stdout = stdoutW
	cmd.Stderr = &limitedWriter{w: &stderr, limit: r.maxOutput}

	log.Debug().
		Str("bin", r.binary).
		Strs("args", args).
		Dur("timeout", r.timeout).
		Msg("[colorscript] 아트 생성 시작")

	if err := cmd.Run(); err != nil {
		if cmdCtx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("pokemon-colorscripts 타임아웃 (%s 초과)", r.timeout)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("pokemon-colorscripts 실행 실패: %w: %s", err, msg)
		}
		return fmt.Errorf("pokemon-colorscripts 실행 실패: %w", err)
	}
	if stdout.Len() == 0 {
		return ErrEmptyOutput
	}
	if stdoutW.truncated {
		return fmt.Errorf("%w (%d바이트 초과)", ErrOutputTruncated, r.maxOutput)
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return fmt.Errorf("캐시 디렉토리 생성 실패: %w", err)
	}
	if err := fileutil.WriteAtomic(cachePath, stdout.Bytes()); err != nil {
		return fmt.Errorf("아트 캐시 저장 실패: %w", err)
	}

	log.Debug().
		Str("cache", cachePath).
		Int("bytes", stdout.Len()).
		Msg("[colorscript] 아트 생성 완료")
	return nil
}

// limitedWriter는 지정된 크기 제한까지만 쓰기를 허용하는 io.Writer 래퍼입니다.
// 제한을 초과하는 데이터는 폐기하고 truncated를 표시합니다.
type limitedWriter struct {
	w         *bytes.Buffer
	limit     int
	truncated bool
}

// Write는 제한 내에서 데이터를 쓰고, 초과분은 폐기합니다.
func (lw *limitedWriter) Write(p []byte) (int, error) {
	remaining := lw.limit - lw.w.Len()
	if remaining <= 0 {
		if len(p) > 0 {
			lw.truncated = true
		}
		return len(p), nil
	}
	if len(p) > remaining {
		lw.truncated = true
		if _, err := lw.w.Write(p[:remaining]); err != nil {
			return 0, err
		}
		return len(p), nil
	}
	return lw.w.Write(p)
}
