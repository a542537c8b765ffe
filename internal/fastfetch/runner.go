package fastfetch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Runner는 fastfetch 바이너리를 실행합니다.
type Runner struct {
	// Path는 바이너리 경로입니다. 비어 있으면 PATH에서 "fastfetch"를 찾습니다.
	Path   string
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner는 표준 출력에 연결된 Runner를 생성합니다.
func NewRunner(path string) *Runner {
	return &Runner{Path: path, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run은 fastfetch를 실행하고 종료를 기다립니다.
func (r *Runner) Run(ctx context.Context, args ...string) error {
	bin := r.Path
	if bin == "" {
		bin = "fastfetch"
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	log.Debug().Str("bin", bin).Strs("args", args).Msg("[fastfetch] 실행")

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("fastfetch 실행 실패: %w", err)
	}
	return nil
}
