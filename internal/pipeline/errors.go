package pipeline

import "fmt"

// Stage는 파이프라인 단계 이름입니다.
type Stage string

const (
	StageFetch      Stage = "fetch"
	StageRender     Stage = "render"
	StageExtract    Stage = "extract"
	StageSynthesize Stage = "synthesize"
	StageFastfetch  Stage = "fastfetch"
)

// StageError는 실패한 단계와 관련 파일을 함께 담는 에러입니다.
type StageError struct {
	Stage Stage
	// Path는 관련 파일 경로입니다. 없으면 비어 있습니다.
	Path string
	Err  error
}

func (e *StageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s 단계 실패 (%s): %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("%s 단계 실패: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
