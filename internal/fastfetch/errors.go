package fastfetch

import "fmt"

// ConfigLoadError는 설정 문서가 없거나 형식이 잘못되었을 때 반환됩니다.
type ConfigLoadError struct {
	Path string
	Err  error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("fastfetch 설정 로드 실패 (%s): %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// IoError는 설정 파일을 읽거나 쓸 수 없을 때 반환됩니다.
type IoError struct {
	// Op는 "read" 또는 "write"입니다.
	Op   string
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("fastfetch 설정 %s 실패 (%s): %v", e.Op, e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// SynthesisError는 문서 필드를 갱신하거나 직렬화하지 못했을 때 반환됩니다.
type SynthesisError struct {
	Field string
	Err   error
}

func (e *SynthesisError) Error() string {
	return fmt.Sprintf("fastfetch 설정 필드 갱신 실패 (%s): %v", e.Field, e.Err)
}

func (e *SynthesisError) Unwrap() error {
	return e.Err
}
