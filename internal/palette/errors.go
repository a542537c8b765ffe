package palette

import (
	"errors"
	"fmt"
)

// ErrNoDominantColor는 필터링 후 남은 색 샘플이 없을 때 반환됩니다.
var ErrNoDominantColor = errors.New("대표 색을 찾을 수 없습니다: 유효한 truecolor 샘플 없음")

// ParseError는 색상 필드를 8비트 값으로 해석할 수 없을 때 반환됩니다.
type ParseError struct {
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("색상 필드 파싱 실패 (%q): %v", e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IoError는 아트 파일을 읽지 못했을 때 반환됩니다.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("아트 파일 읽기 실패 (%s): %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}
