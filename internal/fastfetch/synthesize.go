// Package fastfetch는 fastfetch 설정 파일을 포켓몬 아트와 강조색으로 다시 작성하고,
// fastfetch 바이너리를 실행합니다.
package fastfetch

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// LogoPaddingTop은 로고 위쪽 여백(줄)입니다.
const LogoPaddingTop = 2

// Logo는 "command-raw" 로고 항목입니다.
type Logo struct {
	Type    string      `json:"type"`
	Source  string      `json:"source"`
	Padding LogoPadding `json:"padding"`
}

// LogoPadding은 로고 여백입니다.
type LogoPadding struct {
	Top int `json:"top"`
}

// NewLogo는 아트 캐시 파일을 출력하는 로고 항목을 만듭니다.
func NewLogo(artworkPath string) Logo {
	return Logo{
		Type:    "command-raw",
		Source:  fmt.Sprintf("cat %s", artworkPath),
		Padding: LogoPadding{Top: LogoPaddingTop},
	}
}

// Apply는 문서에 로고, 색상, 모듈 목록을 반영합니다. 디스크에는 쓰지 않습니다.
func Apply(doc *Document, accent, artworkPath, displayText string) error {
	if err := doc.Set("logo", NewLogo(artworkPath)); err != nil {
		return err
	}

	if err := doc.EnsurePath("display.color"); err != nil {
		return err
	}
	if err := doc.Set("display.color.title", accent); err != nil {
		return err
	}
	if err := doc.Set("display.color.keys", accent); err != nil {
		return err
	}

	return doc.Set("modules", BuildModules(accent, displayText))
}

// Synthesize는 configPath의 문서를 읽고, 갱신한 뒤 같은 경로에 덮어씁니다.
// 모든 갱신이 성공한 경우에만 파일을 씁니다.
func Synthesize(accent, artworkPath, displayText, configPath string) error {
	doc, err := LoadDocument(configPath)
	if err != nil {
		return err
	}

	if err := Apply(doc, accent, artworkPath, displayText); err != nil {
		return err
	}

	if err := doc.Save(); err != nil {
		return err
	}

	log.Debug().
		Str("config", configPath).
		Str("accent", accent).
		Str("artwork", artworkPath).
		Msg("[fastfetch] 설정 갱신 완료")
	return nil
}
