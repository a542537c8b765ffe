// Package palette는 ANSI 아트 텍스트에서 대표 강조색(accent color)을 추출합니다.
// 24비트 truecolor 전경/배경 이스케이프(38;2;R;G;B, 48;2;R;G;B)만 대상으로 하며,
// 너무 어둡거나 밝은 색을 걸러낸 뒤 양자화 히스토그램 투표로 최빈 색을 고릅니다.
package palette

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"
)

const (
	// QuantizeStep은 양자화 버킷 크기입니다.
	QuantizeStep = 8
	// DarkThreshold 미만인 채널만으로 이루어진 색은 버립니다.
	DarkThreshold = 90
	// LightThreshold 초과인 채널만으로 이루어진 색은 버립니다.
	LightThreshold = 180
	// LineOffset은 아트 앞뒤의 장식 줄을 보정하는 값입니다.
	LineOffset = -3
)

// truecolorPattern은 전경(38) 또는 배경(48) truecolor 코드와 R, G, B 필드를 찾습니다.
var truecolorPattern = regexp.MustCompile(`(?:38|48);2;(\d{1,3});(\d{1,3});(\d{1,3})`)

// Accent는 양자화된 대표 색입니다.
type Accent struct {
	R, G, B uint8
}

// String은 fastfetch 색상 필드에 들어가는 전경 truecolor 문자열을 반환합니다.
func (a Accent) String() string {
	return fmt.Sprintf("38;2;%d;%d;%d", a.R, a.G, a.B)
}

// Hex는 #rrggbb 형태의 색상 코드를 반환합니다.
func (a Accent) Hex() string {
	c := colorful.Color{
		R: float64(a.R) / 255.0,
		G: float64(a.G) / 255.0,
		B: float64(a.B) / 255.0,
	}
	return c.Hex()
}

// Result는 추출 결과입니다.
type Result struct {
	// Accent는 최빈 버킷입니다.
	Accent Accent
	// ContentLines는 장식 줄을 제외한 아트의 줄 수입니다 (0 이상).
	ContentLines int
}

// Quantize는 각 채널을 step의 배수로 내림합니다.
func Quantize(c Accent, step uint8) Accent {
	return Accent{
		R: (c.R / step) * step,
		G: (c.G / step) * step,
		B: (c.B / step) * step,
	}
}

// IsDark는 모든 채널이 DarkThreshold 미만인지 확인합니다.
func IsDark(c Accent) bool {
	return c.R < DarkThreshold && c.G < DarkThreshold && c.B < DarkThreshold
}

// IsLight는 모든 채널이 LightThreshold 초과인지 확인합니다.
func IsLight(c Accent) bool {
	return c.R > LightThreshold && c.G > LightThreshold && c.B > LightThreshold
}

// ExtractFile은 파일을 읽어 Extract를 수행합니다.
func ExtractFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, &IoError{Path: path, Err: err}
	}
	return Extract(string(data))
}

// Extract는 텍스트에서 대표 강조색과 콘텐츠 줄 수를 계산합니다.
func Extract(text string) (Result, error) {
	lines := countLines(text) + LineOffset
	if lines < 0 {
		lines = 0
	}

	hist := newHistogram()
	matches := truecolorPattern.FindAllStringSubmatch(text, -1)
	for _, m := range matches {
		sample, err := parseSample(m[1], m[2], m[3])
		if err != nil {
			return Result{}, err
		}
		if IsDark(sample) || IsLight(sample) {
			continue
		}
		hist.add(Quantize(sample, QuantizeStep))
	}

	accent, ok := hist.dominant()
	if !ok {
		return Result{}, ErrNoDominantColor
	}

	log.Debug().
		Int("matches", len(matches)).
		Int("buckets", hist.len()).
		Str("accent", accent.String()).
		Int("content_lines", lines).
		Msg("[palette] 강조색 추출 완료")

	return Result{Accent: accent, ContentLines: lines}, nil
}

// parseSample은 세 필드를 8비트 채널로 변환합니다.
// 255를 넘는 값은 잘라내지 않고 ParseError로 처리합니다.
func parseSample(r, g, b string) (Accent, error) {
	var ch [3]uint8
	for i, field := range []string{r, g, b} {
		v, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return Accent{}, &ParseError{Field: field, Err: err}
		}
		ch[i] = uint8(v)
	}
	return Accent{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// countLines는 줄 단위 반복과 같은 방식으로 줄 수를 셉니다.
// 마지막 개행 뒤의 빈 문자열은 줄로 치지 않습니다.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	n := strings.Count(text, "\n")
	if !strings.HasSuffix(text, "\n") {
		n++
	}
	return n
}
