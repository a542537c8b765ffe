// Package badge는 fastfetch custom 모듈에 들어갈 포켓몬 표시 문자열을 만듭니다.
// 이름, 이로치(shiny) 표시, 타입을 256색 배경의 배지로 렌더링합니다.
package badge

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// NameBackground는 이름 배지 배경색입니다 (흰색).
	NameBackground uint8 = 15
	// ShinyBackground는 이로치 배지 배경색입니다 (노란색).
	ShinyBackground uint8 = 220
	// ShinyText는 이로치 배지 문구입니다.
	ShinyText = "★ Shiny! ★"
)

const (
	lightForeground uint8 = 255
	darkForeground  uint8 = 232
)

// typeColors는 타입별 256색 배경입니다.
var typeColors = map[string]uint8{
	"normal":   101,
	"fire":     202,
	"water":    31,
	"electric": 226,
	"grass":    76,
	"ice":      81,
	"fighting": 124,
	"poison":   127,
	"ground":   178,
	"flying":   98,
	"psychic":  170,
	"bug":      142,
	"rock":     101,
	"ghost":    55,
	"dragon":   21,
	"dark":     236,
	"steel":    247,
	"fairy":    219,
}

// darkBackgrounds는 흰 글자를 써야 읽히는 배경색입니다.
var darkBackgrounds = map[uint8]bool{
	1: true, 5: true, 8: true, 21: true, 55: true, 99: true, 236: true,
}

// TypeColor는 타입의 배경색을 반환합니다. 모르는 타입은 0입니다.
func TypeColor(pokemonType string) uint8 {
	return typeColors[strings.ToLower(pokemonType)]
}

// Types는 색상이 정의된 모든 타입 이름입니다.
func Types() []string {
	return []string{
		"normal", "fire", "water", "electric", "grass", "ice",
		"fighting", "poison", "ground", "flying", "psychic", "bug",
		"rock", "ghost", "dragon", "dark", "steel", "fairy",
	}
}

// ForegroundFor는 배경색에 맞는 글자색을 반환합니다.
func ForegroundFor(bg uint8) uint8 {
	if darkBackgrounds[bg] {
		return lightForeground
	}
	return darkForeground
}

// Formatter는 배지를 렌더링합니다.
// 출력은 터미널이 아닌 fastfetch 설정에 저장되므로 항상 256색 시퀀스(38;5;N, 48;5;N)를 씁니다.
type Formatter struct {
	upper cases.Caser
}

// NewFormatter는 Formatter를 생성합니다.
func NewFormatter() *Formatter {
	return &Formatter{upper: cases.Upper(language.English)}
}

// Badge는 text를 배경색 bg의 배지로 렌더링합니다. 좌우에 공백 한 칸씩 들어갑니다.
// 0-15번 색도 16색 코드로 바꾸지 않고 256색 인덱스 그대로 출력합니다.
func (f *Formatter) Badge(text string, bg uint8, bold bool) string {
	style := termenv.ANSI256.String(" " + text + " ")
	if bold {
		style = style.Bold()
	}
	return style.
		Foreground(termenv.ANSI256Color(ForegroundFor(bg))).
		Background(termenv.ANSI256Color(bg)).
		String()
}

// TypeBadges는 타입 배지를 공백으로 이어 붙입니다.
func (f *Formatter) TypeBadges(types []string) string {
	badges := make([]string, 0, len(types))
	for _, t := range types {
		badges = append(badges, f.Badge(f.upper.String(t), TypeColor(t), false))
	}
	return strings.Join(badges, " ")
}

// Display는 이름 배지, 이로치 배지(선택), 타입 배지를 한 줄로 만듭니다.
func (f *Formatter) Display(name string, types []string, shiny bool) string {
	parts := []string{f.Badge(Capitalize(name), NameBackground, true)}
	if shiny {
		parts = append(parts, f.Badge(ShinyText, ShinyBackground, true))
	}
	if len(types) > 0 {
		parts = append(parts, f.TypeBadges(types))
	}
	return strings.Join(parts, " ")
}

// Capitalize는 첫 글자만 대문자로 바꿉니다. 나머지(하이픈 뒤 포함)는 그대로 둡니다.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
