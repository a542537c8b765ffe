package fastfetch

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeConfig는 임시 디렉토리에 설정 파일을 만듭니다.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.jsonc")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("설정 파일 생성 실패: %v", err)
	}
	return path
}

// readConfig는 설정 파일을 map으로 읽습니다.
func readConfig(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("설정 파일 읽기 실패: %v", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("설정 파일 파싱 실패: %v\n%s", err, data)
	}
	return doc
}

// TestSynthesize_MinimalDocument는 빈 객체 문서에 필요한 필드가 모두 생기는지 테스트합니다.
func TestSynthesize_MinimalDocument(t *testing.T) {
	path := writeConfig(t, `{}`)

	if err := Synthesize(testAccent, "/home/ash/.cache/pokemon.txt", "Pikachu", path); err != nil {
		t.Fatalf("Synthesize() 에러: %v", err)
	}

	doc := readConfig(t, path)

	color := doc["display"].(map[string]interface{})["color"].(map[string]interface{})
	if color["title"] != testAccent || color["keys"] != testAccent {
		t.Errorf("display.color = %v, want title=keys=%q", color, testAccent)
	}

	wantLogo := map[string]interface{}{
		"type":    "command-raw",
		"source":  "cat /home/ash/.cache/pokemon.txt",
		"padding": map[string]interface{}{"top": float64(2)},
	}
	if diff := cmp.Diff(wantLogo, doc["logo"]); diff != "" {
		t.Errorf("logo 불일치 (-want +got):\n%s", diff)
	}

	modules := doc["modules"].([]interface{})
	if modules[0] != "title" || modules[1] != "separator" {
		t.Errorf("modules 앞부분 = %v, %v", modules[0], modules[1])
	}
	n := len(modules)
	custom, ok := modules[n-3].(map[string]interface{})
	if !ok {
		t.Fatalf("modules[%d] = %v, want custom 객체", n-3, modules[n-3])
	}
	if custom["type"] != "custom" || custom["key"] != "pokemon" || custom["format"] != "Pikachu" {
		t.Errorf("custom 모듈 = %v", custom)
	}
	if modules[n-2] != "break" || modules[n-1] != "colors" {
		t.Errorf("modules 끝부분 = %v, %v", modules[n-2], modules[n-1])
	}
}

// TestSynthesize_Twice는 두 번째 실행이 이전 상태를 완전히 대체하는지 테스트합니다.
func TestSynthesize_Twice(t *testing.T) {
	path := writeConfig(t, `{}`)
	first := "38;2;248;8;8"
	second := "38;2;8;248;8"

	if err := Synthesize(first, "/tmp/a.txt", "Bulbasaur", path); err != nil {
		t.Fatalf("첫 번째 Synthesize() 에러: %v", err)
	}
	if err := Synthesize(second, "/tmp/b.txt", "Charmander", path); err != nil {
		t.Fatalf("두 번째 Synthesize() 에러: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, stale := range []string{first, "/tmp/a.txt", "Bulbasaur"} {
		if strings.Contains(string(data), stale) {
			t.Errorf("이전 실행 값 %q 이 남아 있음", stale)
		}
	}

	doc := readConfig(t, path)
	modules := doc["modules"].([]interface{})
	if len(modules) != len(BuildModules(second, "Charmander")) {
		t.Errorf("modules 길이 = %d, want %d (추가가 아닌 교체)", len(modules), len(BuildModules(second, "Charmander")))
	}
}

// TestSynthesize_PreservesUnknownKeys는 스키마 밖의 키가 그대로 남는지 테스트합니다.
func TestSynthesize_PreservesUnknownKeys(t *testing.T) {
	path := writeConfig(t, `{
  "$schema": "https://github.com/fastfetch-cli/fastfetch/raw/dev/doc/json_schema.json",
  "display": {
    "separator": " -> ",
    "color": {"separator": "blue", "title": "red"}
  },
  "general": {"thread": true},
  "modules": ["old", {"type": "battery"}]
}`)

	if err := Synthesize(testAccent, "/tmp/p.txt", "Mew", path); err != nil {
		t.Fatalf("Synthesize() 에러: %v", err)
	}

	doc := readConfig(t, path)
	if doc["$schema"] != "https://github.com/fastfetch-cli/fastfetch/raw/dev/doc/json_schema.json" {
		t.Errorf("$schema = %v", doc["$schema"])
	}
	display := doc["display"].(map[string]interface{})
	if display["separator"] != " -> " {
		t.Errorf("display.separator = %v", display["separator"])
	}
	color := display["color"].(map[string]interface{})
	if color["separator"] != "blue" || color["title"] != testAccent {
		t.Errorf("display.color = %v", color)
	}
	if diff := cmp.Diff(map[string]interface{}{"thread": true}, doc["general"]); diff != "" {
		t.Errorf("general 불일치 (-want +got):\n%s", diff)
	}

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), `"old"`) || strings.Contains(string(data), "battery") {
		t.Errorf("이전 modules 항목이 남아 있음:\n%s", data)
	}
}

// TestSynthesize_RoundTrip은 결과 문서를 다시 읽고 써도 논리 구조가 같은지 테스트합니다.
func TestSynthesize_RoundTrip(t *testing.T) {
	path := writeConfig(t, `{"display": {"color": {}}}`)
	display := "\x1b[1m\x1b[38;5;232m\x1b[48;5;15m Pikachu \x1b[0m ★"

	if err := Synthesize(testAccent, "/tmp/p.txt", display, path); err != nil {
		t.Fatalf("Synthesize() 에러: %v", err)
	}

	first := readConfig(t, path)

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument() 에러: %v", err)
	}
	if err := doc.Save(); err != nil {
		t.Fatalf("Save() 에러: %v", err)
	}
	second := readConfig(t, path)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("재저장 후 구조가 달라짐 (-first +second):\n%s", diff)
	}

	modules := second["modules"].([]interface{})
	custom := modules[len(modules)-3].(map[string]interface{})
	if custom["format"] != display {
		t.Errorf("format = %q, want %q", custom["format"], display)
	}
}

// TestSynthesize_Errors는 로드 실패 시 에러 타입과 파일 보존을 테스트합니다.
func TestSynthesize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "잘못된 JSON", content: `{"display": `},
		{name: "최상위 배열", content: `["title"]`},
		{name: "display가 문자열", content: `{"display": "compact"}`},
		{name: "display.color가 숫자", content: `{"display": {"color": 3}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			err := Synthesize(testAccent, "/tmp/p.txt", "Mew", path)
			var loadErr *ConfigLoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("Synthesize() error = %v, want *ConfigLoadError", err)
			}

			data, _ := os.ReadFile(path)
			if string(data) != tt.content {
				t.Errorf("실패 후 파일이 변경됨: %s", data)
			}
		})
	}
}

// TestSynthesize_NullDisplay는 null인 display, display.color가 빈 객체로 채워지는지 테스트합니다.
func TestSynthesize_NullDisplay(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantOther map[string]interface{}
	}{
		{name: "display가 null", content: `{"display": null}`},
		{
			name:      "color가 null",
			content:   `{"display": {"color": null, "separator": " -> "}}`,
			wantOther: map[string]interface{}{"separator": " -> "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			if err := Synthesize(testAccent, "/tmp/p.txt", "Mew", path); err != nil {
				t.Fatalf("Synthesize() 에러: %v", err)
			}

			display := readConfig(t, path)["display"].(map[string]interface{})
			wantColor := map[string]interface{}{"keys": testAccent, "title": testAccent}
			if diff := cmp.Diff(wantColor, display["color"]); diff != "" {
				t.Errorf("display.color 불일치 (-want +got):\n%s", diff)
			}
			for k, v := range tt.wantOther {
				if display[k] != v {
					t.Errorf("display.%s = %v, want %v", k, display[k], v)
				}
			}
		})
	}
}

// TestSynthesize_MissingFile은 파일이 없을 때 ConfigLoadError를 반환하는지 테스트합니다.
func TestSynthesize_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.jsonc")

	err := Synthesize(testAccent, "/tmp/p.txt", "Mew", path)
	var loadErr *ConfigLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Synthesize() error = %v, want *ConfigLoadError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is(err, fs.ErrNotExist) = false")
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, fs.ErrNotExist) {
		t.Errorf("실패 후 파일이 생성됨")
	}
}

// TestSynthesize_PreservesFileMode는 원자적 교체 후 권한이 유지되는지 테스트합니다.
func TestSynthesize_PreservesFileMode(t *testing.T) {
	path := writeConfig(t, `{}`)
	if err := os.Chmod(path, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := Synthesize(testAccent, "/tmp/p.txt", "Mew", path); err != nil {
		t.Fatalf("Synthesize() 에러: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("권한 = %o, want 600", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("임시 파일이 남아 있음: %d개 항목", len(entries))
	}
}

// TestDocument_EnsurePath는 중간 객체 생성을 테스트합니다.
func TestDocument_EnsurePath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "모두 없음", input: `{}`},
		{name: "display만 있음", input: `{"display": {"separator": ":"}}`},
		{name: "모두 있음", input: `{"display": {"color": {"keys": "red"}}}`},
		{name: "display가 null", input: `{"display": null}`},
		{name: "color가 null", input: `{"display": {"color": null, "separator": ":"}}`},
		{name: "display가 문자열", input: `{"display": "none"}`, wantErr: true},
		{name: "color가 배열", input: `{"display": {"color": []}}`, wantErr: true},
		{name: "color가 숫자", input: `{"display": {"color": 3}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := ParseDocument("test.json", []byte(tt.input))
			if err != nil {
				t.Fatalf("ParseDocument() 에러: %v", err)
			}

			err = doc.EnsurePath("display.color")
			if tt.wantErr {
				var loadErr *ConfigLoadError
				if !errors.As(err, &loadErr) {
					t.Fatalf("EnsurePath() error = %v, want *ConfigLoadError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("EnsurePath() 에러: %v", err)
			}
			if !doc.Get("display").IsObject() || !doc.Get("display.color").IsObject() {
				t.Errorf("display.color가 객체가 아님: %s", doc.Bytes())
			}
		})
	}
}
