package fastfetch

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/insajin/pokefetch/internal/fileutil"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Document는 fastfetch 설정 파일의 메모리 사본입니다.
// 원본 바이트를 gjson/sjson으로 직접 수정하므로 알 수 없는 키와 키 순서가 그대로 유지됩니다.
type Document struct {
	path string
	raw  []byte
}

// LoadDocument는 path의 JSON 문서를 읽습니다.
// 파일이 없거나 최상위가 객체가 아니면 ConfigLoadError를 반환합니다.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigLoadError{Path: path, Err: err}
		}
		return nil, &IoError{Op: "read", Path: path, Err: err}
	}
	return ParseDocument(path, data)
}

// ParseDocument는 이미 읽은 바이트로 Document를 만듭니다.
func ParseDocument(path string, data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ConfigLoadError{Path: path, Err: errors.New("유효한 JSON이 아닙니다")}
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, &ConfigLoadError{Path: path, Err: errors.New("최상위 값이 객체가 아닙니다")}
	}
	raw := make([]byte, len(data))
	copy(raw, data)
	return &Document{path: path, raw: raw}, nil
}

// Path는 문서가 로드된 경로입니다.
func (d *Document) Path() string {
	return d.path
}

// Get은 점(.)으로 구분된 경로의 값을 조회합니다.
func (d *Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d.raw, path)
}

// EnsurePath는 경로의 각 단계가 객체로 존재하도록 빈 객체를 채워 넣습니다.
// 없거나 null인 단계는 빈 객체로 바꿉니다.
// 문자열, 숫자, 배열 등 다른 타입이면 덮어쓰지 않고 ConfigLoadError를 반환합니다.
func (d *Document) EnsurePath(path string) error {
	segments := strings.Split(path, ".")
	for i := range segments {
		prefix := strings.Join(segments[:i+1], ".")
		res := gjson.GetBytes(d.raw, prefix)
		if !res.Exists() || res.Type == gjson.Null {
			if err := d.SetRaw(prefix, []byte("{}")); err != nil {
				return err
			}
			continue
		}
		if !res.IsObject() {
			return &ConfigLoadError{
				Path: d.path,
				Err:  fmt.Errorf("%s 값이 객체가 아닙니다 (%s)", prefix, res.Type),
			}
		}
	}
	return nil
}

// Set은 경로에 값을 JSON으로 직렬화해 설정합니다.
func (d *Document) Set(path string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &SynthesisError{Field: path, Err: err}
	}
	return d.SetRaw(path, raw)
}

// SetRaw는 경로에 이미 직렬화된 JSON을 설정합니다.
func (d *Document) SetRaw(path string, raw []byte) error {
	updated, err := sjson.SetRawBytes(d.raw, path, raw)
	if err != nil {
		return &SynthesisError{Field: path, Err: err}
	}
	d.raw = updated
	return nil
}

// Bytes는 사람이 읽기 쉬운 형태로 정렬된 문서를 반환합니다.
func (d *Document) Bytes() []byte {
	return pretty.PrettyOptions(d.raw, &pretty.Options{
		Width:    80,
		Prefix:   "",
		Indent:   "  ",
		SortKeys: false,
	})
}

// Save는 문서를 원래 경로에 원자적으로 기록합니다.
func (d *Document) Save() error {
	if err := fileutil.WriteAtomic(d.path, d.Bytes()); err != nil {
		return &IoError{Op: "write", Path: d.path, Err: err}
	}
	return nil
}
