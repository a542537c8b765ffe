package fastfetch

import "encoding/json"

// Flags는 특정 모듈 타입에만 붙는 선택 옵션입니다.
type Flags struct {
	ShowPeCoreCount *bool `json:"showPeCoreCount,omitempty"`
	Temp            *bool `json:"temp,omitempty"`
	DriverSpecific  *bool `json:"driverSpecific,omitempty"`
}

// Module은 fastfetch modules 배열의 항목입니다.
// Tag가 설정되면 "title" 같은 단순 문자열 항목으로 직렬화됩니다.
type Module struct {
	Tag string `json:"-"`

	Type       string  `json:"type,omitempty"`
	Key        string  `json:"key,omitempty"`
	Format     *string `json:"format,omitempty"`
	KeyColor   string  `json:"keyColor,omitempty"`
	ValueColor string  `json:"valueColor,omitempty"`
	Flags
}

// MarshalJSON은 Tag 항목을 문자열로, 나머지는 객체로 직렬화합니다.
func (m Module) MarshalJSON() ([]byte, error) {
	if m.Tag != "" {
		return json.Marshal(m.Tag)
	}
	type plain Module
	return json.Marshal(plain(m))
}

// Category는 카테고리 표의 한 줄입니다.
type Category struct {
	Type  string
	Key   string
	Flags Flags
}

func flag(v bool) *bool {
	return &v
}

// Categories는 정보 모듈의 순서와 고정폭 키 라벨입니다.
var Categories = []Category{
	{Type: "os", Key: "os    "},
	{Type: "kernel", Key: "kernel"},
	{Type: "uptime", Key: "uptime"},
	{Type: "processes", Key: "proc  "},
	{Type: "packages", Key: "pkgs  "},
	{Type: "shell", Key: "shell "},
	{Type: "monitor", Key: "mon   "},
	{Type: "terminal", Key: "term  "},
	{Type: "cpu", Key: "cpu   ", Flags: Flags{ShowPeCoreCount: flag(false), Temp: flag(true)}},
	{Type: "cpuusage", Key: "usage "},
	{Type: "gpu", Key: "gpu   ", Flags: Flags{DriverSpecific: flag(true), Temp: flag(true)}},
	{Type: "memory", Key: "memory"},
	{Type: "disk", Key: "disk  "},
	{Type: "media", Key: "media "},
	{Type: "datetime", Key: "time "},
	{Type: "version", Key: "ver   "},
}

// CustomKey는 포켓몬 표시 모듈의 키입니다.
const CustomKey = "pokemon"

// BuildModules는 강조색과 표시 문자열로 modules 배열 전체를 만듭니다.
// 같은 입력에는 항상 같은 결과를 돌려줍니다.
func BuildModules(accent, display string) []Module {
	modules := make([]Module, 0, len(Categories)+6)
	modules = append(modules, Module{Tag: "title"}, Module{Tag: "separator"})

	for _, c := range Categories {
		modules = append(modules, Module{
			Type:       c.Type,
			Key:        c.Key,
			KeyColor:   accent,
			ValueColor: accent,
			Flags:      c.Flags,
		})
	}

	modules = append(modules,
		Module{Tag: "separator"},
		Module{
			Type:       "custom",
			Key:        CustomKey,
			Format:     &display,
			KeyColor:   accent,
			ValueColor: accent,
		},
		Module{Tag: "break"},
		Module{Tag: "colors"},
	)
	return modules
}
