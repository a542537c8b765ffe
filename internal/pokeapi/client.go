// Package pokeapi는 PokeAPI에서 포켓몬 메타데이터를 가져옵니다.
package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// DefaultBaseURL은 PokeAPI v2 기본 URL입니다.
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	// DefaultMaxID는 pokemon-colorscripts가 지원하는 마지막 도감 번호입니다.
	DefaultMaxID = 904
	// defaultTimeout은 HTTP 요청 타임아웃입니다.
	defaultTimeout = 30 * time.Second
	// maxBodyBytes는 응답 본문 최대 크기입니다 (8MB).
	maxBodyBytes = 8 * 1024 * 1024
)

// Pokemon은 표시에 필요한 포켓몬 정보입니다.
type Pokemon struct {
	ID   int
	Name string
	// Types는 slot 순서로 정렬된 타입 이름입니다.
	Types []string
}

// pokemonResponse는 /pokemon/{id} 응답 중 사용하는 필드입니다.
type pokemonResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Types []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
}

// Client는 PokeAPI HTTP 클라이언트입니다.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient는 새로운 Client를 생성합니다. timeout이 0 이하이면 기본값을 사용합니다.
func NewClient(baseURL, version string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: fmt.Sprintf("pokefetch/%s", version),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch는 도감 번호로 포켓몬 정보를 가져옵니다.
func (c *Client) Fetch(ctx context.Context, id int) (*Pokemon, error) {
	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	log.Debug().Int("id", id).Str("url", url).Msg("[pokeapi] 요청")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PokeAPI 요청 실패: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("PokeAPI 응답 오류 (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload pokemonResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("PokeAPI 응답 파싱 실패: %w", err)
	}
	if payload.Name == "" {
		return nil, fmt.Errorf("PokeAPI 응답에 이름이 없습니다 (id=%d)", id)
	}

	sort.SliceStable(payload.Types, func(i, j int) bool {
		return payload.Types[i].Slot < payload.Types[j].Slot
	})
	types := make([]string, 0, len(payload.Types))
	for _, t := range payload.Types {
		if t.Type.Name != "" {
			types = append(types, t.Type.Name)
		}
	}

	if payload.ID == 0 {
		payload.ID = id
	}
	return &Pokemon{ID: payload.ID, Name: payload.Name, Types: types}, nil
}

// RandomID는 [1, maxID] 범위의 도감 번호를 뽑습니다.
func RandomID(rng *rand.Rand, maxID int) int {
	if maxID < 1 {
		maxID = DefaultMaxID
	}
	return rng.IntN(maxID) + 1
}
