// Package pipeline은 포켓몬 선택부터 fastfetch 실행까지 한 번의 실행을 조율합니다.
// fetch -> 표시 문자열 -> 아트 생성 -> 강조색 추출 -> 설정 갱신 -> fastfetch 순서로 진행하며,
// 각 단계는 이전 단계가 끝난 뒤에만 시작합니다.
package pipeline

import (
	"context"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/insajin/pokefetch/internal/badge"
	"github.com/insajin/pokefetch/internal/colorscript"
	"github.com/insajin/pokefetch/internal/config"
	"github.com/insajin/pokefetch/internal/fastfetch"
	"github.com/insajin/pokefetch/internal/logger"
	"github.com/insajin/pokefetch/internal/palette"
	"github.com/insajin/pokefetch/internal/pokeapi"
)

// Fetcher는 포켓몬 메타데이터 조회기입니다.
type Fetcher interface {
	Fetch(ctx context.Context, id int) (*pokeapi.Pokemon, error)
}

// ArtRenderer는 ANSI 아트를 캐시 파일로 생성합니다.
type ArtRenderer interface {
	Render(ctx context.Context, name string, shiny bool, cachePath string) error
}

// Formatter는 표시 문자열을 만듭니다.
type Formatter interface {
	Display(name string, types []string, shiny bool) string
}

// Launcher는 fastfetch를 실행합니다.
type Launcher interface {
	Run(ctx context.Context, args ...string) error
}

// Choice는 이번 실행에서 뽑은 포켓몬입니다.
type Choice struct {
	ID    int
	Shiny bool
}

// Roll은 도감 번호와 이로치 여부를 뽑습니다. 이로치 확률은 1/odds입니다.
func Roll(rng *rand.Rand, maxID, odds int) Choice {
	if odds < 1 {
		odds = 1
	}
	return Choice{
		ID:    pokeapi.RandomID(rng, maxID),
		Shiny: rng.IntN(odds) == 0,
	}
}

// Report는 한 번의 실행 결과입니다.
type Report struct {
	RunID        string
	Pokemon      *pokeapi.Pokemon
	Name         string
	Shiny        bool
	Display      string
	Accent       palette.Accent
	ContentLines int
}

// Pipeline은 한 번의 실행에 필요한 협력 객체와 경로를 묶습니다.
type Pipeline struct {
	Fetcher   Fetcher
	Renderer  ArtRenderer
	Formatter Formatter
	Fastfetch Launcher

	CachePath  string
	ConfigPath string

	// SkipFastfetch가 true이면 설정만 갱신하고 fastfetch는 실행하지 않습니다.
	SkipFastfetch bool
}

// New는 설정으로 실제 협력 객체를 갖춘 Pipeline을 생성합니다.
func New(cfg *config.Config, version string) *Pipeline {
	return &Pipeline{
		Fetcher:    pokeapi.NewClient(cfg.PokeAPI.BaseURL, version, cfg.PokeAPI.Timeout()),
		Renderer:   colorscript.NewRenderer(cfg.Commands.Colorscripts, cfg.Commands.Timeout()),
		Formatter:  badge.NewFormatter(),
		Fastfetch:  fastfetch.NewRunner(cfg.Commands.Fastfetch),
		CachePath:  cfg.Paths.CacheFile,
		ConfigPath: cfg.Paths.FastfetchConfig,
	}
}

// Run은 choice로 전체 파이프라인을 실행합니다.
func (p *Pipeline) Run(ctx context.Context, choice Choice) (*Report, error) {
	runID := uuid.NewString()
	l := logger.WithRunID(runID)

	// 1단계: 메타데이터 조회
	pokemon, err := p.Fetcher.Fetch(ctx, choice.ID)
	if err != nil {
		return nil, &StageError{Stage: StageFetch, Err: err}
	}
	name := pokeapi.ColorscriptName(pokemon.ID, pokemon.Name)

	l.Info().
		Int("id", pokemon.ID).
		Str("name", name).
		Strs("types", pokemon.Types).
		Bool("shiny", choice.Shiny).
		Msg("[pipeline] 포켓몬 선택")

	// 2단계: 표시 문자열
	display := p.Formatter.Display(name, pokemon.Types, choice.Shiny)

	// 3단계: 아트 생성 (실패해도 이전 캐시로 계속 진행)
	if err := p.Renderer.Render(ctx, name, choice.Shiny, p.CachePath); err != nil {
		l.Warn().Err(err).Str("cache", p.CachePath).Msg("[pipeline] 아트 생성 실패, 기존 캐시 사용")
	}

	// 4-5단계: 강조색 추출 + 설정 갱신
	result, err := Apply(p.CachePath, display, p.ConfigPath)
	if err != nil {
		return nil, err
	}

	l.Info().
		Str("accent", result.Accent.String()).
		Int("content_lines", result.ContentLines).
		Str("config", p.ConfigPath).
		Msg("[pipeline] fastfetch 설정 갱신")

	report := &Report{
		RunID:        runID,
		Pokemon:      pokemon,
		Name:         name,
		Shiny:        choice.Shiny,
		Display:      display,
		Accent:       result.Accent,
		ContentLines: result.ContentLines,
	}

	// 6단계: fastfetch 실행
	if p.SkipFastfetch {
		return report, nil
	}
	if err := p.Fastfetch.Run(ctx); err != nil {
		return report, &StageError{Stage: StageFastfetch, Err: err}
	}
	return report, nil
}

// Apply는 네트워크와 외부 명령 없이 강조색 추출과 설정 갱신만 수행합니다.
func Apply(artPath, display, configPath string) (palette.Result, error) {
	result, err := palette.ExtractFile(artPath)
	if err != nil {
		return palette.Result{}, &StageError{Stage: StageExtract, Path: artPath, Err: err}
	}

	if err := fastfetch.Synthesize(result.Accent.String(), artPath, display, configPath); err != nil {
		return palette.Result{}, &StageError{Stage: StageSynthesize, Path: configPath, Err: err}
	}
	return result, nil
}
