package cmd

import (
	"fmt"

	"github.com/insajin/pokefetch/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	applyArt       string
	applyDisplay   string
	applyFastfetch string
)

// applyCmd는 네트워크 없이 기존 아트로 fastfetch 설정만 갱신합니다.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "기존 아트 파일로 fastfetch 설정을 갱신합니다",
	Long: `PokeAPI와 pokemon-colorscripts를 호출하지 않고,
아트 파일에서 강조색을 추출해 fastfetch 설정만 다시 작성합니다.

예시:
  pokefetch apply --art ~/.cache/pokemon.txt --display "Pikachu"
  pokefetch apply --fastfetch-config ./config.jsonc`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVar(&applyArt, "art", "", "아트 파일 경로 (기본값: paths.cache_file)")
	applyCmd.Flags().StringVar(&applyDisplay, "display", "", "custom 모듈에 넣을 표시 문자열")
	applyCmd.Flags().StringVar(&applyFastfetch, "fastfetch-config", "", "fastfetch 설정 파일 (기본값: paths.fastfetch_config)")
}

// runApply는 강조색 추출과 설정 갱신을 수행합니다.
func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadValidConfig()
	if err != nil {
		return err
	}

	art := cfg.Paths.CacheFile
	if applyArt != "" {
		art = applyArt
	}
	target := cfg.Paths.FastfetchConfig
	if applyFastfetch != "" {
		target = applyFastfetch
	}

	result, err := pipeline.Apply(art, applyDisplay, target)
	if err != nil {
		return err
	}

	printAccent(cmd, art, result)
	fmt.Fprintf(cmd.OutOrStdout(), "설정이 갱신되었습니다: %s\n", target)
	return nil
}
