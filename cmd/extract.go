package cmd

import (
	"fmt"

	"github.com/insajin/pokefetch/internal/palette"
	"github.com/spf13/cobra"
)

// extractCmd는 ANSI 아트 파일의 강조색을 출력합니다.
var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "ANSI 아트 파일에서 강조색을 추출합니다",
	Long: `truecolor 이스케이프(38;2;R;G;B, 48;2;R;G;B)를 읽어 강조색을 계산합니다.

파일을 지정하지 않으면 paths.cache_file(기본값 ~/.cache/pokemon.txt)을 사용합니다.
설정 파일은 수정하지 않습니다.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

// runExtract는 강조색을 추출해 출력합니다.
func runExtract(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		cfg, err := loadValidConfig()
		if err != nil {
			return err
		}
		path = cfg.Paths.CacheFile
	}

	result, err := palette.ExtractFile(path)
	if err != nil {
		return fmt.Errorf("강조색 추출 실패: %w", err)
	}

	printAccent(cmd, path, result)
	return nil
}
