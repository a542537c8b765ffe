// Package main은 pokefetch CLI의 진입점입니다.
// 무작위 포켓몬 아트와 강조색으로 fastfetch 설정을 갱신하고 fastfetch를 실행합니다.
package main

import (
	"os"

	"github.com/insajin/pokefetch/cmd"
)

// 빌드 시 ldflags로 주입되는 버전 정보
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// 버전 정보를 root 패키지에 설정
	cmd.SetVersionInfo(version, commit, buildDate)

	// CLI 실행
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
