package cmd

import (
	"fmt"
	"strings"

	"github.com/insajin/pokefetch/internal/branding"
	"github.com/insajin/pokefetch/internal/palette"
	"github.com/insajin/pokefetch/internal/pipeline"
	"github.com/spf13/cobra"
)

// printAccent는 추출 결과를 출력합니다.
func printAccent(cmd *cobra.Command, source string, result palette.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, branding.TitleStyle.Render("accent"))
	fmt.Fprintln(out, branding.Row("source", source))
	fmt.Fprintln(out, branding.Row("accent", result.Accent.String()))
	fmt.Fprintln(out, branding.Row("hex", result.Accent.Hex()+"  "+branding.Swatch(result.Accent.Hex())))
	fmt.Fprintln(out, branding.Row("content lines", fmt.Sprintf("%d", result.ContentLines)))
}

// printReport는 --no-run 실행 결과를 출력합니다.
func printReport(cmd *cobra.Command, r *pipeline.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, branding.TitleStyle.Render(branding.AppName))
	fmt.Fprintln(out, branding.Row("pokemon", fmt.Sprintf("#%d %s", r.Pokemon.ID, r.Name)))
	fmt.Fprintln(out, branding.Row("types", strings.Join(r.Pokemon.Types, ", ")))
	fmt.Fprintln(out, branding.Row("shiny", fmt.Sprintf("%v", r.Shiny)))
	fmt.Fprintln(out, branding.Row("display", r.Display))
	fmt.Fprintln(out, branding.Row("accent", r.Accent.String()+"  "+branding.Swatch(r.Accent.Hex())))
	fmt.Fprintln(out, branding.Row("content lines", fmt.Sprintf("%d", r.ContentLines)))
	fmt.Fprintln(out, branding.Row("run id", r.RunID))
	fmt.Fprintln(out, branding.HelpStyle.Render("fastfetch를 실행하면 갱신된 설정으로 표시됩니다"))
}
