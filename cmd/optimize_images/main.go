// optimize_images 压缩 assets/images 下的植物阶段图片
//
// 用法：
//
//	go run ./cmd/optimize_images [--dir assets/images] [--quality 85] [--max-size 400]
//
// 参数也可以通过环境变量设置，例如 PLANTBUDDY_OPT_QUALITY=70。
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/decker502/plantbuddy/pkg/imageopt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	summaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("34")).
			Padding(0, 1)
)

var rootCmd = &cobra.Command{
	Use:   "optimize_images",
	Short: "Recompress plant images to reduce their size",
	Long: `Re-encode every .png/.jpg/.jpeg/.webp file in the image folder as JPEG,
flattening transparency onto white and shrinking images larger than max-size.
Files are overwritten in place and keep their names.`,
	SilenceUsage: true,
	RunE:         runOptimize,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("dir", "d", "assets/images", "image folder to optimize")
	flags.IntP("quality", "q", imageopt.DefaultQuality, "JPEG quality (1-100)")
	flags.Int("max-size", imageopt.DefaultMaxSize, "maximum width/height in pixels (0 disables resizing)")

	_ = viper.BindPFlag("dir", flags.Lookup("dir"))
	_ = viper.BindPFlag("quality", flags.Lookup("quality"))
	_ = viper.BindPFlag("max_size", flags.Lookup("max-size"))

	viper.SetEnvPrefix("PLANTBUDDY_OPT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runOptimize(cmd *cobra.Command, args []string) error {
	dir := viper.GetString("dir")
	opts := imageopt.Options{
		Quality: viper.GetInt("quality"),
		MaxSize: viper.GetInt("max_size"),
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	results, err := imageopt.OptimizeFolder(dir, opts)
	if errors.Is(err, imageopt.ErrFolderNotFound) {
		fmt.Fprintln(out, errStyle.Render("Assets folder not found: "+dir))
		fmt.Fprintln(out, dimStyle.Render("Place your plant images in: "+dir+"/"))
		fmt.Fprintln(out, dimStyle.Render("   Expected files:"))
		fmt.Fprintln(out, dimStyle.Render("   - seed.png.webp"))
		fmt.Fprintln(out, dimStyle.Render("   - sprout.png.webp"))
		fmt.Fprintln(out, dimStyle.Render("   - flower.png.webp"))
		return err
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render("Virtual Plant Buddy - Image Optimizer"))
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("Scanning folder: %s (quality=%d, max-size=%d)", dir, opts.Quality, opts.MaxSize)))

	var failed int
	var before, after int64
	for _, r := range results {
		name := filepath.Base(r.Path)
		if r.Err != nil {
			failed++
			fmt.Fprintln(out, errStyle.Render("x Error optimizing "+name+": "+r.Err.Error()))
			continue
		}

		before += r.OriginalSize
		after += r.NewSize
		fmt.Fprintln(out, okStyle.Render("+ Optimized: "+name))
		fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("   Size: %d -> %d bytes (%.1f%% reduction), %dx%d",
			r.OriginalSize, r.NewSize, r.Reduction(), r.Width, r.Height)))
	}

	total := imageopt.Result{OriginalSize: before, NewSize: after}
	summary := fmt.Sprintf("Optimized %d of %d files\nTotal: %d -> %d bytes (%.1f%% reduction)",
		len(results)-failed, len(results), before, after, total.Reduction())
	fmt.Fprintln(out, summaryStyle.Render(summary))

	if failed > 0 {
		return fmt.Errorf("%d file(s) failed to optimize", failed)
	}
	return nil
}
