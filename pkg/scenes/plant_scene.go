package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/plantbuddy/pkg/config"
	"github.com/decker502/plantbuddy/pkg/game"
	"github.com/decker502/plantbuddy/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const plantInstructionText = "W/SPACE: Water   R: Reset   ESC: Menu"

// PlantScene 植物照料场景
//
// 绘制顺序：背景 -> 植物（当前阶段与下一阶段）-> 闪光 -> 状态面板 -> 操作说明 -> 生长提示
type PlantScene struct {
	session         *game.Session
	resourceManager *game.ResourceManager

	background *ebiten.Image // 渐变 + 地面，首次绘制时生成

	mediumFace *text.GoTextFace
	smallFace  *text.GoTextFace
}

// NewPlantScene 创建植物照料场景
//
// 参数：
//   - session: 游戏会话
//   - rm: 资源管理器，提供阶段图片与字体
func NewPlantScene(session *game.Session, rm *game.ResourceManager) *PlantScene {
	return &PlantScene{
		session:         session,
		resourceManager: rm,
		mediumFace:      loadFace(rm, config.FontSizeMedium),
		smallFace:       loadFace(rm, config.FontSizeSmall),
	}
}

// Update 处理键盘操作：W/Space 浇水，R 重置，Escape 存档并返回菜单
func (p *PlantScene) Update(deltaTime float64) {
	if utils.IsAnyKeyJustPressed(ebiten.KeyW, ebiten.KeySpace) {
		if p.session.Water() {
			log.Printf("[PlantScene] 浇水成功，水量: %d", p.session.Plant().Water)
		}
	}

	if utils.IsAnyKeyJustPressed(ebiten.KeyR) {
		p.session.ResetPlant()
	}

	if utils.IsAnyKeyJustPressed(ebiten.KeyEscape) {
		if err := p.session.ReturnToMenu(); err != nil {
			log.Printf("[PlantScene] Warning: 返回菜单时存档失败: %v", err)
		}
	}
}

// Draw 绘制整个场景
func (p *PlantScene) Draw(screen *ebiten.Image) {
	screen.DrawImage(p.backgroundImage(), nil)

	info := p.session.StageInfo()
	t := p.session.AnimationTime()
	x, y := PlantPosition(t)

	p.drawPlant(screen, info, x, y)

	if p.session.Plant().ShouldShowSparkles(p.session.Stages()) {
		for i := 0; i < config.SparkleCount; i++ {
			sx, sy, clr := Sparkle(i, x, y, t)
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), 3, clr, true)
		}
	}

	p.drawStatsPanel(screen, info)
	p.drawInstructions(screen)

	if msg, ok := GrowthIndicatorText(info); ok {
		utils.DrawText(screen, msg, float64(config.GameWindowWidth)/2-100, config.GrowthIndicatorY, p.smallFace, config.ColorGrowthText)
	}
}

func (p *PlantScene) backgroundImage() *ebiten.Image {
	if p.background != nil {
		return p.background
	}

	bg := ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
	drawRowGradient(bg, func(y, height int) color.RGBA {
		return utils.VerticalGradientColor(config.ColorBackgroundStart, config.ColorBackgroundEnd, y, height)
	})
	vector.DrawFilledRect(bg, 0, config.GameWindowHeight-config.GroundHeight, config.GameWindowWidth, config.GroundHeight, config.ColorGround, false)

	p.background = bg
	return bg
}

func (p *PlantScene) drawPlant(screen *ebiten.Image, info game.StageInfo, x, y float64) {
	scale := p.session.PlantScale(1.0)

	p.drawStage(screen, info.Current.Name, x, y, scale, CurrentStageAlpha(info))

	if ShouldDrawNextStage(info) {
		p.drawStage(screen, info.Next.Name, x, y, scale*info.TransitionProgress, NextStageAlpha(info))
	}
}

// drawStage 以 (x, y) 为中心绘制阶段图片
func (p *PlantScene) drawStage(screen *ebiten.Image, stageName string, x, y, scale, alpha float64) {
	img := p.resourceManager.GetStageImage(stageName)
	if img == nil || scale <= 0 || alpha <= 0 {
		return
	}

	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (p *PlantScene) drawStatsPanel(screen *ebiten.Image, info game.StageInfo) {
	plant := p.session.Plant()

	vector.DrawFilledRect(screen, config.StatsPanelX, config.StatsPanelY, config.StatsPanelWidth, config.StatsPanelHeight, config.ColorPanelBackground, false)
	vector.StrokeRect(screen, config.StatsPanelX, config.StatsPanelY, config.StatsPanelWidth, config.StatsPanelHeight, 2, config.ColorPanelBorder, false)

	const left = config.StatsPanelX + 10
	rowY := config.StatsPanelY + 15.0

	// 水量条
	utils.DrawText(screen, "Water", left, rowY, p.mediumFace, config.ColorStatLabel)
	barX := float32(left + 90)
	barY := float32(rowY + 5)
	vector.DrawFilledRect(screen, barX, barY, config.StatBarWidth, config.StatBarHeight, config.ColorStatTrack, false)
	fill := WaterBarFillWidth(plant.Water, config.StatBarWidth)
	if fill > 0 {
		vector.DrawFilledRect(screen, barX, barY, float32(fill), config.StatBarHeight, WaterBarColor(plant.WaterTier()), false)
	}
	vector.StrokeRect(screen, barX, barY, config.StatBarWidth, config.StatBarHeight, 1, config.ColorPanelBorder, false)
	rowY += 30

	ageText := fmt.Sprintf("Age: %ds (%s)", plant.Age, StageDisplayName(info.Current.Name))
	utils.DrawText(screen, ageText, left, rowY, p.mediumFace, config.ColorAgeText)
	rowY += 25

	happinessText := fmt.Sprintf("Happiness: %d/%d", plant.Happiness, config.MaxHappiness)
	utils.DrawText(screen, happinessText, left, rowY, p.mediumFace, config.ColorHappiness)
}

func (p *PlantScene) drawInstructions(screen *ebiten.Image) {
	x := float32(config.GameWindowWidth/2 - config.InstructionBarWidth/2)
	y := float32(config.GameWindowHeight - 60)

	vector.DrawFilledRect(screen, x, y, config.InstructionBarWidth, config.InstructionBarHeight, color.RGBA{R: 255, G: 255, B: 255, A: 180}, false)
	vector.StrokeRect(screen, x, y, config.InstructionBarWidth, config.InstructionBarHeight, 2, config.ColorPanelBorder, false)

	utils.DrawCenteredText(screen, plantInstructionText,
		float64(config.GameWindowWidth)/2, float64(y)+config.InstructionBarHeight/2,
		1, p.mediumFace, config.ColorTextDark)
}
