package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/plantbuddy/pkg/config"
	"github.com/decker502/plantbuddy/pkg/game"
	"github.com/decker502/plantbuddy/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	menuTitleText       = "Virtual Plant Buddy"
	menuSubtitleText    = "Watch your plant grow with love and care"
	menuButtonText      = "Start Growing!"
	menuInstructionText = "Click the button or press SPACE to begin your plant journey"
)

// MainMenuScene represents the main menu screen of the game.
// It displays when the game starts and lets the player begin caring for the plant.
type MainMenuScene struct {
	session *game.Session
	button  *buttonHover

	titleFace       *text.GoTextFace
	subtitleFace    *text.GoTextFace
	buttonFace      *text.GoTextFace
	instructionFace *text.GoTextFace
}

// NewMainMenuScene creates and returns a new MainMenuScene instance.
//
// Parameters:
//   - session: The game session the menu starts.
//   - rm: The ResourceManager used to load fonts. May be nil (text is skipped).
func NewMainMenuScene(session *game.Session, rm *game.ResourceManager) *MainMenuScene {
	scene := &MainMenuScene{
		session:         session,
		button:          newButtonHover(),
		titleFace:       loadFace(rm, config.FontSizeTitle),
		subtitleFace:    loadFace(rm, config.FontSizeSubtitle),
		buttonFace:      loadFace(rm, config.FontSizeLarge),
		instructionFace: loadFace(rm, config.FontSizeInstruction),
	}
	log.Printf("[MainMenuScene] Initialized")
	return scene
}

// Update handles hover, click and keyboard input.
func (m *MainMenuScene) Update(deltaTime float64) {
	buttonRect := PlayButtonRect()

	px, py := utils.GetPointerPosition()
	m.button.SetHovered(buttonRect.Contains(float64(px), float64(py)))
	m.button.Update(deltaTime)

	if clicked, cx, cy := utils.IsJustTouchedOrClicked(); clicked {
		if buttonRect.Contains(float64(cx), float64(cy)) {
			m.start("click")
			return
		}
	}

	if utils.IsAnyKeyJustPressed(ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyNumpadEnter) {
		m.start("keyboard")
	}
}

func (m *MainMenuScene) start(source string) {
	if m.session.StartPlaying() {
		log.Printf("[MainMenuScene] 开始游戏 (%s)", source)
	}
}

// Draw renders the animated background, particles, texts and the play button.
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	t := m.session.AnimationTime()

	drawRowGradient(screen, func(y, height int) color.RGBA {
		return utils.WaveGradientColor(y, height, t)
	})

	for i := 0; i < config.MenuParticleCount; i++ {
		x, y, radius, clr := MenuParticle(i, t)
		if radius <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), clr, true)
	}

	centerX := float64(config.GameWindowWidth) / 2
	centerY := float64(config.GameWindowHeight) / 2

	// 标题阴影
	utils.DrawCenteredText(screen, menuTitleText, centerX+3, centerY-100+3, 1, m.titleFace, config.ColorTitleShadow)
	utils.DrawCenteredText(screen, menuTitleText, centerX, centerY-100, 1, m.titleFace, config.ColorTitle)

	utils.DrawCenteredText(screen, menuSubtitleText, centerX, centerY-50, SubtitleScale(t), m.subtitleFace, config.ColorSubtitle)

	m.drawPlayButton(screen)

	utils.DrawCenteredText(screen, menuInstructionText, centerX, float64(config.GameWindowHeight)-50, 1, m.instructionFace, config.ColorHint)
}

func (m *MainMenuScene) drawPlayButton(screen *ebiten.Image) {
	r := ScaledButtonRect(PlayButtonRect(), m.button.Scale())

	fill := config.ColorButtonNormal
	if m.button.IsHovered() {
		fill = config.ColorButtonHover
	}

	vector.DrawFilledRect(screen, float32(r.X+3), float32(r.Y+3), float32(r.W), float32(r.H), config.ColorButtonShadow, false)
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 3, config.ColorTextLight, false)

	utils.DrawCenteredText(screen, menuButtonText, r.X+r.W/2, r.Y+r.H/2, 1, m.buttonFace, config.ColorTextLight)
}
