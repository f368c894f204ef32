package game

// Mode 游戏模式
// 只有两个状态：主菜单和游玩中
type Mode int

const (
	// ModeMenu 主菜单（植物状态不推进）
	ModeMenu Mode = iota
	// ModePlaying 游玩中（每秒推进一次植物状态）
	ModePlaying
)

// String 返回模式名称
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// ModeEvent 触发模式切换的事件
type ModeEvent int

const (
	// EventStart 点击开始按钮或按下空格/回车
	EventStart ModeEvent = iota
	// EventBack 按下 Escape 返回菜单（会触发存档）
	EventBack
)

// String 返回事件名称
func (e ModeEvent) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventBack:
		return "back"
	default:
		return "unknown"
	}
}

// NextMode 计算模式转移
//
// 合法转移：
//   - menu    --start--> playing
//   - playing --back-->  menu
//
// 返回：
//   - Mode: 目标模式（非法转移时为当前模式）
//   - bool: 转移是否合法
func NextMode(current Mode, event ModeEvent) (Mode, bool) {
	switch {
	case current == ModeMenu && event == EventStart:
		return ModePlaying, true
	case current == ModePlaying && event == EventBack:
		return ModeMenu, true
	default:
		return current, false
	}
}
