package game

import "testing"

func TestNextMode(t *testing.T) {
	tests := []struct {
		name    string
		current Mode
		event   ModeEvent
		want    Mode
		wantOK  bool
	}{
		{"菜单开始", ModeMenu, EventStart, ModePlaying, true},
		{"游玩返回", ModePlaying, EventBack, ModeMenu, true},
		{"菜单中返回无效", ModeMenu, EventBack, ModeMenu, false},
		{"游玩中开始无效", ModePlaying, EventStart, ModePlaying, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextMode(tt.current, tt.event)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NextMode(%s, %s) = (%s, %v), 期望 (%s, %v)", tt.current, tt.event, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if ModeMenu.String() != "menu" || ModePlaying.String() != "playing" || Mode(9).String() != "unknown" {
		t.Error("Mode.String() 返回值不正确")
	}
	if EventStart.String() != "start" || EventBack.String() != "back" {
		t.Error("ModeEvent.String() 返回值不正确")
	}
}
