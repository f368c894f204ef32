package game

import (
	"encoding/binary"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioSampleRate 音频采样率
const AudioSampleRate = 48000

// 浇水提示音参数：两个音符的上行琶音，模拟水滴声
var waterChimeNotes = []ChimeNote{
	{Frequency: 880.0, Start: 0.0, Duration: 0.12},
	{Frequency: 1318.5, Start: 0.07, Duration: 0.18},
}

// ChimeNote 合成音中的单个音符
type ChimeNote struct {
	Frequency float64 // 频率（Hz）
	Start     float64 // 起始时间（秒）
	Duration  float64 // 持续时间（秒）
}

// AudioManager 音频管理器
//
// 职责：
//   - 合成并缓存浇水提示音（项目不附带音频文件）
//   - 根据 SettingsManager 的音效开关和音量播放
type AudioManager struct {
	context         *audio.Context
	settingsManager *SettingsManager
	waterChime      []byte // 16 位有符号小端立体声 PCM
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - context: ebiten 音频上下文，可为 nil（静音模式）
//   - sm: 设置管理器，可为 nil（使用默认音量）
func NewAudioManager(context *audio.Context, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		context:         context,
		settingsManager: sm,
		waterChime:      SynthesizeChime(AudioSampleRate, waterChimeNotes),
	}
}

// PlayWaterChime 播放浇水提示音
//
// 返回：
//   - bool: 是否成功播放（音效关闭或静音模式返回 false）
func (am *AudioManager) PlayWaterChime() bool {
	if am.context == nil {
		return false
	}

	volume := DefaultSettings().SoundVolume
	if am.settingsManager != nil {
		settings := am.settingsManager.GetSettings()
		if !settings.SoundEnabled {
			return false
		}
		volume = settings.SoundVolume
	}

	player := am.context.NewPlayerFromBytes(am.waterChime)
	player.SetVolume(volume)
	player.Play()
	log.Printf("[AudioManager] 播放浇水提示音 (volume=%.2f)", volume)
	return true
}

// SynthesizeChime 合成由若干正弦音符组成的短音效
//
// 每个音符带有线性起音和指数衰减包络，混合后按峰值归一化，
// 输出为 16 位有符号小端立体声 PCM（ebiten audio 的默认格式）。
func SynthesizeChime(sampleRate int, notes []ChimeNote) []byte {
	total := 0
	for _, n := range notes {
		end := int((n.Start + n.Duration) * float64(sampleRate))
		total = max(total, end)
	}
	if total == 0 {
		return nil
	}

	mix := make([]float64, total)
	for _, n := range notes {
		start := int(n.Start * float64(sampleRate))
		length := int(n.Duration * float64(sampleRate))
		attack := max(1, length/20)

		for i := 0; i < length && start+i < total; i++ {
			t := float64(i) / float64(sampleRate)
			env := math.Exp(-6 * float64(i) / float64(length))
			if i < attack {
				env *= float64(i) / float64(attack)
			}
			mix[start+i] += math.Sin(2*math.Pi*n.Frequency*t) * env
		}
	}

	peak := 0.0
	for _, v := range mix {
		peak = max(peak, math.Abs(v))
	}
	gain := 0.8
	if peak > 0 {
		gain /= peak
	}

	buf := make([]byte, total*4)
	for i, v := range mix {
		sample := uint16(int16(v * gain * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)   // 左声道
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample) // 右声道
	}
	return buf
}
