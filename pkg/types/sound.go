package types

// SFX 音效种类
type SFX int

const (
	SFXMissileShoot SFX = iota
	SFXLaserShoot
	SFXExplosion
	SFXHit
	SFXEnter
	SFXSelect
)

// AllSFX 所有音效，按枚举顺序
var AllSFX = []SFX{SFXMissileShoot, SFXLaserShoot, SFXExplosion, SFXHit, SFXEnter, SFXSelect}

func (s SFX) String() string {
	switch s {
	case SFXMissileShoot:
		return "missile_shoot"
	case SFXLaserShoot:
		return "laser_shoot"
	case SFXExplosion:
		return "explosion"
	case SFXHit:
		return "hit"
	case SFXEnter:
		return "enter"
	case SFXSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Music 背景音乐曲目
type Music int

const (
	MusicMenu Music = iota
	MusicPlay
)

func (m Music) String() string {
	switch m {
	case MusicMenu:
		return "menu"
	case MusicPlay:
		return "play"
	default:
		return "unknown"
	}
}
