package types

// SpriteKind 标识实体使用的精灵图
// 渲染端（ebiten / 终端）根据它选择具体的图像或字符
type SpriteKind int

const (
	SpriteNone SpriteKind = iota
	SpriteOctopus
	SpriteCrab
	SpriteSquid
	SpriteUfo
	SpriteShip
	SpriteMissile
	SpriteLaser
	SpriteShelter
)

// SpriteForEnemy 返回敌人类型对应的精灵
func SpriteForEnemy(t EnemyType) SpriteKind {
	switch t {
	case EnemyOctopus:
		return SpriteOctopus
	case EnemyCrab:
		return SpriteCrab
	case EnemySquid:
		return SpriteSquid
	case EnemyUfo:
		return SpriteUfo
	default:
		return SpriteNone
	}
}

// String 返回精灵名称（同时作为资源缓存键）
func (k SpriteKind) String() string {
	switch k {
	case SpriteOctopus:
		return "octopus"
	case SpriteCrab:
		return "crab"
	case SpriteSquid:
		return "squid"
	case SpriteUfo:
		return "ufo"
	case SpriteShip:
		return "ship"
	case SpriteMissile:
		return "missile"
	case SpriteLaser:
		return "laser"
	case SpriteShelter:
		return "shelter"
	default:
		return "none"
	}
}
