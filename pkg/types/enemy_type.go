// Package types 定义共享的基础类型
package types

// EnemyType 定义入侵者的类型
type EnemyType int

const (
	EnemyOctopus EnemyType = iota // 章鱼（底部行，10 分）
	EnemyCrab                     // 螃蟹（中间行，20 分）
	EnemySquid                    // 乌贼（顶行，40 分，唯一会发射激光的类型）
	EnemyUfo                      // 飞碟（随机出现的奖励目标）
)

// String 返回敌人类型名称，主要用于日志
func (t EnemyType) String() string {
	switch t {
	case EnemyOctopus:
		return "octopus"
	case EnemyCrab:
		return "crab"
	case EnemySquid:
		return "squid"
	case EnemyUfo:
		return "ufo"
	default:
		return "unknown"
	}
}

// IsValid 检查类型是否为已定义的敌人类型
func (t EnemyType) IsValid() bool {
	return t >= EnemyOctopus && t <= EnemyUfo
}

// RowEnemyType 根据阵列行号返回该行的敌人类型
// 第 0 行为乌贼，第 1-2 行为螃蟹，其余为章鱼
func RowEnemyType(row int) EnemyType {
	switch {
	case row > 2:
		return EnemyOctopus
	case row > 0:
		return EnemyCrab
	default:
		return EnemySquid
	}
}
