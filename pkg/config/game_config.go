package config

// 游戏常量
// 本文件集中定义不需要由调优文件覆盖的固定参数（速度、分值、文件路径等）

// 窗口
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 960
	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 720
	// WindowTitle 窗口标题
	WindowTitle = "Interstellar Assault"
)

// 玩家
const (
	ShipSpeed     = 350.0 // 飞船水平移动速度（像素/秒）
	MissileSpeed  = 450.0 // 导弹上升速度（像素/秒）
	FireDelay     = 0.3   // 两次开火之间的最短间隔（秒）
	TimeToRecover = 2.5   // 被击中后的恢复（无敌）时长（秒）
	MaxMissiles   = 1     // 同时存在的导弹数量上限

	// PlayAreaMarginFactor 可移动区域左/上边距相对飞船尺寸的比例
	PlayAreaMarginFactor = 0.6
	// PlayAreaBottomFactor 可移动区域底边相对屏幕高度的比例
	PlayAreaBottomFactor = 0.9
	// StickDeadzone 手柄摇杆死区
	StickDeadzone = 0.25
)

// 掩体
const (
	NumShelters          = 4     // 掩体数量
	ShelterOffsetY       = 110.0 // 掩体相对玩家的垂直偏移
	ShelterTextureStates = 10    // 掩体损伤贴图状态数
	ShelterLives         = 10    // 掩体可承受的命中次数
)

// 敌人
const (
	EnemySpeedInc = 3.5   // 每击落一个敌人后阵列速度的增量
	EnemyUfoSpeed = 200.0 // 飞碟水平速度（像素/秒）
	LaserSpeed    = 200.0 // 敌方激光下落速度（像素/秒）

	// MaxRosterSize 阵列容量上限（行数 × 每行数量）
	MaxRosterSize = 220
)

// 碰撞盒缩放系数
const (
	EnemyBoxScale   = 0.9
	LaserBoxScale   = 0.75
	MissileBoxScale = 0.75
	PlayerBoxScale  = 1.0
	ShelterBoxScale = 0.95
)

// 分值
const (
	OctopusPoints    = 10
	CrabPoints       = 20
	SquidPoints      = 40
	WaveFinishPoints = 1000 // 清空一波敌人的奖励
)

// UfoPoints 击落飞碟时随机选取的分值
var UfoPoints = [...]int{50, 100, 150, 300}

// 游戏模式
const (
	GameOverTransitionTime = 5.0  // 游戏结束后进入输入名字前的等待时间（秒）
	GameOverBlinkInterval  = 0.5  // GAME OVER 文字闪烁间隔（秒）
	ScrollSpeed            = 50.0 // 背景滚动基础速度
	BackgroundLayers       = 2    // 背景视差层数
)

// 分数
const (
	// ScoreFilePath 默认分数文件路径
	ScoreFilePath = "data/scores.dat"
	// EncryptKey 分数文件的异或密钥
	EncryptKey = "=ami%#Ip,Mo@l+sMI]/t$j$`KDwzbQ"
	// MaxScoresSave 最多保存的分数条数
	MaxScoresSave = 100
	// MaxNameLength 玩家名字最大长度
	MaxNameLength = 8
)

// 振动反馈参数（持续秒数、强/弱马达幅度）
const (
	EnemyKilledVibrateSeconds = 0.2
	EnemyKilledVibrateStrong  = 0.02
	EnemyKilledVibrateWeak    = 0.02
	PlayerHitVibrateSeconds   = 0.2
	PlayerHitVibrateStrong    = 0.1
	PlayerHitVibrateWeak      = 0.1
)

// 教程文本
const (
	TutorialControllerGuide = "MOVEMENT\nYOU CAN MOVE LEFT OR RIGHT USING\nTHE LEFT JOYSTICK OF YOUR CONTROLLER\n\nSHOOTING\nTO SHOOT YOU CAN EITHER PRESS THE A BUTTON\nOR YOU CAN PULL THE RIGHT TRIGGER\n\nMENUS\nJUST MOVE YOUR LEFT JOYSTICK, OR DPAD, UP OR\nDOWN TO MOVE THROUGH THE BUTTONS AND\nPRESS A TO ACTIVATE THEM\n\nSCORE MENU\nMOVE YOUR JOYSTICK UP OR DOWN TO\nSCROLL THROUGH THE SCORES"
	TutorialKeyboardGuide   = "MOVEMENT\nYOU CAN MOVE LEFT OR RIGHT USING\nTHE A,D,LEFT OR RIGHT ARROW KEYS\n\nSHOOTING\nTO SHOOT PRESS SPACE\n\nMENUS\nUSE THE ARROW KEYS UP OR DOWN TO MOVE\nTHROUGH THE BUTTONS AND PRESS ENTER\nTO ACTIVATE THEM\n\nSCORE MENU\nPRESS YOUR W,S,UP OR DOWN ARROW KEYS\nTO SCROLL THROUGH THE SCORES"
)
