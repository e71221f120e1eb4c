package config

import "github.com/decker502/invaders/pkg/types"

// PixelScale 像素画每个像素对应的屏幕像素数
const PixelScale = 3.0

// SpriteArt 像素画精灵
// 每一帧由若干行字符串组成，'#' 表示实心像素，其它字符表示透明
type SpriteArt struct {
	Frames [][]string
	Color  [4]uint8 // RGBA
}

// spriteArts 所有精灵的像素画定义
var spriteArts = map[types.SpriteKind]SpriteArt{
	types.SpriteOctopus: {
		Color: [4]uint8{120, 220, 255, 255},
		Frames: [][]string{{
			"....####....",
			".##########.",
			"############",
			"###..##..###",
			"############",
			"...##..##...",
			"..##.##.##..",
			"##........##",
		}},
	},
	types.SpriteCrab: {
		Color: [4]uint8{120, 255, 140, 255},
		Frames: [][]string{{
			"..#.....#..",
			"...#...#...",
			"..#######..",
			".##.###.##.",
			"###########",
			"#.#######.#",
			"#.#.....#.#",
			"...##.##...",
		}},
	},
	types.SpriteSquid: {
		Color: [4]uint8{255, 120, 220, 255},
		Frames: [][]string{{
			"...##...",
			"..####..",
			".######.",
			"##.##.##",
			"########",
			"..#..#..",
			".#.##.#.",
			"#.#..#.#",
		}},
	},
	types.SpriteUfo: {
		Color: [4]uint8{255, 80, 80, 255},
		Frames: [][]string{{
			".....######.....",
			"...##########...",
			"..############..",
			".##.##.##.##.##.",
			"################",
			"..###..##..###..",
			"...#........#...",
		}},
	},
	types.SpriteShip: {
		Color: [4]uint8{90, 255, 90, 255},
		Frames: [][]string{{
			"......#......",
			".....###.....",
			".....###.....",
			".###########.",
			"#############",
			"#############",
			"#############",
			"#############",
		}},
	},
	types.SpriteMissile: {
		Color: [4]uint8{255, 255, 255, 255},
		Frames: [][]string{
			{".#.", "###", ".#.", ".#.", ".#.", "#.#", "#.#"},
			{".#.", "###", ".#.", ".#.", ".#.", ".##", ".#."},
			{".#.", "###", ".#.", ".#.", ".#.", ".#.", ".#."},
			{".#.", "###", ".#.", ".#.", ".#.", "##.", ".#."},
		},
	},
	types.SpriteLaser: {
		Color: [4]uint8{255, 230, 80, 255},
		Frames: [][]string{{
			".#.",
			"#..",
			".#.",
			"..#",
			".#.",
			"#..",
		}},
	},
	types.SpriteShelter: {
		Color: [4]uint8{80, 255, 80, 255},
		Frames: [][]string{{
			"....##############....",
			"...################...",
			"..##################..",
			".####################.",
			"######################",
			"######################",
			"######################",
			"######################",
			"######################",
			"######################",
			"######################",
			"######################",
			"#######........#######",
			"######..........######",
			"#####............#####",
			"#####............#####",
		}},
	},
}

// GetSpriteArt 返回精灵的像素画定义
func GetSpriteArt(kind types.SpriteKind) (SpriteArt, bool) {
	art, ok := spriteArts[kind]
	return art, ok
}

// SpriteSize 返回精灵单帧在屏幕上的尺寸（像素）
// 未定义的精灵返回 0, 0
func SpriteSize(kind types.SpriteKind) (width, height float64) {
	art, ok := spriteArts[kind]
	if !ok || len(art.Frames) == 0 || len(art.Frames[0]) == 0 {
		return 0, 0
	}
	frame := art.Frames[0]
	return float64(len(frame[0])) * PixelScale, float64(len(frame)) * PixelScale
}

// SpriteFrameCount 返回精灵的帧数
func SpriteFrameCount(kind types.SpriteKind) int {
	return len(spriteArts[kind].Frames)
}
