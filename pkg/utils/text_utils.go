package utils

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DrawText 以指定缩放和对齐方式绘制文本
// 参数:
//   - screen: 绘制目标
//   - face: 字体
//   - str: 文本，可包含换行
//   - x, y: 锚点（对齐方式决定锚点位于文本的左、中或右侧）
//   - scale: 缩放倍数，位图字体放大时使用
//   - align: 水平对齐
//   - clr: 文字颜色
func DrawText(screen *ebiten.Image, face text.Face, str string, x, y, scale float64, align text.Align, clr color.Color) {
	if str == "" || face == nil {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.LineSpacing = LineHeight(face)
	text.Draw(screen, str, face, op)
}

// LineHeight 单行高度（未缩放）
func LineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap + 2
}

// MeasureText 测量文本在 scale 缩放下的宽度
func MeasureText(str string, face text.Face, scale float64) float64 {
	if str == "" || face == nil {
		return 0
	}
	width, _ := text.Measure(str, face, LineHeight(face))
	return width * scale
}

// WrapText 将文本按单词换行，使每行宽度不超过 maxWidth
// 参数:
//   - textStr: 要换行的文本，已有的换行符会保留
//   - face: 字体
//   - scale: 绘制缩放
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组
//
// 单个单词超宽时独占一行，不再拆分
func WrapText(textStr string, face text.Face, scale, maxWidth float64) []string {
	if textStr == "" || face == nil || maxWidth <= 0 {
		return []string{textStr}
	}

	var lines []string
	for _, paragraph := range strings.Split(textStr, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		current := words[0]
		for _, w := range words[1:] {
			candidate := current + " " + w
			if MeasureText(candidate, face, scale) > maxWidth {
				lines = append(lines, current)
				current = w
				continue
			}
			current = candidate
		}
		lines = append(lines, current)
	}
	return lines
}
