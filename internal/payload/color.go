package payload

import (
	"image/color"
	"math/rand"
	"strings"
)

// namedColors 是决策引擎会下发的颜色名称表
// 原始载荷混用十六进制("#00FF00")和 CSS 颜色名("gold"), 两种都要支持
var namedColors = map[string]color.RGBA{
	"white":  {0xFF, 0xFF, 0xFF, 0xFF},
	"black":  {0x00, 0x00, 0x00, 0xFF},
	"red":    {0xFF, 0x00, 0x00, 0xFF},
	"green":  {0x00, 0x80, 0x00, 0xFF},
	"blue":   {0x00, 0x00, 0xFF, 0xFF},
	"yellow": {0xFF, 0xFF, 0x00, 0xFF},
	"orange": {0xFF, 0xA5, 0x00, 0xFF},
	"gold":   {0xFF, 0xD7, 0x00, 0xFF},
	"purple": {0x80, 0x00, 0x80, 0xFF},
	"pink":   {0xFF, 0xC0, 0xCB, 0xFF},
	"silver": {0xC0, 0xC0, 0xC0, 0xFF},
}

// ParseColor 解析单个颜色值
//
// 支持的格式:
//   - 短十六进制: "#0f0"
//   - 长十六进制: "#00FF00"
//   - 颜色名: "gold"、"red" 等(见 namedColors)
//
// 无法解析时返回白色。颜色错误属于"视觉结果未定义", 不是程序错误
func ParseColor(s string) color.RGBA {
	s = strings.TrimSpace(s)
	if s == "" {
		return namedColors["white"]
	}

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3:
			r := hexNibble(hex[0])
			g := hexNibble(hex[1])
			b := hexNibble(hex[2])
			// 短格式每位重复一次: "0f0" → 00FF00
			return color.RGBA{r | r<<4, g | g<<4, b | b<<4, 0xFF}
		case 6:
			r := hexNibble(hex[0])<<4 | hexNibble(hex[1])
			g := hexNibble(hex[2])<<4 | hexNibble(hex[3])
			b := hexNibble(hex[4])<<4 | hexNibble(hex[5])
			return color.RGBA{r, g, b, 0xFF}
		default:
			return namedColors["white"]
		}
	}

	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c
	}
	return namedColors["white"]
}

// hexNibble 解析单个十六进制字符, 非法字符按 0 处理
func hexNibble(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	default:
		return 0
	}
}

// RandomColor 从颜色集合中随机取一个并解析
// 集合为空时返回白色(无颜色变化, 非致命)
func RandomColor(colors []string) color.RGBA {
	if len(colors) == 0 {
		return namedColors["white"]
	}
	return ParseColor(colors[rand.Intn(len(colors))])
}

// ColorAt 按下标循环取色并解析, 用于烟花按发射序号轮换颜色
func ColorAt(colors []string, index int) color.RGBA {
	if len(colors) == 0 {
		return namedColors["white"]
	}
	return ParseColor(colors[index%len(colors)])
}
