package luck_core

import "unicode/utf16"

// HashSeed 将输入串折叠为一个非负整数种子
// 逐位公式 h = c + ((h<<5) - h) 与 Web 端 charCodeAt 循环保持二进制一致：
// 按 UTF-16 编码单元迭代，移位按 32 位截断，减法与加法不截断。
// 改用 fnv 之类的散列会破坏与既有线上结果的种子对齐，所以保留原公式
func HashSeed(s string) int {
	var h int64
	for _, c := range utf16.Encode([]rune(s)) {
		h = int64(c) + (int64(int32(h)<<5) - h)
	}
	if h < 0 {
		h = -h
	}
	return int(h)
}

// charCodeSum 累加字符串的 UTF-16 编码单元值
func charCodeSum(s string) int {
	sum := 0
	for _, c := range utf16.Encode([]rune(s)) {
		sum += int(c)
	}
	return sum
}

// utf16Len 字符串的 UTF-16 编码单元长度（与 JS 的 string.length 一致）
func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}
