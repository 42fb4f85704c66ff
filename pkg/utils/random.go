package utils

import (
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"
)

// SeedFromString 将任意字符串散列为随机数种子
// 同一字符串总是得到同一种子，便于复现一局游戏
func SeedFromString(s string) int64 {
	return int64(xxhash.Sum64String(s))
}

// NewRand 创建随机数生成器
// seed 为空时使用当前时间
func NewRand(seed string) *rand.Rand {
	if seed == "" {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(SeedFromString(seed)))
}

// RandRange 返回 [min, max) 内的均匀随机数
func RandRange(rng *rand.Rand, min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + rng.Float64()*(max-min)
}
