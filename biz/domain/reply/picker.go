package reply

import (
	"math/rand/v2"
	"sync"
)

// Picker 从n个候选回复中选择一个
type Picker interface {
	Pick(n int) int
}

// RandPicker 基于PCG的随机选择, 相同种子得到相同序列
type RandPicker struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewRandPicker(seed uint64) *RandPicker {
	return &RandPicker{r: rand.New(rand.NewPCG(seed, seed>>32|seed<<32))}
}

func (p *RandPicker) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.r.IntN(n)
}
