package rng

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
	"sync"
)

// Source Источник случайных чисел в диапазоне [0, n)
type Source interface {
	Intn(n int) int
}

type cryptoSource struct{}

// NewCryptoSource Источник на crypto/rand
func NewCryptoSource() Source {
	return cryptoSource{}
}

// Intn Паникует при n <= 0 и при отказе crypto/rand
func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("rng: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

type seededSource struct {
	mtx sync.Mutex
	r   *mrand.Rand
}

// NewSeededSource Детерминированный источник, для тестов и воспроизводимых прогонов
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Intn(n int) int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.r.IntN(n)
}
