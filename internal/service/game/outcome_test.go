package game

import (
	"casino_demo/internal/config/env"
	"math/rand"
	"testing"
)

// fixedRand - источник с заранее известным значением
type fixedRand struct {
	v float64
}

func (f fixedRand) Float64() float64 {
	return f.v
}

func TestResolveTiers(t *testing.T) {
	payoutCfg, err := env.NewPayoutConfigFromYAML("no_such_config.yaml")
	if err != nil {
		t.Fatal(err)
	}
	table := payoutCfg.Table()

	cases := []struct {
		draw float64
		want int
	}{
		{0.00, 200},  // 2x
		{0.29, 200},  // верхняя граница первой ступени
		{0.30, 300},  // 3x
		{0.49, 300},
		{0.50, 500},  // 5x
		{0.59, 500},
		{0.60, 1000}, // 10x
		{0.64, 1000},
		{0.65, 0}, // хвост - проигрыш
		{0.99, 0},
	}

	for _, tc := range cases {
		got := Resolve(100, table, fixedRand{v: tc.draw})
		if got != tc.want {
			t.Fatalf("Resolve(100, r=%v)=%d, want %d", tc.draw, got, tc.want)
		}
	}
}

func TestResolveReturnsMultipleOfBet(t *testing.T) {
	payoutCfg, _ := env.NewPayoutConfigFromYAML("no_such_config.yaml")
	table := payoutCfg.Table()
	allowed := map[int]bool{0: true, 2: true, 3: true, 5: true, 10: true}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		win := Resolve(7, table, rng)
		if win%7 != 0 || !allowed[win/7] {
			t.Fatalf("win=%d is not an allowed multiple of 7", win)
		}
	}
}

// Масса проигрыша у таблицы по умолчанию - 0.35
func TestResolveLossMass(t *testing.T) {
	payoutCfg, _ := env.NewPayoutConfigFromYAML("no_such_config.yaml")
	table := payoutCfg.Table()

	rng := rand.New(rand.NewSource(42))
	const trials = 200000
	losses := 0
	for i := 0; i < trials; i++ {
		if Resolve(10, table, rng) == 0 {
			losses++
		}
	}

	got := float64(losses) / float64(trials)
	if got < 0.34 || got > 0.36 {
		t.Fatalf("loss mass=%v, want ~0.35", got)
	}
}
