package game

import "casino_demo/internal/model"

// Rand - источник случайности для розыгрыша.
// *rand.Rand подходит, в тестах сидируется
type Rand interface {
	Float64() float64
}

// Resolve - чистый розыгрыш ставки по таблице выплат.
// Тянется одно значение r из [0, 1); выигрывает первая ступень,
// чей порог больше r, иначе проигрыш (неявный хвост (1.0, 0)).
// Журнал здесь не трогается: списание и начисление делает вызывающий
func Resolve(bet int, table model.PayoutTable, r Rand) int {
	draw := r.Float64()
	for _, tier := range table {
		if draw < tier.Threshold {
			return bet * tier.Multiplier
		}
	}
	return 0
}
