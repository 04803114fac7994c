package stats

import "math/rand"

// quotes is the fixed pool served alongside the stats payload.
var quotes = []string{
	"Small steps every day add up to big results.",
	"Done is better than perfect.",
	"The secret of getting ahead is getting started.",
	"Focus on progress, not perfection.",
	"You don't have to be great to start, but you have to start to be great.",
	"A streak is built one day at a time.",
	"Discipline is choosing what you want most over what you want now.",
	"The best way to predict the future is to create it.",
	"Productivity is never an accident.",
	"Finish something today that your future self will thank you for.",
}

// RandomQuote returns one motivational quote chosen uniformly at random.
func RandomQuote() string {
	return quotes[rand.Intn(len(quotes))]
}
