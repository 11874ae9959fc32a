package services

import "sync"

// CookingTips is the rotation shown by Tips, in order.
var CookingTips = []string{
	"Always taste your food while cooking and adjust seasoning as needed!",
	"Let meat rest for a few minutes after cooking for juicier results.",
	"Use fresh herbs for the best flavor in your dishes.",
	"Don't overcrowd the pan when sautéing for better browning.",
	"Sharpen your knives regularly for easier and safer food preparation.",
	"Use the right oil for the right cooking temperature.",
	"Read the entire recipe before you start cooking.",
}

// Tips cycles through CookingTips. The position lives for the process only.
type Tips struct {
	mu sync.Mutex
	i  int
}

func NewTips() *Tips {
	return &Tips{}
}

// Current returns the tip at the current position.
func (t *Tips) Current() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return CookingTips[t.i]
}

// Next advances to the following tip, wrapping around, and returns it.
func (t *Tips) Next() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.i = (t.i + 1) % len(CookingTips)
	return CookingTips[t.i]
}
