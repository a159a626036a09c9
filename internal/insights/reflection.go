package insights

import "github.com/shopspring/decimal"

// Question is one of the Kakeibo reflection prompts.
type Question struct {
	Question string `json:"question"`
	Prompt   string `json:"prompt"`
}

// Reflection returns the four monthly Kakeibo questions. The spending question
// quotes the month's total.
func Reflection(totalSpent decimal.Decimal) []Question {
	return []Question{
		{Question: "How much money do you have?", Prompt: "Reflect on your overall financial position and savings."},
		{Question: "How much would you like to save?", Prompt: "Consider your savings goals for this month and beyond."},
		{Question: "How much are you spending?", Prompt: "This month's spending: " + totalSpent.StringFixed(2)},
		{Question: "How can you improve?", Prompt: "Reflect on your spending habits and areas for improvement."},
	}
}
