package question

// builtinDeck is the question set compiled into the binary. It is used
// whenever no external deck file is configured.
var builtinDeck = []Question{
	{
		Text:    "What is the output of print(2 + 3 * 4)?",
		Options: []string{"20", "14", "24", "10"},
		Correct: 1,
	},
	{
		Text:    "Which HTML tag is used for a paragraph?",
		Options: []string{"<p>", "<div>", "<span>", "<h1>"},
		Correct: 0,
	},
	{
		Text:    "Which data structure uses LIFO?",
		Options: []string{"Queue", "Stack", "Array", "Graph"},
		Correct: 1,
	},
	{
		Text:    "Which keyword defines a function in Python?",
		Options: []string{"function", "fn", "def", "fun"},
		Correct: 2,
	},
	{
		Text:    "CSS stands for?",
		Options: []string{"Cascading Style Sheets", "Computer Style Sheet", "Creative Styling Syntax", "Colorful Style Sheets"},
		Correct: 0,
	},
}

// DefaultDeck returns a copy of the embedded question set.
func DefaultDeck() []Question {
	deck := make([]Question, len(builtinDeck))
	copy(deck, builtinDeck)
	return deck
}
