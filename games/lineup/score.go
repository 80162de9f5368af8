/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package lineup

// GuessSet maps positions to raw, unsanitized guesses. Missing or empty
// entries count as no guess.
type GuessSet map[Position]string

// GuessResult is the outcome of one position's guess.
type GuessResult struct {
	Guess      string  `json:"guess"`
	Actual     string  `json:"actual"`
	Correct    bool    `json:"correct"`
	Message    string  `json:"message"`
	Similarity float64 `json:"similarity"`
}

// ScoreSummary aggregates the results for every position in a roster.
type ScoreSummary struct {
	Results      map[Position]GuessResult `json:"results"`
	CorrectCount int                      `json:"correct_count"`
	NumPositions int                      `json:"num_positions"`
	Percentage   float64                  `json:"percentage"`
}

// NoGuessMessage is the result message for a position left blank.
const NoGuessMessage = "No guess made"

const (
	msgCorrect   = "Correct!"
	msgClose     = "Correct (close match)!"
	msgIncorrect = "Incorrect. The correct answer is: "
)

// Score evaluates guesses against the roster. The percentage is the share of
// roster positions answered correctly, and is zero if no guesses were made.
func Score(guesses GuessSet, roster Roster) ScoreSummary {
	summary := ScoreSummary{
		Results:      make(map[Position]GuessResult, len(roster)),
		NumPositions: len(roster),
	}

	attempts := 0

	for _, p := range Positions {
		actual, ok := roster[p]
		if !ok {
			continue
		}

		raw := guesses[p]
		if raw == "" {
			summary.Results[p] = GuessResult{
				Actual:  actual,
				Message: NoGuessMessage,
			}
			continue
		}

		attempts++

		guess := Sanitize(raw)
		correct, similarity := Match(guess, actual)

		result := GuessResult{
			Guess:      guess,
			Actual:     actual,
			Correct:    correct,
			Similarity: similarity,
		}

		switch {
		case correct && similarity == 1:
			result.Message = msgCorrect
		case correct:
			result.Message = msgClose
		default:
			result.Message = msgIncorrect + actual
		}

		if correct {
			summary.CorrectCount++
		}

		summary.Results[p] = result
	}

	if attempts > 0 && summary.NumPositions > 0 {
		summary.Percentage = float64(summary.CorrectCount) / float64(summary.NumPositions) * 100
	}

	return summary
}
