package cli

import (
	"fmt"

	"github.com/mchmarny/pwdctl/pkg/scorer"
	urfave "github.com/urfave/cli/v2"
)

var scoreCmd = &urfave.Command{
	Name:            "score",
	HideHelpCommand: true,
	Usage:           "Analyze password strength",
	Action:          cmdScore,
}

// ScoreResult is the structured output of the score command.
type ScoreResult struct {
	Score  int      `json:"score" yaml:"score"`
	Max    int      `json:"max" yaml:"max"`
	Rating string   `json:"rating" yaml:"rating"`
	Advice []string `json:"advice,omitempty" yaml:"advice,omitempty"`
}

func cmdScore(c *urfave.Context) error {
	password, err := readPassword("Enter the password to analyze: ")
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	s := scorer.Score(password)
	return encode(&ScoreResult{
		Score:  s,
		Max:    scorer.MaxScore,
		Rating: scorer.Rating(s),
		Advice: scorer.Advice(password),
	})
}
