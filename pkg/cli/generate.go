package cli

import (
	"github.com/mchmarny/pwdctl/pkg/generate"
	"github.com/mchmarny/pwdctl/pkg/scorer"
	urfave "github.com/urfave/cli/v2"
)

const generateLengthDefault = 16

var (
	lengthFlag = &urfave.IntFlag{
		Name:  "length",
		Usage: "Length of the generated password",
		Value: generateLengthDefault,
	}

	generateCmd = &urfave.Command{
		Name:            "generate",
		HideHelpCommand: true,
		Usage:           "Generate a strong password suggestion",
		Flags: []urfave.Flag{
			lengthFlag,
		},
		Action: cmdGenerate,
	}
)

// GenerateResult is the structured output of the generate command.
type GenerateResult struct {
	Password string `json:"password" yaml:"password"`
	Score    int    `json:"score" yaml:"score"`
	Rating   string `json:"rating" yaml:"rating"`
}

func cmdGenerate(c *urfave.Context) error {
	p, err := generate.Password(c.Int(lengthFlag.Name))
	if err != nil {
		return err
	}

	s := scorer.Score(p)
	return encode(&GenerateResult{
		Password: p,
		Score:    s,
		Rating:   scorer.Rating(s),
	})
}
