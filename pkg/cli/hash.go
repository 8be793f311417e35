package cli

import (
	"fmt"

	"github.com/mchmarny/pwdctl/pkg/hash"
	urfave "github.com/urfave/cli/v2"
)

var hashCmd = &urfave.Command{
	Name:            "hash",
	HideHelpCommand: true,
	Usage:           "Hash a password for storage (bcrypt)",
	Action:          cmdHash,
}

// HashResult is the structured output of the hash command.
type HashResult struct {
	Hash string `json:"hash" yaml:"hash"`
}

func cmdHash(c *urfave.Context) error {
	password, err := readPassword("Enter the password to hash: ")
	if err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	h, err := hash.Password(password)
	if err != nil {
		return err
	}

	return encode(&HashResult{Hash: h})
}
