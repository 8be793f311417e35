package cli

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/mchmarny/pwdctl/pkg/pwned"
	urfave "github.com/urfave/cli/v2"
	"github.com/zalando/go-keyring"
)

var (
	keyringFlag = &urfave.StringFlag{
		Name:  "keyring",
		Usage: "Check a credential stored in the OS keychain instead of prompting (format: service:user)",
	}

	noCacheFlag = &urfave.BoolFlag{
		Name:  "no-cache",
		Usage: "Skip the local range bucket cache and always query the service",
	}

	pwnedCmd = &urfave.Command{
		Name:            "pwned",
		HideHelpCommand: true,
		Usage:           "Check how many times a password appears in known data breaches",
		Flags: []urfave.Flag{
			keyringFlag,
			noCacheFlag,
		},
		Action: cmdPwned,
	}
)

// PwnedResult is the structured output of the pwned command.
type PwnedResult struct {
	Count    int64 `json:"count" yaml:"count"`
	Breached bool  `json:"breached" yaml:"breached"`
}

func cmdPwned(c *urfave.Context) error {
	password, err := getPwnedPassword(c)
	if err != nil {
		return err
	}

	client := newClient(c, !c.Bool(noCacheFlag.Name))
	count, err := client.Count(c.Context, password)
	if err != nil {
		return fmt.Errorf("checking breach exposure: %w", err)
	}

	return encode(&PwnedResult{Count: count, Breached: count > 0})
}

func getPwnedPassword(c *urfave.Context) (string, error) {
	if ref := c.String(keyringFlag.Name); ref != "" {
		service, user, err := parseKeyringRef(ref)
		if err != nil {
			return "", err
		}
		secret, err := keyring.Get(service, user)
		if err != nil {
			return "", fmt.Errorf("reading %s/%s from keychain: %w", service, user, err)
		}
		return secret, nil
	}
	return readPassword("Enter the password to check: ")
}

func parseKeyringRef(ref string) (service, user string, err error) {
	service, user, ok := strings.Cut(ref, ":")
	if !ok || service == "" || user == "" {
		return "", "", fmt.Errorf("invalid keyring reference %q, expected service:user", ref)
	}
	return service, user, nil
}

// newClient builds the breach client from app config, attaching the
// bucket cache unless the caller opted out.
func newClient(c *urfave.Context, useCache bool) *pwned.Client {
	cfg := getConfig(c)
	opts := []pwned.Option{
		pwned.WithEndpoint(cfg.Conf.Endpoint),
		pwned.WithHTTPClient(&http.Client{Timeout: cfg.Conf.Timeout()}),
		pwned.WithUserAgent(appName + "/" + version),
	}
	if useCache && cfg.Cache != nil {
		opts = append(opts, pwned.WithCache(cfg.Cache))
	}
	return pwned.New(opts...)
}
