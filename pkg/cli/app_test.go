package cli

import (
	"os"
	"testing"

	"github.com/mchmarny/pwdctl/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logging.SetDefaultCLILogger("debug")
	os.Exit(m.Run())
}

func TestNewApp(t *testing.T) {
	app := newApp()
	require.NotNil(t, app)
	assert.Equal(t, appName, app.Name)
	assert.NotNil(t, app.Action)

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.Contains(t, names, "score")
	assert.Contains(t, names, "pwned")
	assert.Contains(t, names, "hash")
	assert.Contains(t, names, "generate")
}

func TestEncode(t *testing.T) {
	outputFormat = formatJSON
	assert.NoError(t, encode(&ScoreResult{Score: 10, Max: 10, Rating: "strong"}))

	outputFormat = formatYAML
	assert.NoError(t, encode(&PwnedResult{Count: 3, Breached: true}))

	outputFormat = formatJSON
}

func TestParseKeyringRef(t *testing.T) {
	service, user, err := parseKeyringRef("github:token")
	require.NoError(t, err)
	assert.Equal(t, "github", service)
	assert.Equal(t, "token", user)

	for _, ref := range []string{"", "github", "github:", ":token", ":"} {
		_, _, err := parseKeyringRef(ref)
		assert.Error(t, err, "ref: %s", ref)
	}
}
