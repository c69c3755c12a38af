package adapters

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleNotifier(t *testing.T) {
	var out bytes.Buffer
	notifier := NewConsoleNotifier(&out)
	notifier.Warn("ghost-package not installed, keeping original entry")
	notifier.Info("requirements.txt updated with installed versions")

	assert.Equal(t,
		"warning: ghost-package not installed, keeping original entry\nrequirements.txt updated with installed versions\n",
		out.String())
}
