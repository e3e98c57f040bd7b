package console

import (
	"bytes"
	"testing"

	"github.com/Shopify/gowaitlist/internal/signup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUIRendersStatusSlot(t *testing.T) {
	var buf bytes.Buffer
	ui := MakeUI(&buf)
	ui.SetBusy(true)
	ui.SetStatus(signup.MakeSuccessStatus("You're in!"))
	ui.SetStatus(signup.MakeFailureStatus("Couldn't submit."))
	ui.FocusField("email")
	ui.SetCount("42")
	ui.ResetForm()

	assert.Equal(t,
		"✓ You're in!\n✗ Couldn't submit.\n  (check the email you entered)\n  waitlist: 42 people\n",
		buf.String(),
	)
}

func TestNavigatorPrintsLink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MakeNavigator(&buf).Open("mailto:x@y.z"))
	assert.Contains(t, buf.String(), "mailto:x@y.z")
}
