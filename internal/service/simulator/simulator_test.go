package simulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateServiceKeywords(t *testing.T) {
	sim := Default()

	assert.Contains(t, sim.Simulate("Plumbing"), "share your location")
	assert.Contains(t, sim.Simulate("Electrical work"), "installation, repair, or maintenance")
	assert.Contains(t, sim.Simulate("House cleaning"), "one-time deep clean")
	assert.Contains(t, sim.Simulate("Tutoring"), "subject and level")
}

// An utterance naming two services resolves to the earlier rule.
func TestSimulatePriorityOrder(t *testing.T) {
	sim := Default()

	got, ok := sim.Match("plumbing and electrical please")
	require.True(t, ok)
	assert.Equal(t, "plumbing", got.Name)

	got, ok = sim.Match("book a cleaning, yes")
	require.True(t, ok)
	assert.Equal(t, "cleaning", got.Name)
}

func TestSimulateCaseInsensitive(t *testing.T) {
	sim := Default()
	assert.Equal(t, sim.Simulate("plumbing issue"), sim.Simulate("PLUMBING issue"))
	assert.Equal(t, sim.Simulate("westlands"), sim.Simulate("WestLands"))
}

func TestSimulateLocationListsProvidersInOrder(t *testing.T) {
	reply := Default().Simulate("I need help in Westlands")

	mike := strings.Index(reply, "Mike Johnson")
	grace := strings.Index(reply, "Grace Wanjiku")
	peter := strings.Index(reply, "Peter Kamau")
	require.True(t, mike >= 0 && grace >= 0 && peter >= 0, "reply lists all providers: %q", reply)
	assert.Less(t, mike, grace)
	assert.Less(t, grace, peter)
}

func TestSimulateProviderCard(t *testing.T) {
	sim := Default()
	assert.Contains(t, sim.Simulate("Mike sounds good"), "KES 1,200/hour")
	assert.Contains(t, sim.Simulate("I want to book"), "Shall I proceed with the booking?")
}

// "yes" gets the booking-details prompt regardless of what came before.
func TestSimulateConfirmMentionsPayment(t *testing.T) {
	sim := Default()
	reply := sim.Simulate("yes")
	assert.Contains(t, reply, "M-Pesa")
	assert.Equal(t, reply, sim.Simulate("please proceed"))
}

func TestSimulateFallback(t *testing.T) {
	sim := Default()
	assert.Equal(t, Fallback, sim.Simulate("banana"))
	assert.Equal(t, Fallback, sim.Simulate("Car repair"))
	assert.Equal(t, Fallback, sim.Simulate("Painting"))
}

func TestSimulateNeverEmpty(t *testing.T) {
	sim := Default()
	inputs := []string{
		"", " ", "ñandú 🚰", strings.Repeat("plumbing ", 5000), "\x00\xff", "यस", "YES YES YES",
	}
	for _, in := range inputs {
		assert.NotEmpty(t, sim.Simulate(in), "input %q", in)
	}
}

func TestNewRejectsInvalidTables(t *testing.T) {
	_, err := New(nil, Fallback)
	assert.ErrorIs(t, err, ErrEmptyRulebook)

	_, err = New(DefaultRules(), "  ")
	assert.ErrorIs(t, err, ErrEmptyFallback)

	_, err = New([]Rule{{Name: "x", Keywords: []string{"x"}}}, Fallback)
	assert.Error(t, err)

	_, err = New([]Rule{{Name: "x", Keywords: []string{" "}, Reply: "r"}}, Fallback)
	assert.Error(t, err)
}

func TestNewNormalizesKeywords(t *testing.T) {
	sim, err := New([]Rule{{Keywords: []string{"  Garden  "}, Reply: "Gardeners nearby"}}, "?")
	require.NoError(t, err)

	rules := sim.Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, "garden", rules[0].Name)
	assert.Equal(t, []string{"garden"}, rules[0].Keywords)
	assert.Equal(t, "Gardeners nearby", sim.Simulate("my GARDEN is overgrown"))
}

func TestRulebookRoundTripKeepsBehaviour(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeRulebook(&buf, Default()))

	sim, err := DecodeRulebook(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default().Simulate("Westlands"), sim.Simulate("Westlands"))
	assert.Equal(t, Fallback, sim.Simulate("banana"))
}

func TestDecodeRulebookDefaultsFallback(t *testing.T) {
	doc := `
rules:
  - name: painting
    keywords: [paint, wall]
    reply: "Our painters can help."
`
	sim, err := DecodeRulebook(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Our painters can help.", sim.Simulate("Painting"))
	assert.Equal(t, Fallback, sim.Simulate("plumbing"))
}

func TestDecodeRulebookEmpty(t *testing.T) {
	_, err := DecodeRulebook(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyRulebook)
}
