package iris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageText(t *testing.T) {
	assert.Empty(t, MessageText(0))
	assert.Empty(t, MessageText(12345), "unknown codes resolve to no text")
	assert.Equal(t, "Signalstörung", MessageText(34))
}

func TestParseMessageUnresolvedCode(t *testing.T) {
	changes, err := ParseChanges(`<timetable station='X'>
<s id='a'><m id='m1' t='f' c='0' ts='2508291200'/><m id='m2' t='h' c='34' ts='2508291201'/></s>
</timetable>`, true)
	require.NoError(t, err)
	require.Len(t, changes[0].Messages, 2)

	unresolved := changes[0].Messages[0]
	resolved := changes[0].Messages[1]

	// Both messages survive, only the resolved text differs.
	assert.Equal(t, 0, unresolved.Value)
	assert.Empty(t, unresolved.Text)
	assert.Equal(t, 34, resolved.Value)
	assert.Equal(t, "Signalstörung", resolved.Text)
}

func TestMergeMessages(t *testing.T) {
	stopMessages := []Message{
		{ID: "1", Text: "Signalstörung"},
		{ID: "2", Text: "Bauarbeiten"},
	}
	arrivalMessages := []Message{
		{ID: "3", Text: "Signalstörung"},
	}
	departureMessages := []Message{
		{ID: "4", Text: "Unwetter"},
	}

	merged := MergeMessages(stopMessages, arrivalMessages, departureMessages)

	require.Len(t, merged, 3)
	assert.Equal(t, "3", merged[0].ID, "the later duplicate wins, keeping the first position")
	assert.Equal(t, "Signalstörung", merged[0].Text)
	assert.Equal(t, "Bauarbeiten", merged[1].Text)
	assert.Equal(t, "Unwetter", merged[2].Text)
}

func TestMergeMessagesCollapsesUnresolved(t *testing.T) {
	merged := MergeMessages(
		[]Message{{ID: "1"}, {ID: "2"}},
		nil,
		[]Message{{ID: "3"}},
	)

	require.Len(t, merged, 1)
	assert.Equal(t, "3", merged[0].ID)
}

func TestMergeMessagesEmpty(t *testing.T) {
	assert.Empty(t, MergeMessages(nil, nil, nil))
}
