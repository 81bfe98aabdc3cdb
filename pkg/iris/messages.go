package iris

import (
	"strconv"
)

func parseMessages(elements []messageElement) []Message {
	var messages []Message
	for _, element := range elements {
		messages = append(messages, parseMessage(element))
	}

	return messages
}

func parseMessage(element messageElement) Message {
	value, _ := strconv.Atoi(element.Code)
	priority, _ := strconv.Atoi(element.Priority)

	// Messages are decoration, a malformed timestamp stays zero.
	timeSent, _ := parseFeedTime(element.TimeSent)

	return Message{
		ID:       element.ID,
		Type:     element.Type,
		Value:    value,
		Text:     MessageText(value),
		Category: element.Category,
		Priority: priority,
		TimeSent: timeSent,
	}
}

// MessageText resolves a numeric message code to its description. Code zero
// and unknown codes resolve to the empty string.
func MessageText(value int) string {
	if value == 0 {
		return ""
	}

	return messageCodes[value]
}

// MergeMessages combines the stop-level, arrival and departure message lists
// into one, deduplicated by resolved text. Later entries win on collision
// while the first occurrence keeps its position.
func MergeMessages(stopMessages []Message, arrivalMessages []Message, departureMessages []Message) []Message {
	var merged []Message
	position := map[string]int{}

	for _, list := range [][]Message{stopMessages, arrivalMessages, departureMessages} {
		for _, message := range list {
			if index, seen := position[message.Text]; seen {
				merged[index] = message
			} else {
				position[message.Text] = len(merged)
				merged = append(merged, message)
			}
		}
	}

	return merged
}
