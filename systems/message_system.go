package systems

import (
	"fmt"
	"image/color"

	"hebi/config"
)

// MessageType classifies log entries for colouring
type MessageType int

const (
	// MessageTypeNormal is for standard game messages
	MessageTypeNormal MessageType = iota
	// MessageTypeAlert is for important alerts
	MessageTypeAlert
	// MessageTypeSystem is for setup and configuration messages
	MessageTypeSystem
)

// Message stores a log entry with its type
type Message struct {
	Text string
	Type MessageType
}

// Color returns the colour for the message based on its type
func (m Message) Color() color.RGBA {
	switch m.Type {
	case MessageTypeAlert:
		return color.RGBA{0xff, 0x55, 0x55, 0xff}
	case MessageTypeSystem:
		return color.RGBA{0xbd, 0x93, 0xf9, 0xff}
	default:
		return config.TextColor
	}
}

// MessageLog stores game messages
type MessageLog struct {
	Messages    []Message
	MaxMessages int
}

// Global message log instance (singleton)
var globalMessageLog *MessageLog

// GetMessageLog returns the global message log instance
func GetMessageLog() *MessageLog {
	if globalMessageLog == nil {
		globalMessageLog = NewMessageLog()
	}
	return globalMessageLog
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []Message{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a normal message to the log
func (ml *MessageLog) Add(message string) {
	ml.AddTyped(message, MessageTypeNormal)
}

// Addf formats and adds a message of the given type
func (ml *MessageLog) Addf(msgType MessageType, format string, args ...any) {
	ml.AddTyped(fmt.Sprintf(format, args...), msgType)
}

// AddTyped adds a message of the given type
func (ml *MessageLog) AddTyped(message string, msgType MessageType) {
	ml.Messages = append(ml.Messages, Message{Text: message, Type: msgType})

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []Message {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}
	if n < 0 {
		n = 0
	}

	result := make([]Message, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []Message{}
}
