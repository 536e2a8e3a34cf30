package entity

// Button is an inline button under a chat message. Exactly one of URL and
// CallbackData is set.
type Button struct {
	Text         string `json:"text"`
	URL          string `json:"url,omitempty"`
	CallbackData string `json:"callback_data,omitempty"`
}

// URLButton builds a button that opens a link.
func URLButton(text, url string) Button {
	return Button{Text: text, URL: url}
}

// CallbackButton builds a button that posts data back to the bot.
func CallbackButton(text, data string) Button {
	return Button{Text: text, CallbackData: data}
}

// OutboundMessage is a composed chat message. Text is HTML formatted.
type OutboundMessage struct {
	Text    string     `json:"text"`
	Buttons [][]Button `json:"buttons,omitempty"`
}

// HasURLButton reports whether at least one button opens a link.
func (m OutboundMessage) HasURLButton() bool {
	for _, row := range m.Buttons {
		for _, b := range row {
			if b.URL != "" {
				return true
			}
		}
	}

	return false
}

// InboundUpdate is a chat update reduced to what the command router needs.
type InboundUpdate struct {
	UpdateID       int
	ChatID         string
	SenderID       string
	SenderUsername string
	SenderName     string
	Text           string

	CallbackID   string
	CallbackData string
}

// IsCallback reports whether the update is a button press.
func (u InboundUpdate) IsCallback() bool {
	return u.CallbackID != ""
}
