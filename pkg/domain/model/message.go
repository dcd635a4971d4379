package model

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/mmhook/pkg/domain"
)

// Message represents the JSON payload accepted by an incoming webhook.
// A nil field is unset and never appears in the serialized form.
// See https://developers.mattermost.com/integrate/webhooks/incoming/#parameters
type Message struct {
	Text        *string `json:"text,omitempty"`
	Channel     *string `json:"channel,omitempty"`
	Username    *string `json:"username,omitempty"`
	IconURL     *string `json:"icon_url,omitempty"`
	IconEmoji   *string `json:"icon_emoji,omitempty"`
	Attachments *string `json:"attachments,omitempty"` // pre-formatted by the caller
	Type        *string `json:"type,omitempty"`
	Props       *string `json:"props,omitempty"` // pre-formatted by the caller
}

// NewMessage returns a Message with every field unset
func NewMessage() Message {
	return Message{}
}

// String returns a pointer to s for setting Message fields
func String(s string) *string {
	return &s
}

var encodeJSON = func(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	// Encoder always terminates the value with a newline
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// unescapeLineSeparators writes U+2028 and U+2029 literally; encoding/json
// escapes them even with HTML escaping disabled. Every backslash in encoder
// output starts an escape sequence, so escapes are walked in pairs.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if data[i+1] == 'u' && i+6 <= len(data) {
			switch string(data[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

// ToJSON serializes the message into the compact JSON string a webhook
// accepts. Keys follow field declaration order.
func (m Message) ToJSON() (string, error) {
	data, err := encodeJSON(m)
	if err != nil {
		return "", domain.ErrSerialization.Wrap(err)
	}
	return string(data), nil
}
