package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMessageRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       ChatMessageRequest
		wantField string
	}{
		{
			name: "valid text message",
			req:  ChatMessageRequest{SessionID: "sess-1", Text: "book_flight"},
		},
		{
			name: "valid without session id",
			req:  ChatMessageRequest{Text: "hello"},
		},
		{
			name: "valid structured passengers",
			req:  ChatMessageRequest{SessionID: "sess-1", Passengers: &PassengersDTO{Adults: 1}},
		},
		{
			name:      "neither text nor passengers",
			req:       ChatMessageRequest{SessionID: "sess-1"},
			wantField: "text",
		},
		{
			name:      "both text and passengers",
			req:       ChatMessageRequest{SessionID: "sess-1", Text: "two", Passengers: &PassengersDTO{Adults: 2}},
			wantField: "text",
		},
		{
			name:      "text too long",
			req:       ChatMessageRequest{SessionID: "sess-1", Text: strings.Repeat("x", 501)},
			wantField: "text",
		},
		{
			name:      "session id with illegal characters",
			req:       ChatMessageRequest{SessionID: "sess 1!", Text: "hello"},
			wantField: "sessionId",
		},
		{
			name:      "session id too long",
			req:       ChatMessageRequest{SessionID: strings.Repeat("a", 129), Text: "hello"},
			wantField: "sessionId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			var errs *ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}

func TestChatOffersRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     ChatOffersRequest
		wantErr bool
	}{
		{name: "valid", req: ChatOffersRequest{SessionID: "sess-1"}},
		{name: "uuid session id", req: ChatOffersRequest{SessionID: "0b26f8f2-9f3e-4f6a-8f07-3a1b2c4d5e6f"}},
		{name: "missing session id", req: ChatOffersRequest{}, wantErr: true},
		{name: "illegal characters", req: ChatOffersRequest{SessionID: "sess/1"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestChatMessageRequest_ToTurnInput(t *testing.T) {
	t.Run("text only", func(t *testing.T) {
		req := ChatMessageRequest{Text: "Nairobi"}
		input := req.ToTurnInput()

		assert.Equal(t, "Nairobi", input.Text)
		assert.Nil(t, input.Passengers)
		assert.False(t, input.IsStructured())
	})

	t.Run("passengers payload", func(t *testing.T) {
		req := ChatMessageRequest{Passengers: &PassengersDTO{Adults: 2, Children: 1, Infants: 1}}
		input := req.ToTurnInput()

		require.NotNil(t, input.Passengers)
		assert.Equal(t, 2, input.Passengers.Adults)
		assert.Equal(t, 1, input.Passengers.Children)
		assert.Equal(t, 1, input.Passengers.Infants)
		assert.True(t, input.IsStructured())
	})
}

func TestValidationErrors(t *testing.T) {
	errs := &ValidationErrors{}
	assert.False(t, errs.HasErrors())
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add("text", "text is required")
	errs.Add("sessionId", "sessionId is malformed")

	assert.True(t, errs.HasErrors())
	assert.Equal(t, "text is required", errs.Error())
	assert.Equal(t, map[string]string{
		"text":      "text is required",
		"sessionId": "sessionId is malformed",
	}, errs.ToMap())
}
