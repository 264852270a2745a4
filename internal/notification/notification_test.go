package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestType_IsValid(t *testing.T) {
	tests := []struct {
		name string
		t    Type
		want bool
	}{
		{"critical", TypeCritical, true},
		{"question", TypeQuestion, true},
		{"normal", TypeNormal, true},
		{"relentless", TypeRelentless, true},
		{"information", TypeInformation, true},
		{"empty", Type(""), false},
		{"unknown", Type("promo"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.t.IsValid())
		})
	}
}

func TestParseType(t *testing.T) {
	parsed, err := ParseType("question")
	require.NoError(t, err)
	assert.Equal(t, TypeQuestion, parsed)

	_, err = ParseType("promo")
	assert.Error(t, err)
}

func TestNotification_Validate(t *testing.T) {
	tests := []struct {
		name    string
		n       Notification
		wantErr bool
	}{
		{"valid", Notification{ID: "n1", Type: TypeNormal}, false},
		{"missing id", Notification{Type: TypeNormal}, true},
		{"bad type", Notification{ID: "n1", Type: Type("promo")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.n.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsLocalLink(t *testing.T) {
	assert.True(t, IsLocalLink("abp:day1"))
	assert.False(t, IsLocalLink("https://adblockplus.org"))
	assert.False(t, IsLocalLink(""))
}
