package realtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomKey_Commutative(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"already sorted", "alice@x.com", "bob@x.com", "alice@x.com-bob@x.com"},
		{"reversed", "bob@x.com", "alice@x.com", "alice@x.com-bob@x.com"},
		{"same participant", "alice@x.com", "alice@x.com", "alice@x.com-alice@x.com"},
		{"numeric ids", "2", "10", "10-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoomKey(tt.a, tt.b))
			assert.Equal(t, RoomKey(tt.a, tt.b), RoomKey(tt.b, tt.a), "room key must not depend on argument order")
		})
	}
}
