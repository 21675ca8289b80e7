package lookup

import (
	"errors"
	"testing"

	"github.com/at-ishikawa/wordlens/internal/dictionary"
	"github.com/stretchr/testify/assert"
)

func TestReduce(t *testing.T) {
	hello := &dictionary.Entry{Word: "hello"}
	world := &dictionary.Entry{Word: "world"}
	transportErr := dictionary.NewTransportError("hello", 500, errors.New("boom"))

	tests := []struct {
		name  string
		state State
		event Event
		want  State
	}{
		{
			name:  "submitted clears previous entry",
			state: State{Query: "hello", Seq: 1, Entry: hello},
			event: Submitted{Query: "world", Seq: 2},
			want:  State{Query: "world", Seq: 2, Loading: true},
		},
		{
			name:  "submitted clears previous error",
			state: State{Query: "qwzx", Seq: 1, Err: dictionary.NewNotFoundError("qwzx", 404)},
			event: Submitted{Query: "hello", Seq: 2},
			want:  State{Query: "hello", Seq: 2, Loading: true},
		},
		{
			name:  "settled with entry",
			state: State{Query: "world", Seq: 2, Loading: true},
			event: Settled{Seq: 2, Entry: world},
			want:  State{Query: "world", Seq: 2, Entry: world},
		},
		{
			name:  "settled with error",
			state: State{Query: "hello", Seq: 3, Loading: true},
			event: Settled{Seq: 3, Err: transportErr},
			want:  State{Query: "hello", Seq: 3, Err: transportErr},
		},
		{
			name:  "stale settled is ignored",
			state: State{Query: "world", Seq: 2, Loading: true},
			event: Settled{Seq: 1, Entry: hello},
			want:  State{Query: "world", Seq: 2, Loading: true},
		},
		{
			name:  "settled after settlement is ignored",
			state: State{Query: "world", Seq: 2, Entry: world},
			event: Settled{Seq: 2, Err: transportErr},
			want:  State{Query: "world", Seq: 2, Entry: world},
		},
		{
			name:  "rejected clears entry and loading",
			state: State{Query: "hello", Seq: 1, Loading: true},
			event: Rejected{Query: " ", Seq: 2, Err: dictionary.NewValidationError(" ")},
			want:  State{Query: " ", Seq: 2, Err: dictionary.NewValidationError(" ")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reduce(tt.state, tt.event)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReduce_AtMostOnePanelActive(t *testing.T) {
	events := []Event{
		Submitted{Query: "hello", Seq: 1},
		Settled{Seq: 1, Entry: &dictionary.Entry{Word: "hello"}},
		Submitted{Query: "qwzx", Seq: 2},
		Settled{Seq: 2, Err: dictionary.NewNotFoundError("qwzx", 404)},
		Rejected{Query: "", Seq: 3, Err: dictionary.NewValidationError("")},
		Submitted{Query: "world", Seq: 4},
		Settled{Seq: 3, Entry: &dictionary.Entry{Word: "stale"}},
	}

	var state State
	for _, event := range events {
		state = Reduce(state, event)
		active := 0
		if state.Loading {
			active++
		}
		if state.Err != nil {
			active++
		}
		if state.Entry != nil {
			active++
		}
		assert.LessOrEqual(t, active, 1, "state %+v after %T", state, event)
	}
}
