package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func TestRedisEchoIsNotRebroadcast(t *testing.T) {
	h := NewHub(nil, nil, noopLogger{})
	c := &Client{Send: make(chan []byte, 1)}
	h.clients[c] = struct{}{}

	event := json.RawMessage(`{"type":"chunk"}`)

	own, err := json.Marshal(redisEnvelope{Instance: h.instanceId, Data: event})
	require.NoError(t, err)
	h.handleRedisPayload(own)

	select {
	case <-c.Send:
		t.Fatal("event from this instance delivered twice")
	default:
	}

	foreign, err := json.Marshal(redisEnvelope{Instance: "other-instance", Data: event})
	require.NoError(t, err)
	h.handleRedisPayload(foreign)

	select {
	case data := <-c.Send:
		require.JSONEq(t, string(event), string(data))
	default:
		t.Fatal("event from another instance not delivered")
	}
}

func TestMalformedRedisPayloadIsDropped(t *testing.T) {
	h := NewHub(nil, nil, noopLogger{})
	c := &Client{Send: make(chan []byte, 1)}
	h.clients[c] = struct{}{}

	h.handleRedisPayload([]byte("not json"))

	select {
	case <-c.Send:
		t.Fatal("malformed payload delivered")
	default:
	}
}
