package sse

import (
	"encoding/json"
	"testing"
	"time"
)

func waitForClientCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if hub.GetClientCount() == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for client count %d, have %d", want, hub.GetClientCount())
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := NewClient(ClientID("job1", "sub1"), WithJobID("job1"))
	hub.Register(client)
	waitForClientCount(t, hub, 1)

	if got := hub.GetClient(client.ID()); got == nil {
		t.Fatal("expected registered client to be retrievable")
	}
	if client.JobID() != "job1" {
		t.Errorf("expected job_id metadata job1, got %q", client.JobID())
	}

	hub.Unregister(client)
	waitForClientCount(t, hub, 0)

	// Unregister closes the events channel.
	select {
	case _, ok := <-client.Events():
		if ok {
			t.Error("expected events channel to be closed")
		}
	case <-time.After(time.Second):
		t.Error("timed out waiting for events channel to close")
	}
}

func TestHub_BroadcastMatchesJobPattern(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	sub1 := NewClient(ClientID("job1", "a"), WithJobID("job1"))
	sub2 := NewClient(ClientID("job1", "b"), WithJobID("job1"))
	other := NewClient(ClientID("job2", "c"), WithJobID("job2"))
	hub.Register(sub1)
	hub.Register(sub2)
	hub.Register(other)
	waitForClientCount(t, hub, 3)

	PublishProgress(hub, "job1", 0.25, 30*time.Second)

	for _, c := range []*Client{sub1, sub2} {
		select {
		case data := <-c.Events():
			var env Envelope
			if err := json.Unmarshal(data, &env); err != nil {
				t.Fatalf("unmarshal envelope: %v", err)
			}
			if env.Type != EventTypeProgress || env.JobID != "job1" {
				t.Errorf("unexpected envelope %+v", env)
			}
		case <-time.After(time.Second):
			t.Fatalf("client %s did not receive broadcast", c.ID())
		}
	}

	select {
	case data := <-other.Events():
		t.Errorf("job2 subscriber should not receive job1 events, got %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_SlowClientDropsEvents(t *testing.T) {
	client := NewClient("job:x:slow")
	// Fill the buffered channel.
	for i := 0; i < cap(client.events); i++ {
		if !client.Send([]byte("fill")) {
			t.Fatalf("send %d failed before buffer full", i)
		}
	}
	if client.Send([]byte("overflow")) {
		t.Error("expected Send to report false on full channel")
	}
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := NewClient(ClientID("job1", "a"))
	hub.Register(client)
	waitForClientCount(t, hub, 1)

	hub.Stop()
	hub.Stop() // Safe to call twice.

	select {
	case _, ok := <-client.Events():
		if ok {
			t.Error("expected events channel closed after Stop")
		}
	case <-time.After(time.Second):
		t.Error("timed out waiting for channel close after Stop")
	}
}

func TestPublishCompletedAndFailed(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := NewClient(ClientID("job9", "a"))
	hub.Register(client)
	waitForClientCount(t, hub, 1)

	PublishCompleted(hub, "job9", CompletedEvent{Segments: 4, SRTPath: "out.srt"})
	PublishFailed(hub, "job9", "diarizer unavailable")

	var types []string
	for i := 0; i < 2; i++ {
		select {
		case data := <-client.Events():
			var env Envelope
			if err := json.Unmarshal(data, &env); err != nil {
				t.Fatalf("unmarshal envelope: %v", err)
			}
			types = append(types, env.Type)
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for events")
		}
	}
	if types[0] != EventTypeCompleted || types[1] != EventTypeFailed {
		t.Errorf("unexpected event order %v", types)
	}
}
