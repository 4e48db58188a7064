package sequence

import (
	"encoding/json"
	"log"
	"os"
	"sync"

	"github.com/eclipse/paho.mqtt.golang"
)

// Controller that manages playback of the sequence. The compositor (or
// anything else on the broker) can drive the transport through JSON messages
// on the control topic; the streamer asks it for the frame to render on each
// tick. Seeking to an arbitrary frame is always allowed since snapshots are
// pure functions of the frame index.
type Controller struct {
	config Config
	client mqtt.Client

	mu       sync.Mutex
	playing  bool
	frame    int64
	loop     bool
	duration int64
}

// NewController creates an instance of a Controller.
func NewController(config Config, client mqtt.Client) *Controller {
	c := new(Controller)
	c.config = config
	c.client = client
	c.playing = true
	c.frame = 0
	c.loop = config.Stream.Loop
	c.duration = config.Stream.DurationFrames

	return c
}

// NextFrame returns the frame to render now and advances playback by one.
func (c *Controller) NextFrame() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	frame := c.frame
	if !c.playing {
		return frame
	}

	c.frame++
	if c.frame >= c.duration {
		if c.loop {
			c.frame = 0
		} else {
			c.frame = c.duration
			c.playing = false
		}
	}

	return frame
}

// Frame returns the current playback position.
func (c *Controller) Frame() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// Playing reports whether the transport is running.
func (c *Controller) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Apply dispatches one control message payload.
func (c *Controller) Apply(payload []byte) {
	var message ControlMessage
	if err := json.Unmarshal(payload, &message); err != nil {
		log.Printf("Discarding control message: %s", err)
		return
	}

	c.mu.Lock()
	switch message.Type {
	case CmdPlay:
		c.playing = true
	case CmdPause:
		c.playing = false
	case CmdRestart:
		c.frame = 0
		c.playing = true
	case CmdSeek:
		var seek SeekMessage
		if err := json.Unmarshal(payload, &seek); err != nil || seek.Frame < 0 {
			c.mu.Unlock()
			log.Printf("Discarding seek message: %s", payload)
			return
		}
		c.frame = seek.Frame
	default:
		c.mu.Unlock()
		log.Printf("Unknown control message type %q", message.Type)
		return
	}
	state := StateMessage{Type: "state", Playing: c.playing, Frame: c.frame}
	c.mu.Unlock()

	c.publishState(state)
}

func (c *Controller) handleControlMessages(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received msg %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())
	c.Apply(msg.Payload())
}

func (c *Controller) publishState(state StateMessage) {
	if c.client == nil {
		return
	}

	b, _ := json.Marshal(state)
	token := c.client.Publish(c.config.Mqtt.Topics.State, 0, true, b)
	token.Wait()
}

// Subscribe attaches the Controller to the control topic.
func (c *Controller) Subscribe() {
	if token := c.client.Subscribe(c.config.Mqtt.Topics.Control, 0, c.handleControlMessages); token.Wait() && token.Error() != nil {
		log.Println(token.Error())
		os.Exit(1)
	}
}
