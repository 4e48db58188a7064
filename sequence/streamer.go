package sequence

import (
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Streamer that streams tagline snapshots to a compositor over MQTT.
type Streamer struct {
	config     Config
	client     mqtt.Client
	controller *Controller
	animation  Animation
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client mqtt.Client, controller *Controller) *Streamer {
	s := new(Streamer)
	s.config = config
	s.client = client
	s.controller = controller
	s.animation = NewTagline(config.Palette)

	return s
}

// Animation returns the animation being streamed.
func (s *Streamer) Animation() Animation {
	return s.animation
}

// SendFrame sends one snapshot as JSON over MQTT to the compositor.
func (s *Streamer) SendFrame() {
	frame := s.controller.NextFrame()
	snap := s.animation.Snapshot(frame)
	b, _ := snap.MarshalBinary()
	token := s.client.Publish(s.config.Mqtt.Topics.Stream, 2, false, b)
	token.Wait()
}

// Run causes the Streamer to send Snapshots continuously at the configured
// frame rate.
func (s *Streamer) Run() {
	interval := time.Duration(float64(time.Second) / s.config.Stream.FPS)
	publishTimer := time.NewTicker(interval)
	for {
		<-publishTimer.C
		s.SendFrame()
	}
}
