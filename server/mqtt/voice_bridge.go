package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"

	"solat-assistant/logger"
	services "solat-assistant/service"
)

// Devices publish a transcript to solat/<device>/ask and read the answer
// from solat/<device>/reply.
const (
	AskTopic         = "solat/+/ask"
	replyTopicFormat = "solat/%s/reply"

	qos             = 1
	disconnectQuiet = 250
	tokenTimeout    = 5 * time.Second
)

type Assistant interface {
	Respond(ctx context.Context, raw string) services.Response
}

// Connect opens a client to brokerURL, e.g. tcp://localhost:1883.
func Connect(brokerURL, clientID string) (paho.Client, error) {
	log := logger.Component("MQTT")

	opts := paho.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(paho.Client) {
		log.Info().Str("broker", brokerURL).Msg("Connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Warn().Err(err).Msg("MQTT connection lost")
	}

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(tokenTimeout) {
		return nil, fmt.Errorf("timed out connecting to MQTT broker %s", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}
	return client, nil
}

// VoiceBridge answers transcripts arriving over MQTT.
type VoiceBridge struct {
	client    paho.Client
	assistant Assistant
	log       zerolog.Logger
}

func NewVoiceBridge(client paho.Client, assistant Assistant) *VoiceBridge {
	return &VoiceBridge{
		client:    client,
		assistant: assistant,
		log:       logger.Component("VoiceBridge"),
	}
}

// Start subscribes to AskTopic and blocks until ctx is done.
func (b *VoiceBridge) Start(ctx context.Context) error {
	token := b.client.Subscribe(AskTopic, qos, b.handler(ctx))
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", AskTopic, token.Error())
	}
	b.log.Info().Str("topic", AskTopic).Msg("Listening for transcripts")

	<-ctx.Done()
	b.client.Unsubscribe(AskTopic).WaitTimeout(tokenTimeout)
	b.client.Disconnect(disconnectQuiet)
	return nil
}

func (b *VoiceBridge) handler(ctx context.Context) paho.MessageHandler {
	return func(client paho.Client, msg paho.Message) {
		device := DeviceFromTopic(msg.Topic())
		if device == "" {
			b.log.Warn().Str("topic", msg.Topic()).Msg("Ignoring message on unexpected topic")
			return
		}

		resp := b.assistant.Respond(ctx, string(msg.Payload()))
		payload, err := json.Marshal(resp)
		if err != nil {
			b.log.Error().Err(err).Str("device", device).Msg("Failed to encode reply")
			return
		}

		token := client.Publish(fmt.Sprintf(replyTopicFormat, device), qos, false, payload)
		if token.WaitTimeout(tokenTimeout) && token.Error() != nil {
			b.log.Error().Err(token.Error()).Str("device", device).Msg("Failed to publish reply")
			return
		}
		b.log.Debug().Str("device", device).Str("route", string(resp.Route)).Msg("Reply published")
	}
}

// DeviceFromTopic extracts <device> from solat/<device>/ask, or returns "".
func DeviceFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) != 3 || parts[0] != "solat" || parts[2] != "ask" {
		return ""
	}
	return parts[1]
}
