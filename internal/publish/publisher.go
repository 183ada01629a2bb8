// internal/publish/publisher.go
package publish

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/mbadberg/growatt-bridge/internal/config"
	"github.com/mbadberg/growatt-bridge/internal/poller"
	"github.com/mbadberg/growatt-bridge/internal/registry"
)

const publishTimeout = 5 * time.Second

// CommandHandler is invoked for each setting write request received
// over MQTT. A returned error is logged; nothing is published back
// until the next settings refresh.
type CommandHandler func(inverter, setting string, value uint16) error

// Publisher owns the MQTT session: discovery announcements, state and
// availability topics, and the command subscription for settings.
type Publisher struct {
	cfg    config.MQTTConfig
	client mqtt.Client
}

// New builds a Publisher. Connect must be called before any publish.
func New(cfg config.MQTTConfig) *Publisher {
	return &Publisher{cfg: cfg}
}

// Connect dials the broker. The broker's last-will marks the whole
// bridge offline so every entity goes unavailable if the process dies.
func (p *Publisher) Connect() error {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(p.cfg.Broker)
	opts.SetClientID(p.cfg.ClientID)
	if p.cfg.Username != "" {
		opts.SetUsername(p.cfg.Username)
		opts.SetPassword(p.cfg.Password)
	}
	opts.SetAutoReconnect(true)
	opts.SetWill(p.bridgeAvailabilityTopic(), "offline", 1, true)
	opts.OnConnect = func(c mqtt.Client) {
		log.WithField("broker", p.cfg.Broker).Info("mqtt connected")
		c.Publish(p.bridgeAvailabilityTopic(), 1, true, "online")
	}
	opts.OnConnectionLost = func(c mqtt.Client, err error) {
		log.WithError(err).Warn("mqtt connection lost")
	}

	p.client = mqtt.NewClient(opts)
	token := p.client.Connect()
	if !token.WaitTimeout(publishTimeout * 2) {
		return fmt.Errorf("publish: connect to %s: timeout", p.cfg.Broker)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish: connect to %s: %w", p.cfg.Broker, err)
	}
	return nil
}

// Close marks the bridge offline and disconnects.
func (p *Publisher) Close() {
	if p.client == nil {
		return
	}
	p.client.Publish(p.bridgeAvailabilityTopic(), 1, true, "offline").WaitTimeout(publishTimeout)
	p.client.Disconnect(250)
}

func (p *Publisher) bridgeAvailabilityTopic() string {
	return p.cfg.TopicPrefix + "/bridge/availability"
}

func (p *Publisher) stateTopic(inverter string) string {
	return fmt.Sprintf("%s/%s/state", p.cfg.TopicPrefix, inverter)
}

func (p *Publisher) settingsTopic(inverter string) string {
	return fmt.Sprintf("%s/%s/settings", p.cfg.TopicPrefix, inverter)
}

func (p *Publisher) availabilityTopic(inverter string) string {
	return fmt.Sprintf("%s/%s/availability", p.cfg.TopicPrefix, inverter)
}

func (p *Publisher) commandTopic(inverter string) string {
	return fmt.Sprintf("%s/%s/set/+", p.cfg.TopicPrefix, inverter)
}

// PublishDiscovery announces every sensor and writable setting of an
// inverter to Home Assistant. Configs are retained so entities survive
// a Home Assistant restart.
func (p *Publisher) PublishDiscovery(inverter string, profile *registry.Profile) error {
	stateT := p.stateTopic(inverter)
	availT := p.availabilityTopic(inverter)

	for _, e := range stateFields(profile) {
		c := sensor(inverter, profile, e, stateT, availT)
		topic := fmt.Sprintf("%s/sensor/growatt_%s_%s/config", p.cfg.DiscoveryPrefix, inverter, e.Name)
		if err := p.publishJSON(topic, c, true); err != nil {
			return err
		}
	}

	settingsT := p.settingsTopic(inverter)
	for _, s := range profile.Settings {
		cmdT := fmt.Sprintf("%s/%s/set/%s", p.cfg.TopicPrefix, inverter, s.Name)
		c := number(inverter, profile, s, settingsT, cmdT, availT)
		topic := fmt.Sprintf("%s/number/growatt_%s_%s/config", p.cfg.DiscoveryPrefix, inverter, s.Name)
		if err := p.publishJSON(topic, c, true); err != nil {
			return err
		}
	}
	return nil
}

// PublishState publishes a poll record to the inverter's state topic
// and keeps the availability topic in sync with the record.
func (p *Publisher) PublishState(profile *registry.Profile, rec poller.Record) error {
	payload, err := StatePayload(profile, rec)
	if err != nil {
		return fmt.Errorf("publish: state payload for %s: %w", rec.Name, err)
	}
	if err := p.publish(p.stateTopic(rec.Name), payload, true); err != nil {
		return err
	}
	return p.PublishAvailability(rec.Name, rec.Available)
}

// PublishAvailability updates the per-inverter availability topic.
func (p *Publisher) PublishAvailability(inverter string, available bool) error {
	state := "online"
	if !available {
		state = "offline"
	}
	return p.publish(p.availabilityTopic(inverter), []byte(state), true)
}

// PublishSettings publishes the current setting values as one JSON
// document, the state source for the number entities.
func (p *Publisher) PublishSettings(inverter string, values map[string]uint16) error {
	return p.publishAny(p.settingsTopic(inverter), values, true)
}

// SubscribeCommands routes setting write requests for one inverter to
// the handler. Topic shape: <prefix>/<inverter>/set/<setting>, payload
// is the decimal register value.
func (p *Publisher) SubscribeCommands(inverter string, handle CommandHandler) error {
	cb := func(_ mqtt.Client, msg mqtt.Message) {
		parts := strings.Split(msg.Topic(), "/")
		setting := parts[len(parts)-1]

		v, err := parseCommandValue(string(msg.Payload()))
		if err != nil {
			log.WithFields(log.Fields{"inverter": inverter, "setting": setting, "payload": string(msg.Payload())}).
				Warn("rejected command payload")
			return
		}
		if err := handle(inverter, setting, v); err != nil {
			log.WithFields(log.Fields{"inverter": inverter, "setting": setting}).
				WithError(err).Error("setting write failed")
		}
	}

	token := p.client.Subscribe(p.commandTopic(inverter), 1, cb)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish: subscribe %s: timeout", p.commandTopic(inverter))
	}
	return token.Error()
}

// parseCommandValue parses a command payload as a register value.
// Only whole decimal numbers in register range are accepted; anything
// else must never reach the device as a truncated or wrapped value.
func parseCommandValue(raw string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("publish: bad command value %q", raw)
	}
	return uint16(v), nil
}

func (p *Publisher) publishJSON(topic string, v interface{}, retain bool) error {
	return p.publishAny(topic, v, retain)
}

func (p *Publisher) publishAny(topic string, v interface{}, retain bool) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("publish: marshal for %s: %w", topic, err)
	}
	return p.publish(topic, payload, retain)
}

func (p *Publisher) publish(topic string, payload []byte, retain bool) error {
	token := p.client.Publish(topic, 0, retain, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish: %s: timeout", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish: %s: %w", topic, err)
	}
	return nil
}
