// Package messaging publishes telemetry to the fleet's MQTT broker. The broker
// is the external reporting collaborator; the mission engine works unchanged
// with the no-op publisher when no broker is configured.
package messaging

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"microbot/internal/core/model"
	"microbot/internal/utils"
)

type Publisher interface {
	PublishRecord(record *model.TelemetryRecord) error
	PublishSummary(summary *model.TelemetrySummary) error
	Close()
}

type nopPublisher struct{}

func (nopPublisher) PublishRecord(*model.TelemetryRecord) error   { return nil }
func (nopPublisher) PublishSummary(*model.TelemetrySummary) error { return nil }
func (nopPublisher) Close()                                       {}

// NopPublisher discards everything.
func NopPublisher() Publisher { return nopPublisher{} }

// MQTTPublisher publishes per-record and per-summary messages under
// <prefix>/<robotID>/telemetry and <prefix>/<robotID>/summary.
type MQTTPublisher struct {
	client      mqtt.Client
	topicPrefix string
}

type MQTTConfig struct {
	Broker      string
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
}

func NewMQTTPublisher(cfg MQTTConfig) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(10 * time.Second)

	opts.SetOnConnectHandler(func(c mqtt.Client) {
		utils.Logger.Info("MQTT telemetry publisher connected")
	})
	opts.SetConnectionLostHandler(func(c mqtt.Client, err error) {
		utils.Logger.Errorf("MQTT connection lost: %v", err)
	})

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}

	return &MQTTPublisher{
		client:      client,
		topicPrefix: cfg.TopicPrefix,
	}, nil
}

func (p *MQTTPublisher) PublishRecord(record *model.TelemetryRecord) error {
	topic := fmt.Sprintf("%s/%s/telemetry", p.topicPrefix, record.RobotID)
	return p.publish(topic, record)
}

func (p *MQTTPublisher) PublishSummary(summary *model.TelemetrySummary) error {
	topic := fmt.Sprintf("%s/%s/summary", p.topicPrefix, summary.RobotID)
	return p.publish(topic, summary)
}

func (p *MQTTPublisher) publish(topic string, payload interface{}) error {
	if !p.client.IsConnected() {
		return fmt.Errorf("MQTT client is not connected")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	token := p.client.Publish(topic, 1, false, data)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish to %s failed: %v", topic, token.Error())
	}
	return nil
}

func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
