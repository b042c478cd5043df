// Package notify delivers user-facing alerts over MQTT.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

const (
	TypeSehriAlert = "sehri_alert"

	publishQoS     = 1
	publishTimeout = 5 * time.Second
	disconnectWait = 250
)

type SehriAlert struct {
	Type    string `json:"type"`
	UserID  string `json:"user_id"`
	Imsak   string `json:"imsak"`
	Minutes int    `json:"minutes"`
}

func NewSehriAlert(userID, imsak string, minutes int) SehriAlert {
	return SehriAlert{Type: TypeSehriAlert, UserID: userID, Imsak: imsak, Minutes: minutes}
}

type Notifier interface {
	NotifySehri(ctx context.Context, alert SehriAlert) error
}

// Topic is the per-user alert topic.
func Topic(userID string) string {
	return fmt.Sprintf("ramadan/users/%s/alerts", userID)
}

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

type MQTTNotifier struct {
	client mqtt.Client
}

// Connect dials the broker and returns a notifier publishing through it.
func Connect(brokerURL, clientID string) (*MQTTNotifier, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(10 * time.Second)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return NewMQTTNotifier(client), nil
}

func NewMQTTNotifier(client mqtt.Client) *MQTTNotifier {
	return &MQTTNotifier{client: client}
}

func (n *MQTTNotifier) NotifySehri(ctx context.Context, alert SehriAlert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return err
	}
	topic := Topic(alert.UserID)
	token := n.client.Publish(topic, publishQoS, false, payload)

	timeout := publishTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	if !token.WaitTimeout(timeout) {
		return fmt.Errorf("publish to %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	log.Debug().Str("topic", topic).Str("user_id", alert.UserID).Msg("sehri alert published")
	return nil
}

func (n *MQTTNotifier) Close() {
	if n.client != nil && n.client.IsConnected() {
		n.client.Disconnect(disconnectWait)
		log.Info().Msg("MQTT client disconnected")
	}
}

// LogNotifier only logs alerts. Used when no broker is configured.
type LogNotifier struct{}

func (LogNotifier) NotifySehri(_ context.Context, alert SehriAlert) error {
	log.Info().
		Str("user_id", alert.UserID).
		Str("imsak", alert.Imsak).
		Int("minutes", alert.Minutes).
		Msg("sehri alert")
	return nil
}
