package events

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/apache/pulsar-client-go/pulsar"
)

// Event is the change-feed payload published after a todo mutation.
type Event struct {
	UserName string `json:"user_name"`
	Topic    string `json:"topic"`
	Name     string `json:"name"`
	Data     any    `json:"data"`
}

type ClientOptions struct {
	URL   string
	Topic string
	Name  string
}

type Client struct {
	client   pulsar.Client
	producer pulsar.Producer
}

func New(options ClientOptions) (*Client, error) {
	client, err := pulsar.NewClient(pulsar.ClientOptions{
		URL: options.URL,
	})
	if err != nil {
		return nil, err
	}

	producer, err := client.CreateProducer(pulsar.ProducerOptions{
		Topic: options.Topic,
		Name:  options.Name,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		client:   client,
		producer: producer,
	}, nil
}

func (c *Client) Send(event *Event) error {
	if c.producer == nil {
		return errors.New("producer not initialized")
	}

	payload, err := json.Marshal(&event)
	if err != nil {
		return err
	}

	_, err = c.producer.Send(context.Background(), &pulsar.ProducerMessage{
		Payload: payload,
	})

	return err
}

func (c *Client) Close() {
	if c.producer != nil {
		c.producer.Close()
	}

	c.client.Close()
}
