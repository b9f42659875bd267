package messaging

import (
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DeclareBindAndConsume binds an exclusive queue to one topic exchange and
// starts consuming from it.
func DeclareBindAndConsume(ch *amqp.Channel, prefix string, topic ChangeTopic) (<-chan amqp.Delivery, error) {
	name := getName(prefix, topic)
	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		false, // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, err
	}
	err = ch.QueueBind(q.Name, name, name, false, nil)
	if err != nil {
		return nil, err
	}
	return ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
}

// ListenToTopic consumes one topic and calls handler for each decoded
// notice. Undecodable messages are acked and dropped; a handler error
// stops the consumer.
func ListenToTopic(ch *amqp.Channel, prefix string, topic ChangeTopic, handler func(ChangeNotice) error) error {
	fc, err := DeclareBindAndConsume(ch, prefix, topic)
	if err != nil {
		return err
	}

	go func(msgs <-chan amqp.Delivery) {
		defer ch.Close()
		for d := range msgs {
			var notice ChangeNotice
			if err := json.Unmarshal(d.Body, &notice); err != nil {
				log.Printf("Dropping undecodable change notice: %v", err)
				d.Ack(false)
				continue
			}
			if err := handler(notice); err != nil {
				log.Printf("Error processing change notice: %v", err)
				return
			}
			d.Ack(false)
		}
	}(fc)
	return nil
}

// ListenToAll subscribes to every config topic on its own channel.
func ListenToAll(conn *amqp.Connection, prefix string, handler func(ChangeNotice) error) error {
	for _, topic := range AllTopics {
		ch, err := conn.Channel()
		if err != nil {
			return err
		}
		if err := ListenToTopic(ch, prefix, topic, handler); err != nil {
			ch.Close()
			return err
		}
	}
	return nil
}
