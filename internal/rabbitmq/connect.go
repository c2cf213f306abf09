// Package rabbitmq публикует события жизненного цикла видео в RabbitMQ.
// События потребляет внешний конвейер обогащения (генерация субтитров
// и карточек слов), сам конвейер не входит в этот сервис.
package rabbitmq

import (
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

// Connect подключается к RabbitMQ с повторными попытками.
func Connect(connection string, retries int, delay time.Duration) (*amqp.Connection, error) {
	const op = "rabbitmq.Connect"
	var conn *amqp.Connection
	var err error

	for range retries {
		conn, err = amqp.Dial(connection)
		if err == nil {
			return conn, nil
		}
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("%s: %w", op, err)
}

// SetupChannel открывает канал и объявляет exchange "videos" с очередями
// для событий создания и удаления видео.
func SetupChannel(conn *amqp.Connection) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.ExchangeDeclare(
		"videos",
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	bindings := map[string]string{
		"videos.created": "created",
		"videos.removed": "removed",
	}
	for queue, routingKey := range bindings {
		_, err = ch.QueueDeclare(
			queue,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to declare queue %s: %w", op, queue, err)
		}
		err = ch.QueueBind(queue, routingKey, "videos", false, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to bind queue %s: %w", op, queue, err)
		}
	}
	return ch, nil
}
