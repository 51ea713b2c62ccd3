package messaging

import (
	"fmt"
	"log"
	"panel-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

// NewRabbitMQ dials the broker and declares the given durable queues.
func NewRabbitMQ(driverConfig *config.DriverConfig, queues ...string) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open rabbitMQ channel: %s", err.Error())
	}
	defer ch.Close()

	for _, queue := range queues {
		_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			log.Fatalf("Failed to declare rabbitMQ queue %s: %s", queue, err.Error())
		}
	}

	log.Println("Successfully connected to rabbitMQ")
	return conn
}
