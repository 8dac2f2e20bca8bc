package messaging

import (
	"fmt"
	"log"
	"mediconnect-service/internal/app/config"
	"mediconnect-service/internal/pkg/constvars"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const rabbitMQHeartbeat = 10 * time.Second

// NewRabbitMQ dials the broker that carries reminder deliveries.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(constvars.ServiceName)

	conn, err := amqp091.DialConfig(connectionString, amqp091.Config{
		Heartbeat:  rabbitMQHeartbeat,
		Locale:     "en_US",
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ at %s:%s: %s", driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port, err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}
