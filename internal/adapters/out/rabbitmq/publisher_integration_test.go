package rabbitmq_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/preparation"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PublisherTestSuite struct {
	suite.Suite
	container testcontainers.Container
	url       string
	publisher *rabbitmq.Publisher
}

func (suite *PublisherTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForLog("Server startup complete").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5672/tcp")
	suite.Require().NoError(err)
	suite.url = fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())

	suite.publisher, err = rabbitmq.NewPublisher(suite.url, "")
	suite.Require().NoError(err)
}

func (suite *PublisherTestSuite) TearDownSuite() {
	if suite.publisher != nil {
		suite.Require().NoError(suite.publisher.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PublisherTestSuite) TestPublishRoutesByEventName() {
	ctx := context.Background()

	conn, err := amqp.Dial(suite.url)
	suite.Require().NoError(err)
	defer conn.Close()
	ch, err := conn.Channel()
	suite.Require().NoError(err)
	defer ch.Close()

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(ch.QueueBind(q.Name, string(preparation.EventReady), suite.publisher.Exchange(), false, nil))
	deliveries, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	suite.Require().NoError(err)

	orderID := kernel.NewUUID()
	at := time.Now().UTC()
	current, err := preparation.NewSeedSnapshot(1, orderID, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.publisher.Publish(ctx, current))
	for i, station := range preparation.Stations() {
		current, err = current.Advance(preparation.SnapshotID(i+2), station, at)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.publisher.Publish(ctx, current))
	}

	select {
	case d := <-deliveries:
		suite.Equal("application/json", d.ContentType)
		suite.Equal(string(preparation.EventReady), d.RoutingKey)

		var msg rabbitmq.PreparationMessage
		suite.Require().NoError(json.Unmarshal(d.Body, &msg))
		suite.Equal(orderID.String(), msg.OrderID)
		suite.Equal(uint64(5), msg.SnapshotID)
		suite.True(msg.Ready)
	case <-time.After(10 * time.Second):
		suite.Fail("no preparation.ready message received")
	}

	select {
	case d := <-deliveries:
		suite.Failf("unexpected message", "routing key %s", d.RoutingKey)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestPublisherTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping RabbitMQ integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(PublisherTestSuite))
}
