package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hofix-app/hofix-api/messaging"
	"github.com/hofix-app/hofix-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// BackgroundManager runs the marketplace background jobs
type BackgroundManager struct {
	mongoStore store.MongoStore

	push messaging.PushCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(mongoClient *mongo.Client, push messaging.PushCenter, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	return &BackgroundManager{
		mongoStore: mongoStore,
		push:       push,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("hofix-worker", 5)
	return m.worker.Launch()
}
