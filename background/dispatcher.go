package background

import (
	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	TaskNotifyRequestSubmitted   = "notify_request_submitted"
	TaskNotifyAssignmentCreated  = "notify_assignment_created"
	TaskRestoreDonorAvailability = "restore_donor_availability"
)

// Dispatcher enqueues background jobs
type Dispatcher interface {
	NotifyRequestSubmitted(trackingID string) error
	NotifyAssignmentCreated(assignmentID uuid.UUID) error
	RestoreDonorAvailability() error
}

// TaskDispatcher sends jobs to the machinery broker
type TaskDispatcher struct {
	server *machinery.Server
}

func NewTaskDispatcher(server *machinery.Server) *TaskDispatcher {
	return &TaskDispatcher{server: server}
}

func (d *TaskDispatcher) send(name string, args ...tasks.Arg) error {
	_, err := d.server.SendTask(&tasks.Signature{
		Name:       name,
		Args:       args,
		RetryCount: 3,
	})
	return err
}

func (d *TaskDispatcher) NotifyRequestSubmitted(trackingID string) error {
	return d.send(TaskNotifyRequestSubmitted, tasks.Arg{Type: "string", Value: trackingID})
}

func (d *TaskDispatcher) NotifyAssignmentCreated(assignmentID uuid.UUID) error {
	return d.send(TaskNotifyAssignmentCreated, tasks.Arg{Type: "string", Value: assignmentID.String()})
}

func (d *TaskDispatcher) RestoreDonorAvailability() error {
	return d.send(TaskRestoreDonorAvailability)
}

// LogDispatcher only logs the jobs. It is used when services are mocked.
type LogDispatcher struct{}

func (LogDispatcher) NotifyRequestSubmitted(trackingID string) error {
	log.WithField("prefix", "background").WithField("tracking_id", trackingID).Info("mock dispatch: " + TaskNotifyRequestSubmitted)
	return nil
}

func (LogDispatcher) NotifyAssignmentCreated(assignmentID uuid.UUID) error {
	log.WithField("prefix", "background").WithField("assignment_id", assignmentID).Info("mock dispatch: " + TaskNotifyAssignmentCreated)
	return nil
}

func (LogDispatcher) RestoreDonorAvailability() error {
	log.WithField("prefix", "background").Info("mock dispatch: " + TaskRestoreDonorAvailability)
	return nil
}
