package background

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/lifeline-bd/lifeline-api/store"
)

const notifyTimeout = 30 * time.Second

// BackgroundManager is a struct for lifeline background manager
type BackgroundManager struct {
	store store.LifelineCore

	notificationCenter NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker

	nextRun func(time.Time) time.Time
}

func New(core store.LifelineCore, notificationCenter NotificationCenter, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:              core,
		notificationCenter: notificationCenter,
		taskServer:         taskServer,
		nextRun:            nextMidnight,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every job of lifeline
func (m *BackgroundManager) RegisterTasks() error {
	for name, fn := range map[string]interface{}{
		TaskNotifyRequestSubmitted:   m.NotifyRequestSubmitted,
		TaskNotifyAssignmentCreated:  m.NotifyAssignmentCreated,
		TaskRestoreDonorAvailability: m.RestoreDonorAvailability,
	} {
		if err := m.RegisterTask(name, fn); err != nil {
			return err
		}
	}
	return nil
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("lifeline-worker", 5)
	return m.worker.Launch()
}

func language() string {
	if lang := viper.GetString("mail.language"); lang != "" {
		return lang
	}
	return "en"
}

// NotifyRequestSubmitted is a background job to email the requester the tracking
// id of a submitted request
func (m *BackgroundManager) NotifyRequestSubmitted(trackingID string) error {
	r, err := m.store.GetRequestByTrackingID(trackingID)
	if err != nil {
		return err
	}

	if r.RequesterEmail == "" {
		log.WithField("prefix", "background").WithField("tracking_id", trackingID).Debug("no requester email")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	return m.notificationCenter.NotifyByTemplate(ctx, []string{r.RequesterEmail}, language(), TemplateRequestSubmitted, map[string]interface{}{
		"Name":       r.RequesterName,
		"TrackingID": r.TrackingID,
		"BloodGroup": r.BloodGroup,
		"Units":      r.UnitsNeeded,
		"Hospital":   r.HospitalName,
		"TrackURL":   fmt.Sprintf("%s/track/%s", viper.GetString("server.app_url"), r.TrackingID),
	})
}

// NotifyAssignmentCreated is a background job to email the assignee of a new
// assignment
func (m *BackgroundManager) NotifyAssignmentCreated(assignmentID string) error {
	id, err := uuid.Parse(assignmentID)
	if err != nil {
		return err
	}

	a, err := m.store.GetAssignment(id)
	if err != nil {
		return err
	}

	r, err := m.store.GetRequest(a.RequestID)
	if err != nil {
		return err
	}

	assignee, err := m.store.ResolveAssignee(a.Type, a.AssigneeID)
	if err != nil {
		return err
	}

	p, err := m.store.GetProfile(assignee.ProfileID())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	return m.notificationCenter.NotifyByTemplate(ctx, []string{p.Email}, language(), TemplateAssignmentCreated, map[string]interface{}{
		"Name":       p.FullName,
		"TrackingID": r.TrackingID,
		"BloodGroup": r.BloodGroup,
		"Hospital":   r.HospitalName,
		"District":   r.District,
	})
}

// RestoreDonorAvailability is a background job to make donors available again
// once their deferral window has elapsed
func (m *BackgroundManager) RestoreDonorAvailability() error {
	restored, err := m.store.RestoreDonorAvailability(time.Now())
	if err != nil {
		return err
	}

	log.WithField("prefix", "background").WithField("donors", restored).Info("donor availability restored")
	return nil
}
