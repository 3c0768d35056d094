package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/lifeline-bd/lifeline-api/schema"
	"github.com/lifeline-bd/lifeline-api/store"
	"github.com/lifeline-bd/lifeline-api/utils"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

func notificationLanguage() string {
	if lang := viper.GetString("mail.language"); lang != "" {
		return lang
	}
	return "en"
}

// notify leaves an in-app notification for a profile. Failures are logged only.
func (s *Server) notify(profileID uuid.UUID, requestID *uuid.UUID, t schema.NotificationType, data map[string]interface{}) {
	if profileID == uuid.Nil {
		return
	}

	lang := notificationLanguage()
	n := &schema.Notification{
		ProfileID: profileID,
		RequestID: requestID,
		Type:      t,
		Title:     utils.Localize(lang, "notification."+string(t)+".title", data),
		Message:   utils.Localize(lang, "notification."+string(t)+".message", data),
	}

	if err := s.store.CreateNotification(n); err != nil {
		log.WithError(err).WithField("profile", profileID).Error("cannot create notification")
	}
}

// uuidParam parses a path parameter as uuid. A malformed one is answered with
// the given not found error, since no such record can exist.
func uuidParam(c *gin.Context, name string, notFound ErrorResponse) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortWithEncoding(c, http.StatusNotFound, notFound, err)
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) listNotifications(c *gin.Context) {
	actor := actorOf(c)

	limit := defaultNotificationLimit
	if l := c.Query("limit"); l != "" {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			abortWithEncoding(c, http.StatusBadRequest, invalidField("limit", "min"))
			return
		}
		limit = n
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	notifications, err := s.store.ListNotifications(actor.Profile.ID, limit)
	if shouldInterupt(err, c) {
		return
	}

	responseOK(c, notifications)
}

func (s *Server) readNotification(c *gin.Context) {
	id, ok := uuidParam(c, "id", errorNotificationNotFound)
	if !ok {
		return
	}

	err := s.store.MarkNotificationRead(id, actorOf(c).Profile.ID)
	if err == store.ErrStateConflict {
		abortWithEncoding(c, http.StatusNotFound, errorNotificationNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	responseOK(c, gin.H{"id": id, "isRead": true})
}
