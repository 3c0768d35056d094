package api

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/lifeline-bd/lifeline-api/schema"
	"github.com/lifeline-bd/lifeline-api/store"
)

func (s *APITestSuite) TestListNotifications() {
	actor, token := s.login(schema.RoleDonor)
	s.store.EXPECT().ListNotifications(actor.Profile.ID, defaultNotificationLimit).Return([]schema.Notification{
		{ID: uuid.New(), ProfileID: actor.Profile.ID, Type: schema.NotificationAssigned},
	}, nil)

	w, resp := s.request("GET", "/api/notifications", nil, token)
	s.Equal(http.StatusOK, w.Code)

	var result []schema.Notification
	s.decode(resp, &result)
	s.Len(result, 1)
	s.Equal(schema.NotificationAssigned, result[0].Type)
}

func (s *APITestSuite) TestListNotificationsLimit() {
	actor, token := s.login(schema.RoleVolunteer)
	s.store.EXPECT().ListNotifications(actor.Profile.ID, maxNotificationLimit).Return([]schema.Notification{}, nil)

	w, _ := s.request("GET", "/api/notifications?limit=500", nil, token)
	s.Equal(http.StatusOK, w.Code)

	_, token = s.login(schema.RoleVolunteer)
	w, resp := s.request("GET", "/api/notifications?limit=abc", nil, token)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("min", resp.Error.Fields["limit"])
}

func (s *APITestSuite) TestReadNotification() {
	actor, token := s.login(schema.RoleDonor)
	id := uuid.New()
	s.store.EXPECT().MarkNotificationRead(id, actor.Profile.ID).Return(nil)

	w, _ := s.request("POST", fmt.Sprintf("/api/notifications/%s/read", id), nil, token)
	s.Equal(http.StatusOK, w.Code)
}

func (s *APITestSuite) TestReadNotificationOfOthers() {
	actor, token := s.login(schema.RoleDonor)
	id := uuid.New()
	s.store.EXPECT().MarkNotificationRead(id, actor.Profile.ID).Return(store.ErrStateConflict)

	w, resp := s.request("POST", fmt.Sprintf("/api/notifications/%s/read", id), nil, token)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(errorNotificationNotFound.Code, resp.Error.Code)
}

func (s *APITestSuite) TestReadNotificationMalformedID() {
	_, token := s.login(schema.RoleDonor)

	w, resp := s.request("POST", "/api/notifications/not-a-uuid/read", nil, token)
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(errorNotificationNotFound.Code, resp.Error.Code)
}
