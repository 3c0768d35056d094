package store

import (
	"github.com/google/uuid"

	"github.com/lifeline-bd/lifeline-api/schema"
)

func (s *LifelineStore) CreateNotification(n *schema.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return s.ormDB.Create(n).Error
}

// ListNotifications returns the latest notifications of a profile
func (s *LifelineStore) ListNotifications(profileID uuid.UUID, limit int) ([]schema.Notification, error) {
	notifications := []schema.Notification{}
	if err := s.ormDB.Where("profile_id = ?", profileID).
		Order("created_at DESC").Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

func (s *LifelineStore) MarkNotificationRead(id, profileID uuid.UUID) error {
	return guardedUpdate(s.ormDB, &schema.Notification{}, map[string]interface{}{
		"is_read": true,
	}, "id = ? AND profile_id = ?", id, profileID)
}
