package entities

import "parc-system/pkg/types"

// Preference regroupe les réglages par compte.
type Preference struct {
	OwnerID            string `json:"owner_id"`
	Theme              string `json:"theme"`
	Langue             string `json:"langue"`
	NotificationsEmail bool   `json:"notifications_email"`
	NotificationsPush  bool   `json:"notifications_push"`
	AlertesGarantie    bool   `json:"alertes_garantie"`
	AlertesMaintenance bool   `json:"alertes_maintenance"`

	types.BaseEntity
}

func DefaultPreference(ownerID string) *Preference {
	return &Preference{
		OwnerID:            ownerID,
		Theme:              "system",
		Langue:             "fr",
		NotificationsEmail: true,
		NotificationsPush:  false,
		AlertesGarantie:    true,
		AlertesMaintenance: true,
	}
}
