package dto

type UpdatePreferenceDTO struct {
	Theme              *string `json:"theme" validate:"omitempty,oneof=light dark system"`
	Langue             *string `json:"langue" validate:"omitempty,oneof=fr en"`
	NotificationsEmail *bool   `json:"notifications_email"`
	NotificationsPush  *bool   `json:"notifications_push"`
	AlertesGarantie    *bool   `json:"alertes_garantie"`
	AlertesMaintenance *bool   `json:"alertes_maintenance"`
}

type PreferenceDTO struct {
	Theme              string `json:"theme"`
	Langue             string `json:"langue"`
	NotificationsEmail bool   `json:"notifications_email"`
	NotificationsPush  bool   `json:"notifications_push"`
	AlertesGarantie    bool   `json:"alertes_garantie"`
	AlertesMaintenance bool   `json:"alertes_maintenance"`
}
