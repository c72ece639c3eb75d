package schema

import "time"

const (
	UserCollection = "users"
)

type NotificationPreferences struct {
	Email bool `json:"email" bson:"email"`
	Push  bool `json:"push" bson:"push"`
}

type User struct {
	ID                      string                  `json:"id" bson:"_id"`
	DisplayName             string                  `json:"display_name" bson:"display_name"`
	Email                   string                  `json:"email" bson:"email"`
	PhotoURL                string                  `json:"photo_url,omitempty" bson:"photo_url,omitempty"`
	About                   string                  `json:"about,omitempty" bson:"about,omitempty"`
	ShowProfilePhoto        bool                    `json:"show_profile_photo" bson:"show_profile_photo"`
	NotificationPreferences NotificationPreferences `json:"notification_preferences" bson:"notification_preferences"`
	FavoriteMahalleler      []LocationData          `json:"favorite_mahalleler" bson:"favorite_mahalleler"`
	CreatedAt               time.Time               `json:"created_at" bson:"created_at"`
	LastLoginAt             time.Time               `json:"last_login_at" bson:"last_login_at"`
}
