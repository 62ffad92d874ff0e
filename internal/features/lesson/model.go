package lesson

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/learnx-app/learnx-server-go/internal/features/user"
	"github.com/learnx-app/learnx-server-go/pkg/types"
)

// Lesson is a generated lesson document owned by a user.
type Lesson struct {
	types.BaseModel
	UserID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Topic   string         `gorm:"type:varchar(255);not null;index" json:"topic"`
	Level   string         `gorm:"type:varchar(32);not null;default:beginner" json:"level"`
	Content datatypes.JSON `gorm:"column:content_json;not null" json:"content"`

	User *user.User `gorm:"foreignKey:UserID" json:"-"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// Create persists a generated lesson for the given owner.
func Create(db *gorm.DB, ownerID uuid.UUID, topic, level string, doc json.RawMessage) (Lesson, error) {
	lsn := Lesson{
		UserID:  ownerID,
		Topic:   topic,
		Level:   level,
		Content: datatypes.JSON(doc),
	}

	if err := db.Create(&lsn).Error; err != nil {
		return Lesson{}, err
	}

	return lsn, nil
}
