package course

import (
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/learnx-app/learnx-server-go/internal/features/user"
	"github.com/learnx-app/learnx-server-go/pkg/types"
)

// Course is a generated course syllabus owned by a user.
type Course struct {
	types.BaseModel
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Topic         string         `gorm:"type:varchar(255);not null;index" json:"topic"`
	DurationWeeks int            `gorm:"not null;default:2" json:"duration_weeks"`
	Syllabus      datatypes.JSON `gorm:"column:syllabus_json;not null" json:"syllabus"`

	User *user.User `gorm:"foreignKey:UserID" json:"-"`
}

func (Course) TableName() string {
	return "courses"
}

// Create persists a generated course for the given owner.
func Create(db *gorm.DB, ownerID uuid.UUID, topic string, durationWeeks int, doc json.RawMessage) (Course, error) {
	crs := Course{
		UserID:        ownerID,
		Topic:         topic,
		DurationWeeks: durationWeeks,
		Syllabus:      datatypes.JSON(doc),
	}

	if err := db.Create(&crs).Error; err != nil {
		return Course{}, err
	}

	return crs, nil
}
