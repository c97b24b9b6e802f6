package entity

import (
	"time"
)

// DbUsageLog stores one logged instance of AI-tool usage on an assignment.
type DbUsageLog struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`

	AssignmentTitle string `gorm:"column:assignment_title;type:text;not null" json:"assignmentTitle"`
	DateOfUse       string `gorm:"column:date_of_use;type:varchar(32);not null;index" json:"dateOfUse"` // ISO 8601 日期，使用日期，区别于 created_at
	Tool            string `gorm:"column:tool;type:varchar(255);not null;index" json:"tool"`
	PurposeCategory string `gorm:"column:purpose_category;type:varchar(255);not null;index" json:"purposeCategory"`

	OptionalExplanation OptionalText `gorm:"column:optional_explanation;type:text" json:"optionalExplanation"`
	PromptQueryUsed     OptionalText `gorm:"column:prompt_query_used;type:text" json:"promptQueryUsed"`
	OutputReceived      OptionalText `gorm:"column:output_received;type:text" json:"outputReceived"`
	ModifiedOutput      OptionalText `gorm:"column:modified_output;type:text" json:"modifiedOutput"`
}

// TableName 指定表名
func (DbUsageLog) TableName() string {
	return "logs"
}
