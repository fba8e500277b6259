package schema

// Quest represents the quests table - an achievement quest that grants prizes
type Quest struct {
	// ID is the external quest id
	ID int64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// Title is the quest title
	Title string `gorm:"column:title;not null;size:128"`
	// Description is the quest description
	Description string `gorm:"column:description;size:512"`
	// AchieveCondDescription describes the completion condition
	AchieveCondDescription string `gorm:"column:achieve_cond_description;size:512"`
	// AchieveType is the completion condition kind
	AchieveType int `gorm:"column:achieve_type;not null"`
	// AchieveTypeName is the display name of the condition kind
	AchieveTypeName string `gorm:"column:achieve_type_name;size:64"`
	// HintTitle is the hint header
	HintTitle string `gorm:"column:hint_title;size:128"`
	// HintMsg is the hint body
	HintMsg string `gorm:"column:hint_msg;size:512"`
}

// TableName specifies the table name for the Quest model
func (Quest) TableName() string {
	return "quests"
}

func (Quest) EntityName() string { return "Quest" }

func (q Quest) String() string { return q.Title }

func (q Quest) DisplayName() string { return q.Title }
