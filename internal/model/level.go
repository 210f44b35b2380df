package model

// Level 课程级别（TOPIK 1级~6级），一个级别下有多个课时
type Level struct {
	BaseModel
	LevelName   string `gorm:"size:100;not null" json:"levelName"`
	Description string `gorm:"size:500" json:"description"`
}

func (Level) TableName() string {
	return "levels"
}

// Lesson 课时，按ID升序构成级别内的解锁顺序
type Lesson struct {
	BaseModel
	LevelID           uint   `gorm:"index;not null" json:"levelId"`
	LessonName        string `gorm:"size:200;not null" json:"lessonName"`
	LessonDescription string `gorm:"size:500" json:"lessonDescription"`
}

func (Lesson) TableName() string {
	return "lessons"
}
