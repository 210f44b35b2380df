package model

// VocabularyTheory 课时词汇
type VocabularyTheory struct {
	BaseModel
	LessonID   uint   `gorm:"index;not null" json:"lessonId"`
	Word       string `gorm:"size:100;not null" json:"word"`
	Meaning    string `gorm:"size:255;not null" json:"meaning"`
	Example    string `gorm:"size:500" json:"example"`
	VocabImage string `gorm:"size:255" json:"vocabImage"`
	Audio      string `gorm:"size:255" json:"audio"`
}

func (VocabularyTheory) TableName() string {
	return "vocabulary_theories"
}

// GrammarTheory 课时语法
type GrammarTheory struct {
	BaseModel
	LessonID       uint   `gorm:"index;not null" json:"lessonId"`
	GrammarTitle   string `gorm:"size:200;not null" json:"grammarTitle"`
	GrammarContent string `gorm:"type:text" json:"grammarContent"`
	GrammarExample string `gorm:"type:text" json:"grammarExample"`
	GrammarMeaning string `gorm:"size:500" json:"grammarMeaning"`
}

func (GrammarTheory) TableName() string {
	return "grammar_theories"
}
