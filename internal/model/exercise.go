package model

import "time"

// Exercise 课时练习，类型为选择题或句型改写
type Exercise struct {
	BaseModel
	LessonID            uint   `gorm:"index;not null" json:"lessonId"`
	ExerciseName        string `gorm:"size:200;not null" json:"exerciseName"`
	ExerciseType        string `gorm:"size:50" json:"exerciseType"` // multiple_choice / sentence_rewriting
	ExerciseDescription string `gorm:"size:500" json:"exerciseDescription"`
}

func (Exercise) TableName() string {
	return "exercises"
}

type MultipleChoiceQuestion struct {
	BaseModel
	ExerciseID    uint   `gorm:"index;not null" json:"exerciseId"`
	QuestionText  string `gorm:"type:text;not null" json:"questionText"`
	OptionA       string `gorm:"size:255" json:"optionA"`
	OptionB       string `gorm:"size:255" json:"optionB"`
	OptionC       string `gorm:"size:255" json:"optionC"`
	OptionD       string `gorm:"size:255" json:"optionD"`
	CorrectAnswer string `gorm:"size:10;not null" json:"correctAnswer"`
	Explanation   string `gorm:"size:500" json:"explanation"`
	QuestionAudio string `gorm:"size:255" json:"questionAudio"`
}

func (MultipleChoiceQuestion) TableName() string {
	return "multiple_choice_questions"
}

type SentenceRewritingQuestion struct {
	BaseModel
	ExerciseID          uint   `gorm:"index;not null" json:"exerciseId"`
	OriginalSentence    string `gorm:"size:500;not null" json:"originalSentence"`
	RewrittenSentence   string `gorm:"size:500;not null" json:"rewrittenSentence"`
	QuestionInstruction string `gorm:"size:500" json:"questionInstruction"`
}

func (SentenceRewritingQuestion) TableName() string {
	return "sentence_rewriting_questions"
}

// UserExerciseResult 用户练习成绩记录
type UserExerciseResult struct {
	BaseModel
	UserID       uint      `gorm:"index;not null" json:"userId"`
	ExerciseID   uint      `gorm:"index;not null" json:"exerciseId"`
	Score        int       `json:"score"`
	DateComplete time.Time `json:"dateComplete"`
}

func (UserExerciseResult) TableName() string {
	return "user_exercise_results"
}
