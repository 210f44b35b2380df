package model

import "time"

// ClassEntity 班级，UserID为创建班级的教师，入班需要口令
type ClassEntity struct {
	BaseModel
	ClassName   string `gorm:"size:200;not null" json:"className"`
	Description string `gorm:"size:500" json:"description"`
	UserID      uint   `gorm:"index;not null" json:"userId"`
	Password    string `gorm:"size:100;not null" json:"-"`
}

func (ClassEntity) TableName() string {
	return "classes"
}

// ClassUser 班级成员
type ClassUser struct {
	BaseModel
	ClassID  uint      `gorm:"index:idx_class_user,unique;not null" json:"classId"`
	UserID   uint      `gorm:"index:idx_class_user,unique;not null" json:"userId"`
	JoinedAt time.Time `json:"joinedAt"`
}

func (ClassUser) TableName() string {
	return "class_users"
}

// ClassDocumentList 共享到班级的单词集
type ClassDocumentList struct {
	BaseModel
	ClassID  uint      `gorm:"index:idx_class_list,unique;not null" json:"classId"`
	ListID   uint      `gorm:"index:idx_class_list,unique;not null" json:"listId"`
	SharedAt time.Time `json:"sharedAt"`
}

func (ClassDocumentList) TableName() string {
	return "class_document_lists"
}
