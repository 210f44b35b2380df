package model

import "time"

// DocumentList 闪卡单词集，IsPublic 1=公开 0=私有
type DocumentList struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"userId"`
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`
	Type        string `gorm:"size:50" json:"type"`
	IsPublic    int    `gorm:"default:0" json:"isPublic"`
}

func (DocumentList) TableName() string {
	return "document_lists"
}

// DocumentItem 单词集中的闪卡
type DocumentItem struct {
	BaseModel
	ListID     uint   `gorm:"index;not null" json:"listId"`
	Word       string `gorm:"size:100;not null" json:"word"`
	Meaning    string `gorm:"size:255;not null" json:"meaning"`
	Example    string `gorm:"size:500" json:"example"`
	VocabImage string `gorm:"size:255" json:"vocabImage"`
}

func (DocumentItem) TableName() string {
	return "document_items"
}

// FavoriteDocumentList 用户收藏的单词集
type FavoriteDocumentList struct {
	BaseModel
	UserID     uint      `gorm:"index:idx_fav_user_list,unique;not null" json:"userId"`
	ListID     uint      `gorm:"index:idx_fav_user_list,unique;not null" json:"listId"`
	FavoriteAt time.Time `json:"favoriteAt"`
}

func (FavoriteDocumentList) TableName() string {
	return "favorite_document_lists"
}

// DocumentReport 对公开单词集的举报
type DocumentReport struct {
	BaseModel
	UserID     uint      `gorm:"index;not null" json:"userId"`
	ListID     uint      `gorm:"index;not null" json:"listId"`
	Reason     string    `gorm:"size:500;not null" json:"reason"`
	ReportDate time.Time `json:"reportDate"`
}

func (DocumentReport) TableName() string {
	return "document_reports"
}
