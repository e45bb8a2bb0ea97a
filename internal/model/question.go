package model

// Question 题目
type Question struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   uint   `gorm:"index;not null" json:"category"`
	Difficulty int    `gorm:"not null;default:1" json:"difficulty"`
}

func (Question) TableName() string {
	return "questions"
}
