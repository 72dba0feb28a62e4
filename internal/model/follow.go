package model

import "time"

// Follow 订阅关系（读者 user 关注作者 author）
type Follow struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	UserID   uint `json:"user_id" gorm:"index:idx_follow_user;index:idx_follow_pair,unique;not null"`
	AuthorID uint `json:"author_id" gorm:"not null;index:idx_follow_pair,unique"`
	// 复合唯一键，避免重复关注
	// idx_follow_pair = (user_id, author_id)
	CreatedAt time.Time `json:"created_at"`
}

func (Follow) TableName() string { return "follows" }
