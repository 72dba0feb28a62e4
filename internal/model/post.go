package model

import "time"

// Post 内容主体。author 建帖时确定且不可改；group 可空、可编辑；
// created_at 建帖时写入后不再变动。
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	AuthorID  uint      `json:"author_id" gorm:"index:idx_post_author;not null"`
	Author    *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	GroupID   *uint     `json:"group_id" gorm:"index:idx_post_group"`
	Group     *Group    `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	CreatedAt time.Time `json:"created_at"`
}

func (Post) TableName() string { return "posts" }
