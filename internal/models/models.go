package models

import (
	"time"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Username               string    `json:"username" db:"username"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"-" db:"password_hash"`
	RefreshToken           string    `json:"-" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"-" db:"refresh_token_expiry_time"`
}

type Group struct {
	GroupID     string `json:"groupId" db:"group_id"`
	Title       string `json:"title" db:"title"`
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
}

// Post. PubDate выставляется один раз при создании и далее не меняется.
// GroupID и ImageURL необязательны; при удалении группы GroupID обнуляется
// базой (ON DELETE SET NULL), посты при этом остаются.
type Post struct {
	PostID         string    `json:"postId" db:"post_id"`
	Text           string    `json:"text" db:"text"`
	PubDate        time.Time `json:"pubDate" db:"pub_date"`
	AuthorID       string    `json:"authorId" db:"author_id"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	GroupID        *string   `json:"groupId" db:"group_id"`
	ImageURL       *string   `json:"imageUrl" db:"image_url"`
}

type Comment struct {
	CommentID      string    `json:"commentId" db:"comment_id"`
	PostID         string    `json:"postId" db:"post_id"`
	AuthorID       string    `json:"authorId" db:"author_id"`
	AuthorUsername string    `json:"authorUsername" db:"author_username"`
	Text           string    `json:"text" db:"text"`
	Created        time.Time `json:"created" db:"created"`
}

// Follow — направленное ребро "user подписан на author".
type Follow struct {
	FollowID string `json:"followId" db:"follow_id"`
	UserID   string `json:"userId" db:"user_id"`
	AuthorID string `json:"authorId" db:"author_id"`
}
