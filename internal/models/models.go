package models

import (
	"time"
)

type User struct {
	UserID    string    `json:"user_id" db:"user_id"`
	Nickname  *string   `json:"nickname" db:"nickname"`
	Name      *string   `json:"name" db:"name"`
	KakaoID   *string   `json:"-" db:"kakao_id"`
	NaverID   *string   `json:"-" db:"naver_id"`
	Image     *string   `json:"image" db:"image"`
	Slogan    *string   `json:"slogan" db:"slogan"`
	Introduce *string   `json:"introduce" db:"introduce"`
	Email     *string   `json:"email" db:"email"`
	Location  *string   `json:"location" db:"location"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NeedsNickname reports whether the user still has to pick a nickname.
func (u *User) NeedsNickname() bool {
	return u.Nickname == nil || *u.Nickname == ""
}

type History struct {
	HistoryID string  `json:"-" db:"history_id"`
	UserID    string  `json:"-" db:"user_id"`
	Year      int     `json:"year" db:"year"`
	Title     string  `json:"title" db:"title"`
	Subtitle  *string `json:"subtitle" db:"subtitle"`
	Position  int     `json:"-" db:"position"`
}

type Gallery struct {
	GalleryID string `json:"gallery_id" db:"gallery_id"`
	Name      string `json:"name" db:"name"`
	Image     string `json:"image" db:"image"`
}

type Posting struct {
	PostingID string    `json:"posting_id" db:"posting_id"`
	GalleryID string    `json:"gallery_id" db:"gallery_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Thumbnail string    `json:"thumbnail" db:"thumbnail"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type Comment struct {
	CommentID string    `json:"comment_id" db:"comment_id"`
	PostingID string    `json:"posting_id" db:"posting_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

const (
	ProviderKakao = "kakao"
	ProviderNaver = "naver"
)
