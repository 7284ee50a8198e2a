package models

import "time"

// ToggleResult is the outcome of a bookmark or like toggle.
type ToggleResult int

const (
	Created ToggleResult = iota + 1
	Removed
)

func (r ToggleResult) String() string {
	switch r {
	case Created:
		return "created"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

type PostingListItem struct {
	PostingID      string    `json:"posting_id" db:"posting_id"`
	Title          string    `json:"title" db:"title"`
	Thumbnail      string    `json:"thumbnail" db:"thumbnail"`
	AuthorID       string    `json:"user_id" db:"user_id"`
	AuthorNickname *string   `json:"nickname" db:"nickname"`
	CommentCount   int64     `json:"comment_count" db:"comment_count"`
	ViewCount      int64     `json:"view_count" db:"view_count"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type PostingDetail struct {
	PostingID      string    `json:"posting_id" db:"posting_id"`
	GalleryID      string    `json:"gallery_id" db:"gallery_id"`
	GalleryName    string    `json:"gallery_name" db:"gallery_name"`
	Title          string    `json:"title" db:"title"`
	Content        string    `json:"content" db:"content"`
	Thumbnail      string    `json:"thumbnail" db:"thumbnail"`
	AuthorID       string    `json:"user_id" db:"user_id"`
	AuthorNickname *string   `json:"nickname" db:"nickname"`
	AuthorImage    *string   `json:"user_image" db:"user_image"`
	ViewCount      int64     `json:"view_count" db:"view_count"`
	LikeCount      int64     `json:"like_count" db:"like_count"`
	CommentCount   int64     `json:"comment_count" db:"comment_count"`
	IsFirst        bool      `json:"is_first" db:"is_first"`
	IsLast         bool      `json:"is_last" db:"is_last"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type CommentItem struct {
	CommentID string    `json:"comment_id" db:"comment_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Nickname  *string   `json:"nickname" db:"nickname"`
	UserImage *string   `json:"user_image" db:"user_image"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// PostingSummary is the shape shared by authored, liked and commented postings in a profile.
type PostingSummary struct {
	GalleryID string    `json:"gallery_id" db:"gallery_id"`
	PostingID string    `json:"posting_id" db:"posting_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type BookmarkedGallery struct {
	GalleryID    string `json:"gallery_id" db:"gallery_id"`
	GalleryName  string `json:"gallery_name" db:"gallery_name"`
	GalleryImage string `json:"gallery_image" db:"gallery_image"`
}

type Work struct {
	Year     int     `json:"year"`
	Title    string  `json:"title"`
	Subtitle *string `json:"subtitle"`
}

type Namecard struct {
	Image     *string `json:"image"`
	Name      *string `json:"name"`
	Slogan    *string `json:"slogan"`
	Introduce *string `json:"introduce"`
	Email     *string `json:"email"`
	Location  *string `json:"location"`
	Works     []Work  `json:"works"`
}

// NamecardUpdate is a partial update: nil fields are left untouched.
// Works, when non-nil, replaces the user's whole history list.
type NamecardUpdate struct {
	Name      *string
	Image     *string
	Slogan    *string
	Introduce *string
	Email     *string
	Location  *string
	Works     []Work
}

func (u NamecardUpdate) IsEmpty() bool {
	return u.Name == nil && u.Image == nil && u.Slogan == nil && u.Introduce == nil &&
		u.Email == nil && u.Location == nil && u.Works == nil
}

// PostingUpdate is a partial update: nil fields are left untouched.
type PostingUpdate struct {
	Title     *string
	Content   *string
	Thumbnail *string
}

type ProfileView struct {
	Namecard
	Bookmarks         []BookmarkedGallery `json:"bookmarks"`
	Postings          []PostingSummary    `json:"postings"`
	LikedPostings     []PostingSummary    `json:"liked_postings"`
	CommentedPostings []PostingSummary    `json:"commented_postings"`
	IsEditable        bool                `json:"is_editable"`
}

// ProviderProfile is what a social provider tells us about a user on first login.
type ProviderProfile struct {
	Name  string
	Email string
	Image string
}
