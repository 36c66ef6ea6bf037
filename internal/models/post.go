package models

// Post is a legacy demo post, unrelated to the Blog entity
type Post struct {
	ID      int64      `json:"id" db:"id"`
	Title   string     `json:"title" db:"title"`
	Slug    string     `json:"slug" db:"slug"`
	Excerpt string     `json:"excerpt" db:"excerpt"`
	Content string     `json:"content" db:"content"`
	Date    string     `json:"date" db:"date"`
	Author  string     `json:"author" db:"author"`
	Tags    StringList `json:"tags" db:"tags"`
}
