package models

import "time"

const (
	HeaderMinLen = 3
	HeaderMaxLen = 25
	TextMinLen   = 3
	TextMaxLen   = 50
)

type (
	PostDTO struct {
		Id     int64     `json:"id"`
		Header string    `json:"header" fake:"{hackerabbreviation}"`
		Text   string    `json:"text" fake:"{hackerverb}"`
		Time   time.Time `json:"time" fake:"{date}"`
	}

	// ArticleDTO is a generated filler card. It has the same shape as a post
	// but never enters the post collection.
	ArticleDTO struct {
		Header string `json:"header"`
		Text   string `json:"text"`
	}
)
