package models

// Post, WordPress'e gönderilen yazı payload'ı (POST /wp-json/wp/v2/posts).
// Kategori ve etiketler WordPress'te sadece ID listesi olarak kabul edilir.
type Post struct {
	Title         string            `json:"title"`
	Content       string            `json:"content"`
	Excerpt       string            `json:"excerpt"`
	Status        string            `json:"status"`
	Categories    []int             `json:"categories"`
	Tags          []int             `json:"tags"`
	FeaturedMedia int               `json:"featured_media"`
	Meta          map[string]string `json:"meta"`
}

// RemotePost, WordPress yanıtının sade hali.
// title/content/excerpt WordPress'te {"rendered": "..."} objesidir, burada düz string.
type RemotePost struct {
	ID               int     `json:"id"`
	Title            string  `json:"title"`
	Content          string  `json:"content"`
	Excerpt          string  `json:"excerpt"`
	Status           string  `json:"status"`
	Date             string  `json:"date"`
	Modified         string  `json:"modified,omitempty"`
	Slug             string  `json:"slug"`
	Link             string  `json:"link,omitempty"`
	Categories       []int   `json:"categories"`
	Tags             []int   `json:"tags"`
	FeaturedMedia    int     `json:"featured_media"`
	FeaturedMediaURL *string `json:"featured_media_url"`
}
