// Package content holds the blog's post catalog.
package content

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultBody is the text of a post that does not set its own.
const DefaultBody = "This is the blog post content."

var (
	ErrNotFound      = errors.New("post not found")
	ErrDuplicatePost = errors.New("duplicate post id")
	ErrInvalidID     = errors.New("invalid post id")
)

var idPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

type Post struct {
	ID   string `yaml:"id"`
	Body string `yaml:"body,omitempty"`
}

type file struct {
	Posts []Post `yaml:"posts"`
}

// Catalog is an ordered, read-only list of posts.
type Catalog struct {
	posts []Post
	index map[string]int
}

// Default returns the built-in posts.
func Default() *Catalog {
	c, err := New([]Post{
		{ID: "hello-nextjs"},
		{ID: "learn-nextjs"},
		{ID: "deploy-nextjs"},
	})
	if err != nil {
		panic(err)
	}
	return c
}

func New(posts []Post) (*Catalog, error) {
	c := &Catalog{
		posts: make([]Post, 0, len(posts)),
		index: make(map[string]int, len(posts)),
	}

	for _, p := range posts {
		if !idPattern.MatchString(p.ID) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidID, p.ID)
		}
		if _, exists := c.index[p.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePost, p.ID)
		}
		if p.Body == "" {
			p.Body = DefaultBody
		}
		c.index[p.ID] = len(c.posts)
		c.posts = append(c.posts, p)
	}

	return c, nil
}

// LoadFile reads a YAML document of the form:
//
//	posts:
//	  - id: hello-nextjs
//	    body: Optional text.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("read posts file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse posts file: %w", err)
	}
	return New(f.Posts)
}

func (c *Catalog) Posts() []Post {
	out := make([]Post, len(c.posts))
	copy(out, c.posts)
	return out
}

func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.posts))
	for i, p := range c.posts {
		ids[i] = p.ID
	}
	return ids
}

func (c *Catalog) Lookup(id string) (Post, error) {
	i, ok := c.index[id]
	if !ok {
		return Post{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.posts[i], nil
}

func (c *Catalog) Len() int {
	return len(c.posts)
}
