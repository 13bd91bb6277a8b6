package linkedin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Export dialects wrap the record array differently: some tools dump a
// bare JSON array, others an object with a "posts"/"reactions" key,
// and API-shaped dumps use "elements".

type postsEnvelope struct {
	Posts    []Post `json:"posts"`
	Elements []Post `json:"elements"`
}

type reactionsEnvelope struct {
	Reactions []Reaction `json:"reactions"`
	Elements  []Reaction `json:"elements"`
}

// ParsePosts decodes a posts export from raw JSON.
func ParsePosts(data []byte) ([]Post, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty posts dataset")
	}
	if trimmed[0] == '[' {
		var posts []Post
		if err := json.Unmarshal(trimmed, &posts); err != nil {
			return nil, fmt.Errorf("failed to parse posts dataset: %w", err)
		}
		return posts, nil
	}
	var env postsEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("failed to parse posts dataset: %w", err)
	}
	if env.Posts != nil {
		return env.Posts, nil
	}
	return env.Elements, nil
}

// ParseReactions decodes a reactions export from raw JSON.
func ParseReactions(data []byte) ([]Reaction, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty reactions dataset")
	}
	if trimmed[0] == '[' {
		var reactions []Reaction
		if err := json.Unmarshal(trimmed, &reactions); err != nil {
			return nil, fmt.Errorf("failed to parse reactions dataset: %w", err)
		}
		return reactions, nil
	}
	var env reactionsEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("failed to parse reactions dataset: %w", err)
	}
	if env.Reactions != nil {
		return env.Reactions, nil
	}
	return env.Elements, nil
}

// LoadPosts reads and decodes a posts export file.
func LoadPosts(path string) ([]Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read posts dataset %s: %w", path, err)
	}
	posts, err := ParsePosts(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return posts, nil
}

// LoadReactions reads and decodes a reactions export file.
func LoadReactions(path string) ([]Reaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reactions dataset %s: %w", path, err)
	}
	reactions, err := ParseReactions(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reactions, nil
}
