// Package main tests drive the CLI in-process through cobra rather
// than building a binary: faster, and the report path needs no
// network or environment beyond temp files.
package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with args and captures stdout
// and stderr.
func runCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const samplePosts = `[
	{"id": "keeper", "content": "hello #go", "publishedAt": "2024-03-12",
	 "author": {"profileUrl": "https://linkedin.com/in/jane"},
	 "engagement": {"likes": 10, "comments": 2, "shares": 1}},
	{"id": "reshare", "publishedAt": "2024-03-13", "isShare": true,
	 "engagement": {"likes": 999}}
]`

func TestReportCommand_WritesReportJSONToStdout(t *testing.T) {
	dir := t.TempDir()
	postsPath := writeFile(t, dir, "posts.json", samplePosts)

	stdout, _, err := runCommand(t, "report",
		"--posts", postsPath,
		"--profile", "https://linkedin.com/in/jane",
		"--year", "2024",
		"--quiet")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, float64(2024), report["year"])
	assert.Equal(t, float64(1), report["totalPosts"])
}

func TestReportCommand_WritesReportToFile(t *testing.T) {
	dir := t.TempDir()
	postsPath := writeFile(t, dir, "posts.json", samplePosts)
	outPath := filepath.Join(dir, "report.json")

	_, _, err := runCommand(t, "report",
		"--posts", postsPath,
		"--year", "2024",
		"--out", outPath,
		"--quiet")
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"totalPosts": 1`)
}

func TestReportCommand_IncludesReactionsWhenSupplied(t *testing.T) {
	dir := t.TempDir()
	postsPath := writeFile(t, dir, "posts.json", `[]`)
	reactionsPath := writeFile(t, dir, "reactions.json", `[
		{"reactionType": "like", "postUrl": "https://linkedin.com/posts/1"},
		{"reactionType": "love", "postUrl": "https://linkedin.com/posts/1"}
	]`)

	stdout, _, err := runCommand(t, "report",
		"--posts", postsPath,
		"--reactions", reactionsPath,
		"--year", "2024",
		"--quiet")
	require.NoError(t, err)

	var report struct {
		Reactions struct {
			TotalReactions  int `json:"totalReactions"`
			TopReactedPosts []struct {
				ReactionCount int `json:"reactionCount"`
			} `json:"topReactedPosts"`
		} `json:"reactions"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, 2, report.Reactions.TotalReactions)
	require.Len(t, report.Reactions.TopReactedPosts, 1)
	assert.Equal(t, 2, report.Reactions.TopReactedPosts[0].ReactionCount)
}

func TestReportCommand_RequiresPostsFlag(t *testing.T) {
	_, _, err := runCommand(t, "report", "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--posts")
}

func TestReportCommand_FailsOnMissingDataset(t *testing.T) {
	_, _, err := runCommand(t, "report",
		"--posts", filepath.Join(t.TempDir(), "nope.json"),
		"--quiet")
	require.Error(t, err)
}

func TestReportCommand_TopFlagTrimsTopPosts(t *testing.T) {
	dir := t.TempDir()
	posts := `[
		{"id": "a", "publishedAt": "2024-01-01", "engagement": {"likes": 3}},
		{"id": "b", "publishedAt": "2024-01-02", "engagement": {"likes": 2}},
		{"id": "c", "publishedAt": "2024-01-03", "engagement": {"likes": 1}}
	]`
	postsPath := writeFile(t, dir, "posts.json", posts)

	stdout, _, err := runCommand(t, "report",
		"--posts", postsPath,
		"--year", "2024",
		"--top", "1",
		"--quiet")
	require.NoError(t, err)

	var report struct {
		TopPosts []struct {
			ID string `json:"id"`
		} `json:"topPosts"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.TopPosts, 1)
	assert.Equal(t, "a", report.TopPosts[0].ID)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCommand(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "yearwrap version "+version+"\n", stdout)
}
