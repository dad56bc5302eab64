// Package markdown renders exported post bodies back to HTML with goldmark
// and reads and writes the YAML front matter envelope of exported posts.
package markdown
